// Root command for the unitconv CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/unitkit/internal/logging"
	"github.com/mesh-intelligence/unitkit/internal/paths"
	"github.com/mesh-intelligence/unitkit/pkg/unitkit"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Set by PersistentPreRunE so all subcommands can use them.
var (
	cfg    *viper.Viper
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Unitconv converts physical quantities between catalog units",
	Long: `Unitconv converts magnitudes between the units of a closed catalog of
physical quantity kinds, and auto-ranges values into the unit that best
fits a preferred decimal display window.

Unit arguments accept ASCII tokens (uV, Ohm, us) or display symbols
(μV, Ω, μs). Run "unitconv units" for the full catalog.`,
	Version: unitkit.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(flagVerbose)

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err = loadConfig(configDir)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("config_dir", configDir))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the conversion log (default: $(CWD)/.unitconv-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(autorangeCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(propertiesCmd)
	rootCmd.AddCommand(constantsCmd)
	rootCmd.AddCommand(historyCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > UNITCONV_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config data_dir > UNITCONV_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
}
