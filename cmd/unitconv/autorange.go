// Autorange command picks the best display unit for a magnitude.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitkit/pkg/units"
)

var (
	autorangePolicy string
	autorangeStrict bool
)

var autorangeCmd = &cobra.Command{
	Use:   "autorange <magnitude> <unit> [candidate-units...]",
	Short: "Pick the best display unit for a magnitude",
	Long: `Autorange scores the magnitude in every candidate unit against the
policy's preferred decimal window and re-expresses it in the best one.
Without explicit candidates, every catalog unit of the originating
unit's quantity kind competes.

Example:
  unitconv autorange 0.0045 mV
  unitconv autorange 15000000 uV --policy 1-10
  unitconv autorange 0.004 s Hz kHz ms --strict=false`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAutorange,
}

// autorangeResult is the JSON shape of an auto-range selection.
type autorangeResult struct {
	Policy    string  `json:"policy"`
	Unit      string  `json:"unit"`
	Symbol    string  `json:"symbol"`
	Magnitude float64 `json:"magnitude"`
}

func init() {
	autorangeCmd.Flags().StringVar(&autorangePolicy, "policy", "", "preference policy: 1-1000, 1-100, 1-10, 0.1-1 (default from config)")
	autorangeCmd.Flags().BoolVar(&autorangeStrict, "strict", true, "only consider candidates of the same quantity kind (default from config)")
}

func runAutorange(cmd *cobra.Command, args []string) error {
	magnitude, err := parseMagnitude(args[0])
	if err != nil {
		return err
	}
	fromUnit, err := units.ParseUnit(args[1])
	if err != nil {
		return err
	}

	policyName := autorangePolicy
	if policyName == "" {
		policyName = cfg.GetString(cfgKeyPolicy)
	}
	policy, err := units.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	strict := cfg.GetBool(cfgKeyStrict)
	if cmd.Flags().Changed("strict") {
		strict = autorangeStrict
	}

	var candidates []units.Unit
	if len(args) > 2 {
		for _, arg := range args[2:] {
			u, err := units.ParseUnit(arg)
			if err != nil {
				return err
			}
			candidates = append(candidates, u)
		}
	} else {
		candidates = units.UnitsOf(fromUnit.BaseProperty())
	}

	chosen, err := units.AutoRange(policy, magnitude, fromUnit, candidates, strict, false)
	if err != nil {
		return err
	}
	converted, err := units.ConvertToUnit(magnitude, fromUnit, chosen)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd, autorangeResult{
			Policy:    string(policy),
			Unit:      string(chosen),
			Symbol:    chosen.Symbol(),
			Magnitude: converted,
		})
	}
	symbol := chosen.Symbol()
	if symbol == "" {
		symbol = string(chosen)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", formatMagnitude(converted, policy), symbol, chosen)
	return nil
}
