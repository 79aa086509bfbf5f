// Shared helpers for unitconv CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/unitkit/internal/history"
	"github.com/mesh-intelligence/unitkit/pkg/units"
)

// exitCode maps an error to the CLI exit code: precondition violations
// are user errors, everything else is a system error.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, units.ErrInvalidArgument) {
		return exitUserError
	}
	return exitSysError
}

// parseMagnitude parses a command-line magnitude argument.
func parseMagnitude(arg string) (float64, error) {
	magnitude, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: magnitude %q is not a number", units.ErrInvalidArgument, arg)
	}
	return magnitude, nil
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// recordConversion appends a conversion to the history database when
// history is enabled. Logging failures never fail the conversion; they
// are reported at warn level.
func recordConversion(magnitude float64, fromUnit, toUnit units.Unit, result float64) {
	if !cfg.GetBool(cfgKeyHistory) {
		return
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		logger.Warn("history disabled for this run", zap.Error(err))
		return
	}
	store, err := history.Open(dataDir)
	if err != nil {
		logger.Warn("history disabled for this run", zap.Error(err))
		return
	}
	defer store.Close()

	rec, err := store.Append(magnitude, string(fromUnit), string(toUnit), result)
	if err != nil {
		logger.Warn("recording conversion failed", zap.Error(err))
		return
	}
	logger.Debug("conversion recorded", zap.String("conversion_id", rec.ConversionID))
}

// formatMagnitude renders a magnitude with a precision derived from the
// policy's preferred decimal window, falling back to compact notation
// for values far outside it.
func formatMagnitude(m float64, policy units.AutoRangePolicy) string {
	abs := math.Abs(m)
	if abs != 0 && (abs < 1e-4 || abs >= 1e6) {
		return strconv.FormatFloat(m, 'g', -1, 64)
	}
	precision := 3 - policy.PreferredDecimalIndex()
	return strconv.FormatFloat(m, 'f', precision, 64)
}
