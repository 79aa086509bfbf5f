// Convert command re-expresses a magnitude in another unit.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitkit/pkg/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert <magnitude> <from-unit> <to-unit>",
	Short: "Convert a magnitude between units",
	Long: `Convert re-expresses a magnitude in another unit of the same quantity
kind, or of a convertible kind (time and frequency convert through their
reciprocal).

Example:
  unitconv convert 1 V mV
  unitconv convert 0 C K
  unitconv convert 2 s Hz
  unitconv convert 13 dBm mW --json`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

// convertResult is the JSON shape of a conversion.
type convertResult struct {
	Magnitude float64 `json:"magnitude"`
	FromUnit  string  `json:"from_unit"`
	ToUnit    string  `json:"to_unit"`
	Result    float64 `json:"result"`
	Symbol    string  `json:"symbol"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	magnitude, err := parseMagnitude(args[0])
	if err != nil {
		return err
	}
	fromUnit, err := units.ParseUnit(args[1])
	if err != nil {
		return err
	}
	toUnit, err := units.ParseUnit(args[2])
	if err != nil {
		return err
	}

	result, err := units.ConvertToUnit(magnitude, fromUnit, toUnit)
	if err != nil {
		return err
	}
	recordConversion(magnitude, fromUnit, toUnit, result)

	if flagJSON {
		return printJSON(cmd, convertResult{
			Magnitude: magnitude,
			FromUnit:  string(fromUnit),
			ToUnit:    string(toUnit),
			Result:    result,
			Symbol:    toUnit.Symbol(),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), units.NewValue(result, toUnit))
	return nil
}
