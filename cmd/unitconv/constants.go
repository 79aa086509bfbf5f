// Constants command lists the physical constant catalog.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitkit/pkg/units"
)

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "List the physical constant catalog",
	Args:  cobra.NoArgs,
	RunE:  runConstants,
}

// constantInfo is the JSON shape of one constant row.
type constantInfo struct {
	Name      string  `json:"name"`
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
	Symbol    string  `json:"symbol"`
}

func runConstants(cmd *cobra.Command, args []string) error {
	catalog := units.Constants()

	rows := make([]constantInfo, len(catalog))
	for i, c := range catalog {
		rows[i] = constantInfo{
			Name:      c.Name,
			Magnitude: c.Value.Magnitude,
			Unit:      string(c.Value.Unit),
			Symbol:    c.Value.Unit.Symbol(),
		}
	}

	if flagJSON {
		return printJSON(cmd, rows)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUE")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%g %s\n", row.Name, row.Magnitude, row.Symbol)
	}
	return w.Flush()
}
