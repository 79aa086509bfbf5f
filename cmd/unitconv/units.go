// Units command lists the unit catalog.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitkit/pkg/units"
)

var unitsCmd = &cobra.Command{
	Use:   "units [property]",
	Short: "List the unit catalog",
	Long: `Units lists every catalog unit with its parse token, display symbol,
quantity kind, and SI anchor marker. An optional property argument
restricts the listing to one quantity kind.

Example:
  unitconv units
  unitconv units voltage
  unitconv units temperature --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnits,
}

// unitInfo is the JSON shape of one catalog row.
type unitInfo struct {
	Token          string `json:"token"`
	Symbol         string `json:"symbol"`
	Property       string `json:"property"`
	SIAnchor       bool   `json:"si_anchor"`
	Multiplicative bool   `json:"multiplicative"`
}

func runUnits(cmd *cobra.Command, args []string) error {
	catalog := units.AllUnits()
	if len(args) == 1 {
		property, err := units.ParseProperty(args[0])
		if err != nil {
			return err
		}
		catalog = units.UnitsOf(property)
	}

	rows := make([]unitInfo, len(catalog))
	for i, u := range catalog {
		rows[i] = unitInfo{
			Token:          string(u),
			Symbol:         u.Symbol(),
			Property:       string(u.BaseProperty()),
			SIAnchor:       u.IsSIUnit(),
			Multiplicative: u.IsMultiplicative(),
		}
	}

	if flagJSON {
		return printJSON(cmd, rows)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tSYMBOL\tPROPERTY\tSI")
	for _, row := range rows {
		si := ""
		if row.SIAnchor {
			si = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Token, row.Symbol, row.Property, si)
	}
	return w.Flush()
}
