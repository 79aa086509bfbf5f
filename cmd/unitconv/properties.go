// Properties command lists the base property catalog.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitkit/pkg/units"
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "List the base property catalog",
	Long: `Properties lists every quantity kind with its SI anchor unit and the
kinds it converts with beyond identity.

Example:
  unitconv properties
  unitconv properties --json`,
	Args: cobra.NoArgs,
	RunE: runProperties,
}

// propertyInfo is the JSON shape of one property row.
type propertyInfo struct {
	Name         string   `json:"name"`
	SIUnit       string   `json:"si_unit"`
	Symbol       string   `json:"symbol"`
	ConvertsWith []string `json:"converts_with,omitempty"`
}

func runProperties(cmd *cobra.Command, args []string) error {
	properties := units.AllProperties()

	rows := make([]propertyInfo, len(properties))
	for i, p := range properties {
		var partners []string
		for _, other := range p.ConvertibleProperties() {
			partners = append(partners, string(other))
		}
		rows[i] = propertyInfo{
			Name:         string(p),
			SIUnit:       string(p.SIUnit()),
			Symbol:       p.Symbol(),
			ConvertsWith: partners,
		}
	}

	if flagJSON {
		return printJSON(cmd, rows)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROPERTY\tSI UNIT\tSYMBOL\tCONVERTS WITH")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Name, row.SIUnit, row.Symbol, strings.Join(row.ConvertsWith, ", "))
	}
	return w.Flush()
}
