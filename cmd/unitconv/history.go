// History commands inspect and clear the conversion log.
package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitkit/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged conversions, newest first",
	Long: `History lists conversions previously logged by the convert command.
Logging is controlled by the "history" configuration key.

Example:
  unitconv history
  unitconv history --limit 10
  unitconv history clear`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every logged conversion",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

// historyEntry is the JSON shape of one logged conversion.
type historyEntry struct {
	ConversionID string  `json:"conversion_id"`
	RecordedAt   string  `json:"recorded_at"`
	Magnitude    float64 `json:"magnitude"`
	FromUnit     string  `json:"from_unit"`
	ToUnit       string  `json:"to_unit"`
	Result       float64 `json:"result"`
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum entries to list (0 lists everything)")
	historyCmd.AddCommand(historyClearCmd)
}

func openHistory() (*history.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	return history.Open(dataDir)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(historyLimit)
	if err != nil {
		return err
	}

	if flagJSON {
		entries := make([]historyEntry, len(records))
		for i, rec := range records {
			entries[i] = historyEntry{
				ConversionID: rec.ConversionID,
				RecordedAt:   rec.RecordedAt.Format(time.RFC3339Nano),
				Magnitude:    rec.Magnitude,
				FromUnit:     rec.FromUnit,
				ToUnit:       rec.ToUnit,
				Result:       rec.Result,
			}
		}
		return printJSON(cmd, entries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RECORDED AT\tCONVERSION\tRESULT")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%g %s -> %s\t%g %s\n",
			rec.RecordedAt.Format(time.RFC3339), rec.Magnitude, rec.FromUnit, rec.ToUnit, rec.Result, rec.ToUnit)
	}
	return w.Flush()
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "conversion history cleared")
	return nil
}
