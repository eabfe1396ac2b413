package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show recent scan cycle history",
	RunE: func(_ *cobra.Command, _ []string) error {
		var cycles []models.CyclePoint

		resp, err := newClient().R().SetResult(&cycles).Get("/api/metrics")
		if err != nil {
			return err
		}

		if resp.IsError() {
			return apiError(resp)
		}

		if asJSON {
			return printJSON(cycles)
		}

		if len(cycles) == 0 {
			fmt.Println("no cycles recorded yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tOUTCOME\tNETWORKS\tELAPSED")

		for _, c := range cycles {
			fmt.Fprintf(w, "%s\t%s\t%d\t%dms\n",
				c.Timestamp.Format(time.RFC3339), c.Outcome, c.Networks, c.Elapsed)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
