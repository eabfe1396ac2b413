package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfreeman451/wifiradar/pkg/api"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show scanner status",
	RunE: func(_ *cobra.Command, _ []string) error {
		var st api.StatusResponse

		resp, err := newClient().R().SetResult(&st).Get("/api/status")
		if err != nil {
			return err
		}

		if resp.IsError() {
			return apiError(resp)
		}

		if asJSON {
			return printJSON(st)
		}

		fmt.Printf("running:        %v\n", st.Running)
		fmt.Printf("armed:          %v\n", st.Armed)
		fmt.Printf("paused:         %v\n", st.Paused)
		fmt.Printf("scan in flight: %v\n", st.Outstanding)
		fmt.Printf("scans allowed:  %v\n", st.ScansAllowed)

		if st.Interval != "" {
			fmt.Printf("interval:       %s\n", st.Interval)
		}

		if !st.LastBatchAt.IsZero() {
			fmt.Printf("last batch:     %s (%d networks)\n", st.LastBatchAt.Format(time.RFC3339), st.Networks)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
