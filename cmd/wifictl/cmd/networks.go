package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "Show the networks from the last completed scan",
	RunE: func(_ *cobra.Command, _ []string) error {
		var batch models.ScanBatch

		resp, err := newClient().R().SetResult(&batch).Get("/api/networks")
		if err != nil {
			return err
		}

		if resp.IsError() {
			return apiError(resp)
		}

		if asJSON {
			return printJSON(batch)
		}

		if batch.Empty() {
			fmt.Println("no scan has completed yet")
			return nil
		}

		fmt.Printf("scan completed %s\n\n", batch.CompletedAt.Format(time.RFC3339))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SSID\tBSSID\tCHAN\tBAND\tSIGNAL\tFLAGS")

		for _, n := range batch.Networks {
			ssid := n.SSID
			if ssid == "" {
				ssid = "<hidden>"
			}

			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d dBm\t%s\n",
				ssid, n.BSSID, n.Channel, n.Band, n.SignalStrength, n.Capabilities)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(networksCmd)
}
