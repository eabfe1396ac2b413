package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Trigger one scan immediately",
	RunE: func(_ *cobra.Command, _ []string) error {
		var st scanner.Status

		resp, err := newClient().R().SetResult(&st).Post("/api/scan")
		if err != nil {
			return err
		}

		if resp.IsError() {
			return apiError(resp)
		}

		if !asJSON {
			fmt.Println("scan accepted")
		}

		return printControlStatus(st)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
