package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mfreeman451/wifiradar/pkg/api"
	"github.com/mfreeman451/wifiradar/pkg/config"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

var startInterval time.Duration

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Arm periodic scanning",
	RunE: func(_ *cobra.Command, _ []string) error {
		req := api.StartRequest{Interval: config.Duration(startInterval)}

		return postControl("/api/scanner/start", req)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Disarm periodic scanning",
	RunE: func(_ *cobra.Command, _ []string) error {
		return postControl("/api/scanner/stop", nil)
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Suspend periodic scanning without disarming",
	RunE: func(_ *cobra.Command, _ []string) error {
		return postControl("/api/scanner/pause", nil)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume periodic scanning after a pause",
	RunE: func(_ *cobra.Command, _ []string) error {
		return postControl("/api/scanner/resume", nil)
	},
}

func postControl(path string, body any) error {
	var st scanner.Status

	r := newClient().R().SetResult(&st)
	if body != nil {
		r.SetBody(body)
	}

	resp, err := r.Post(path)
	if err != nil {
		return err
	}

	if resp.IsError() {
		return apiError(resp)
	}

	return printControlStatus(st)
}

func init() {
	startCmd.Flags().DurationVar(&startInterval, "interval", 0,
		"scan interval (zero uses the server's configured default)")

	rootCmd.AddCommand(startCmd, stopCmd, pauseCmd, resumeCmd)
}
