package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/mfreeman451/wifiradar/pkg/api"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

var (
	serverURL string
	asJSON    bool
)

var rootCmd = &cobra.Command{
	Use:          "wifictl",
	Short:        "Control a running wifiradard instance",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://127.0.0.1:8090", "base URL of the wifiradard API")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON responses")
}

func newClient() *resty.Client {
	client := resty.New()
	client.SetBaseURL(serverURL)
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(10 * time.Second)

	return client
}

// apiError turns a non-2xx API response into a readable error.
func apiError(resp *resty.Response) error {
	var e api.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &e); err == nil && e.Error != "" {
		return fmt.Errorf("%s: %s", resp.Status(), e.Error)
	}

	return fmt.Errorf("request failed: %s", resp.Status())
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

// printControlStatus summarizes the trigger-loop state after a control
// command.
func printControlStatus(st scanner.Status) error {
	if asJSON {
		return printJSON(st)
	}

	state := "idle"

	switch {
	case st.Active:
		state = fmt.Sprintf("scanning every %s", st.Interval)
	case st.Armed && st.Paused:
		state = "paused"
	}

	if st.Outstanding {
		state += " (scan in flight)"
	}

	fmt.Println(state)

	return nil
}
