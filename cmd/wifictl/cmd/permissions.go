package cmd

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/mfreeman451/wifiradar/pkg/api"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions [allow|deny]",
	Short: "Show or set whether scans are permitted",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var (
			res  api.PermissionRequest
			resp *resty.Response
			err  error
		)

		client := newClient()

		if len(args) == 0 {
			resp, err = client.R().SetResult(&res).Get("/api/permissions")
		} else {
			var allow bool

			switch args[0] {
			case "allow":
				allow = true
			case "deny":
				allow = false
			default:
				return fmt.Errorf("argument must be allow or deny, got %q", args[0])
			}

			resp, err = client.R().
				SetBody(api.PermissionRequest{Allow: allow}).
				SetResult(&res).
				Post("/api/permissions")
		}

		if err != nil {
			return err
		}

		if resp.IsError() {
			return apiError(resp)
		}

		if asJSON {
			return printJSON(res)
		}

		if res.Allow {
			fmt.Println("scans allowed")
		} else {
			fmt.Println("scans denied")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
}
