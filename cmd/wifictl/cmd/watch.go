package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/mfreeman451/wifiradar/pkg/api"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream scan results and errors as they happen",
	RunE: func(_ *cobra.Command, _ []string) error {
		wsURL, err := streamURL(serverURL)
		if err != nil {
			return err
		}

		conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			if resp != nil {
				return fmt.Errorf("failed to connect to %s: %s: %w", wsURL, resp.Status, err)
			}

			return fmt.Errorf("failed to connect to %s: %w", wsURL, err)
		}
		defer conn.Close()

		var interrupted atomic.Bool

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		go func() {
			<-sigChan
			interrupted.Store(true)

			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = conn.Close()
		}()

		for {
			var msg api.StreamMessage

			if err := conn.ReadJSON(&msg); err != nil {
				if interrupted.Load() ||
					websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return nil
				}

				return err
			}

			printStreamMessage(msg)
		}
	},
}

// streamURL rewrites the API base URL into the WebSocket endpoint.
func streamURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = "/api/stream"

	return u.String(), nil
}

func printStreamMessage(msg api.StreamMessage) {
	if asJSON {
		if out, err := json.Marshal(msg); err == nil {
			fmt.Println(string(out))
		}

		return
	}

	switch msg.Type {
	case "batch":
		n := 0
		if msg.Batch != nil {
			n = len(msg.Batch.Networks)
		}

		fmt.Printf("%s  batch  %d networks\n", msg.At.Format(time.TimeOnly), n)
	case "error":
		fmt.Printf("%s  %-18s %s\n", msg.At.Format(time.TimeOnly), msg.Kind, msg.Error)
	default:
		fmt.Printf("%s  %s\n", msg.At.Format(time.TimeOnly), msg.Type)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
