package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

const (
	defaultScanInterval = 30 * time.Second
	defaultListenAddr   = ":8090"
	defaultRetention    = 256
	defaultLogLevel     = "info"
)

var (
	errInvalidDuration     = fmt.Errorf("invalid duration")
	errScanIntervalInvalid = errors.New("scan_interval must be positive")
	errWatchdogInvalid     = errors.New("scan_watchdog must not be negative")
	errRetentionInvalid    = errors.New("history retention must not be negative")
	errWebhookURLRequired  = errors.New("webhook url is required when enabled")
	errPubSubIncomplete    = errors.New("pubsub requires project_id and topic_id")
)

// Duration unmarshals from either a JSON number (nanoseconds) or a
// time.ParseDuration string such as "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// DaemonConfig is the configuration for the wifiradar daemon.
type DaemonConfig struct {
	Interface    string   `json:"interface,omitempty"` // empty means autodetect
	ScanInterval Duration `json:"scan_interval"`
	ScanWatchdog Duration `json:"scan_watchdog,omitempty"` // zero disables the watchdog
	ScanRate     Duration `json:"scan_rate,omitempty"`     // minimum gap between supplicant scans
	ScanBurst    int      `json:"scan_burst,omitempty"`
	AllowScans   *bool    `json:"allow_scans,omitempty"` // nil means allowed

	ListenAddr  string   `json:"listen_addr"`
	CORSOrigins []string `json:"cors_origins,omitempty"`
	LogLevel    string   `json:"log_level,omitempty"`

	History  models.HistoryConfig `json:"history"`
	Webhooks []WebhookConfig      `json:"webhooks,omitempty"`
	PubSub   *PubSubConfig        `json:"pubsub,omitempty"`
}

// WebhookConfig represents a webhook notification configuration.
type WebhookConfig struct {
	Enabled  bool     `json:"enabled"`
	URL      string   `json:"url"`
	Cooldown Duration `json:"cooldown"`
	Template string   `json:"template"`
	Headers  []Header `json:"headers,omitempty"` // Optional custom headers
}

// Header represents a custom HTTP header.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PubSubConfig configures batch publishing to Google Cloud Pub/Sub.
type PubSubConfig struct {
	Enabled   bool   `json:"enabled"`
	ProjectID string `json:"project_id"`
	TopicID   string `json:"topic_id"`
}

// ScansAllowed reports the initial scan permission state.
func (c *DaemonConfig) ScansAllowed() bool {
	return c.AllowScans == nil || *c.AllowScans
}

// Validate fills defaults and rejects values that cannot work.
func (c *DaemonConfig) Validate() error {
	// Compare to zero by casting to time.Duration
	if time.Duration(c.ScanInterval) == 0 {
		c.ScanInterval = Duration(defaultScanInterval)
	}

	if time.Duration(c.ScanInterval) < 0 {
		return errScanIntervalInvalid
	}

	if time.Duration(c.ScanWatchdog) < 0 {
		return errWatchdogInvalid
	}

	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.History.Retention < 0 {
		return errRetentionInvalid
	}

	if c.History.Enabled && c.History.Retention == 0 {
		c.History.Retention = defaultRetention
	}

	for i := range c.Webhooks {
		if c.Webhooks[i].Enabled && c.Webhooks[i].URL == "" {
			return errWebhookURLRequired
		}
	}

	if c.PubSub != nil && c.PubSub.Enabled {
		if c.PubSub.ProjectID == "" || c.PubSub.TopicID == "" {
			return errPubSubIncomplete
		}
	}

	return nil
}
