package alerts

import (
	"context"
	"errors"
	"sync"

	"github.com/mfreeman451/wifiradar/pkg/models"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

// Notifier bridges scanner outcomes to alert services. It raises an
// alert when cycles start failing and a recovery notice once a batch
// comes through again. Alert storms are the alerters' cooldown problem,
// not ours.
type Notifier struct {
	alerters []AlertService
	log      Logger
	iface    string

	mu      sync.Mutex
	failing bool
}

// NewNotifier builds a Notifier for the given interface name.
func NewNotifier(iface string, alerters []AlertService, log Logger) *Notifier {
	if log == nil {
		log = noopLogger{}
	}

	return &Notifier{
		alerters: alerters,
		log:      log,
		iface:    iface,
	}
}

// OnBatch implements scanner.Listener. The first batch after a failure
// streak sends a recovery notice.
func (n *Notifier) OnBatch(batch models.ScanBatch) {
	n.mu.Lock()
	wasFailing := n.failing
	n.failing = false
	n.mu.Unlock()

	if !wasFailing {
		return
	}

	n.send(&WebhookAlert{
		Level:     Info,
		Title:     "WiFi scanning recovered",
		Message:   "Scan cycles are completing again.",
		Interface: n.iface,
		Details: map[string]any{
			"networks": len(batch.Networks),
		},
	})
}

// OnError implements scanner.Listener.
func (n *Notifier) OnError(event scanner.Event) {
	n.mu.Lock()
	n.failing = true
	n.mu.Unlock()

	level := Warning
	if event.Kind == scanner.KindPermissionDenied || event.Kind == scanner.KindRadioDisabled {
		level = Error
	}

	n.send(&WebhookAlert{
		Level:     level,
		Title:     "WiFi scan cycle failed",
		Message:   event.Message(),
		Interface: n.iface,
		Details: map[string]any{
			"kind": string(event.Kind),
		},
	})
}

func (n *Notifier) send(alert *WebhookAlert) {
	ctx, cancel := context.WithTimeout(context.Background(), webhookTimeout)
	defer cancel()

	for _, alerter := range n.alerters {
		if !alerter.IsEnabled() {
			continue
		}

		if err := alerter.Alert(ctx, alert); err != nil {
			if errors.Is(err, errWebhookCooldown) {
				continue
			}

			n.log.Errorf("failed to send alert '%s': %v", alert.Title, err)
		}
	}
}
