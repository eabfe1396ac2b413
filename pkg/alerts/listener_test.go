package alerts

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfreeman451/wifiradar/pkg/models"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

type countingLogger struct {
	errors atomic.Int32
}

func (*countingLogger) Debugf(string, ...any) {}
func (*countingLogger) Infof(string, ...any)  {}
func (*countingLogger) Warnf(string, ...any)  {}

func (l *countingLogger) Errorf(string, ...any) {
	l.errors.Add(1)
}

func failureEvent(kind scanner.EventKind) scanner.Event {
	return scanner.Event{
		Kind: kind,
		Err:  errors.New("scan failed: driver timeout"),
		At:   time.Now(),
	}
}

func TestNotifierSendsFailureAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAlertService(ctrl)
	svc.EXPECT().IsEnabled().Return(true)
	svc.EXPECT().Alert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, alert *WebhookAlert) error {
			assert.Equal(t, Warning, alert.Level)
			assert.Equal(t, "WiFi scan cycle failed", alert.Title)
			assert.Equal(t, "scan failed: driver timeout", alert.Message)
			assert.Equal(t, "wlan0", alert.Interface)
			assert.Equal(t, "scan_failed", alert.Details["kind"])

			return nil
		})

	n := NewNotifier("wlan0", []AlertService{svc}, nil)
	n.OnError(failureEvent(scanner.KindScanFailed))
}

func TestNotifierAlertLevels(t *testing.T) {
	tests := []struct {
		name  string
		kind  scanner.EventKind
		level AlertLevel
	}{
		{"scan failure warns", scanner.KindScanFailed, Warning},
		{"processing error warns", scanner.KindProcessingError, Warning},
		{"trigger rejection warns", scanner.KindTriggerRejected, Warning},
		{"permission denied escalates", scanner.KindPermissionDenied, Error},
		{"radio disabled escalates", scanner.KindRadioDisabled, Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var got AlertLevel

			svc := NewMockAlertService(ctrl)
			svc.EXPECT().IsEnabled().Return(true)
			svc.EXPECT().Alert(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, alert *WebhookAlert) error {
					got = alert.Level
					return nil
				})

			n := NewNotifier("wlan0", []AlertService{svc}, nil)
			n.OnError(failureEvent(tt.kind))

			assert.Equal(t, tt.level, got)
		})
	}
}

func TestNotifierHealthyBatchSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any call on the mock fails the test.
	svc := NewMockAlertService(ctrl)

	n := NewNotifier("wlan0", []AlertService{svc}, nil)
	n.OnBatch(models.ScanBatch{Networks: []models.ScanRecord{{SSID: "lab"}}})
}

func TestNotifierSendsRecoveryOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var sent []*WebhookAlert

	svc := NewMockAlertService(ctrl)
	svc.EXPECT().IsEnabled().Return(true).Times(2)
	svc.EXPECT().Alert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, alert *WebhookAlert) error {
			sent = append(sent, alert)
			return nil
		}).Times(2)

	n := NewNotifier("wlan0", []AlertService{svc}, nil)
	n.OnError(failureEvent(scanner.KindScanFailed))
	n.OnBatch(models.ScanBatch{Networks: []models.ScanRecord{{SSID: "lab"}, {SSID: "guest"}}})
	n.OnBatch(models.ScanBatch{})

	require.Len(t, sent, 2)
	assert.Equal(t, "WiFi scan cycle failed", sent[0].Title)
	assert.Equal(t, "WiFi scanning recovered", sent[1].Title)
	assert.Equal(t, Info, sent[1].Level)
	assert.Equal(t, 2, sent[1].Details["networks"])
}

func TestNotifierSkipsDisabledAlerters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	disabled := NewMockAlertService(ctrl)
	disabled.EXPECT().IsEnabled().Return(false)

	enabled := NewMockAlertService(ctrl)
	enabled.EXPECT().IsEnabled().Return(true)
	enabled.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(nil)

	n := NewNotifier("wlan0", []AlertService{disabled, enabled}, nil)
	n.OnError(failureEvent(scanner.KindScanFailed))
}

func TestNotifierToleratesAlerterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coolingDown := NewMockAlertService(ctrl)
	coolingDown.EXPECT().IsEnabled().Return(true)
	coolingDown.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(errWebhookCooldown)

	broken := NewMockAlertService(ctrl)
	broken.EXPECT().IsEnabled().Return(true)
	broken.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	log := &countingLogger{}
	n := NewNotifier("wlan0", []AlertService{coolingDown, broken}, log)
	n.OnError(failureEvent(scanner.KindScanFailed))

	// Cooldown rejections are routine and stay quiet; real failures are logged.
	assert.Equal(t, int32(1), log.errors.Load())
}
