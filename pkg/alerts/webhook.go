/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/mfreeman451/wifiradar/pkg/config"
)

const webhookTimeout = 10 * time.Second

var (
	errWebhookDisabled   = fmt.Errorf("webhook alerter is disabled")
	errWebhookCooldown   = fmt.Errorf("alert is within cooldown period")
	errInvalidJSON       = fmt.Errorf("invalid JSON generated")
	errWebhookStatus     = fmt.Errorf("webhook returned non-200 status")
	errTemplateParse     = fmt.Errorf("template parsing failed")
	errTemplateExecution = fmt.Errorf("template execution failed")
)

// AlertLevel grades the severity of an alert.
type AlertLevel string

const (
	Info    AlertLevel = "info"
	Warning AlertLevel = "warning"
	Error   AlertLevel = "error"
)

// WebhookAlert is the payload delivered to configured webhooks.
type WebhookAlert struct {
	Level     AlertLevel     `json:"level"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Interface string         `json:"interface"`
	Details   map[string]any `json:"details,omitempty"`
}

// WebhookAlerter posts alerts to a single webhook endpoint, honoring a
// per-title cooldown.
type WebhookAlerter struct {
	config         config.WebhookConfig
	client         *http.Client
	log            Logger
	lastAlertTimes map[string]time.Time
	mu             sync.RWMutex
	bufferPool     *sync.Pool
}

// AlerterOption customizes a WebhookAlerter.
type AlerterOption func(*WebhookAlerter)

// WithAlerterLogger routes the alerter's logging.
func WithAlerterLogger(log Logger) AlerterOption {
	return func(w *WebhookAlerter) { w.log = log }
}

// NewWebhookAlerter builds an alerter for one webhook configuration.
func NewWebhookAlerter(cfg config.WebhookConfig, opts ...AlerterOption) *WebhookAlerter {
	w := &WebhookAlerter{
		config: cfg,
		client: &http.Client{
			Timeout: webhookTimeout,
		},
		log:            noopLogger{},
		lastAlertTimes: make(map[string]time.Time),
		bufferPool: &sync.Pool{
			New: func() any {
				return new(bytes.Buffer)
			},
		},
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// IsEnabled reports whether the alerter will send anything at all.
func (w *WebhookAlerter) IsEnabled() bool {
	return w.config.Enabled
}

func (w *WebhookAlerter) getTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"json": func(v any) (string, error) {
			buf := w.bufferPool.Get().(*bytes.Buffer)
			buf.Reset()
			defer w.bufferPool.Put(buf)

			enc := json.NewEncoder(buf)
			if err := enc.Encode(v); err != nil {
				return "", fmt.Errorf("JSON marshaling failed: %w", err)
			}

			return strings.TrimSpace(buf.String()), nil
		},
	}
}

// Alert sends one alert, unless the alerter is disabled or the title is
// still cooling down.
func (w *WebhookAlerter) Alert(ctx context.Context, alert *WebhookAlert) error {
	if !w.IsEnabled() {
		w.log.Debugf("webhook alerter disabled, skipping alert: %s", alert.Title)
		return errWebhookDisabled
	}

	if err := w.checkCooldown(alert.Title); err != nil {
		return err
	}

	if alert.Timestamp == "" {
		alert.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	payload, err := w.preparePayload(alert)
	if err != nil {
		return fmt.Errorf("failed to prepare payload: %w", err)
	}

	return w.sendRequest(ctx, payload)
}

func (w *WebhookAlerter) checkCooldown(alertTitle string) error {
	cooldown := time.Duration(w.config.Cooldown)
	if cooldown <= 0 {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	lastAlertTime, exists := w.lastAlertTimes[alertTitle]
	if exists && time.Since(lastAlertTime) < cooldown {
		w.log.Debugf("alert '%s' is within cooldown period, skipping", alertTitle)
		return errWebhookCooldown
	}

	w.lastAlertTimes[alertTitle] = time.Now()

	return nil
}

func (w *WebhookAlerter) preparePayload(alert *WebhookAlert) ([]byte, error) {
	if w.config.Template == "" {
		buf := w.bufferPool.Get().(*bytes.Buffer)
		buf.Reset()
		defer w.bufferPool.Put(buf)

		enc := json.NewEncoder(buf)
		if err := enc.Encode(alert); err != nil {
			return nil, fmt.Errorf("failed to marshal alert: %w", err)
		}

		return append([]byte(nil), buf.Bytes()...), nil
	}

	return w.executeTemplate(alert)
}

func (w *WebhookAlerter) executeTemplate(alert *WebhookAlert) ([]byte, error) {
	tmpl, err := template.New("webhook").
		Funcs(w.getTemplateFuncs()).
		Parse(w.config.Template)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errTemplateParse, err)
	}

	buf := w.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer w.bufferPool.Put(buf)

	if err := tmpl.Execute(buf, map[string]any{
		"alert": alert,
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", errTemplateExecution, err)
	}

	if !json.Valid(buf.Bytes()) {
		return nil, errInvalidJSON
	}

	return append([]byte(nil), buf.Bytes()...), nil
}

func (w *WebhookAlerter) sendRequest(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.config.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	w.setHeaders(req)

	resp, err := w.client.Do(req) //nolint:bodyclose // Response body is closed later
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			w.log.Warnf("failed to close response body: %v", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBuf := w.bufferPool.Get().(*bytes.Buffer)
		errBuf.Reset()
		defer w.bufferPool.Put(errBuf)

		_, _ = io.Copy(errBuf, resp.Body)

		return fmt.Errorf("%w: status=%d body=%s", errWebhookStatus, resp.StatusCode, errBuf.String())
	}

	return nil
}

func (w *WebhookAlerter) setHeaders(req *http.Request) {
	hasContentType := false

	for _, header := range w.config.Headers {
		if strings.EqualFold(header.Key, "content-type") {
			hasContentType = true
		}

		req.Header.Set(header.Key, header.Value)
	}

	if !hasContentType {
		req.Header.Set("Content-Type", "application/json")
	}
}
