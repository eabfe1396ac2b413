/*
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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/pubsub"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/mfreeman451/wifiradar/pkg/alerts"
	"github.com/mfreeman451/wifiradar/pkg/api"
	"github.com/mfreeman451/wifiradar/pkg/config"
	"github.com/mfreeman451/wifiradar/pkg/lifecycle"
	"github.com/mfreeman451/wifiradar/pkg/metrics"
	"github.com/mfreeman451/wifiradar/pkg/publish"
	"github.com/mfreeman451/wifiradar/pkg/radio"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/wifiradar/wifiradard.json", "Path to config file")
	flag.Parse()

	var cfg config.DaemonConfig
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	log.SetLevel(level)

	ctx := context.Background()

	rcfg := radio.WPAConfig{
		Interface: cfg.Interface,
		ScanBurst: cfg.ScanBurst,
	}
	if gap := time.Duration(cfg.ScanRate); gap > 0 {
		rcfg.ScanRate = rate.Every(gap)
	}

	wpa, err := radio.NewWPARadio(ctx, rcfg, log.WithField("component", "radio"))
	if err != nil {
		return fmt.Errorf("failed to open radio: %w", err)
	}

	perms := radio.NewTogglePermissions(cfg.ScansAllowed())

	scanOpts := []scanner.Option{
		scanner.WithLogger(log.WithField("component", "scanner")),
	}

	if wd := time.Duration(cfg.ScanWatchdog); wd > 0 {
		scanOpts = append(scanOpts, scanner.WithWatchdog(wd))
	}

	var store metrics.CycleStore
	if cfg.History.Enabled {
		store = metrics.NewCycleBuffer(cfg.History.Retention)
		scanOpts = append(scanOpts, scanner.WithCycleRecorder(store))
	}

	s := scanner.New(wpa, perms, scanOpts...)

	attachAlerters(s, &cfg, wpa.Interface())

	pub, err := attachPublisher(ctx, s, &cfg, wpa.Interface())
	if err != nil {
		return err
	}

	apiOpts := []api.ServerOption{
		api.WithPermissionToggle(perms),
		api.WithOrigins(cfg.CORSOrigins),
		api.WithDefaultInterval(time.Duration(cfg.ScanInterval)),
		api.WithAPILogger(log.WithField("component", "api")),
	}

	if store != nil {
		apiOpts = append(apiOpts, api.WithCycleStore(store))
	}

	apiServer := api.NewServer(s, apiOpts...)

	svc := &daemonService{
		scanner:   s,
		radio:     wpa,
		apiServer: apiServer,
		publisher: pub,
		interval:  time.Duration(cfg.ScanInterval),
		log:       log.WithField("component", "daemon"),
	}

	opts := lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "wifiradard",
		Service:     svc,
		Handler:     apiServer.Handler(),
		Log:         log.WithField("component", "lifecycle"),
	}

	if err := lifecycle.RunServer(ctx, &opts); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// attachAlerters registers a webhook notifier when any webhook is
// enabled.
func attachAlerters(s *scanner.Scanner, cfg *config.DaemonConfig, iface string) {
	alertLog := log.WithField("component", "alerts")

	var alerters []alerts.AlertService

	for _, wh := range cfg.Webhooks {
		if !wh.Enabled {
			continue
		}

		alerters = append(alerters, alerts.NewWebhookAlerter(wh, alerts.WithAlerterLogger(alertLog)))
	}

	if len(alerters) == 0 {
		return
	}

	s.AddListener(alerts.NewNotifier(iface, alerters, alertLog))
	log.Infof("alerting to %d webhook(s)", len(alerters))
}

// attachPublisher registers a Pub/Sub batch exporter when configured.
func attachPublisher(
	ctx context.Context, s *scanner.Scanner, cfg *config.DaemonConfig, iface string) (*publish.Publisher, error) {
	if cfg.PubSub == nil || !cfg.PubSub.Enabled {
		return nil, nil
	}

	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}

	pub := publish.NewPublisher(
		publish.NewPubSubSink(client, cfg.PubSub.TopicID),
		iface,
		publish.WithPublishLogger(log.WithField("component", "publish")),
	)

	s.AddListener(pub)
	log.Infof("publishing batches to pubsub topic %s", cfg.PubSub.TopicID)

	return pub, nil
}

// daemonService adapts the scanner and its attachments to
// lifecycle.Service.
type daemonService struct {
	scanner   *scanner.Scanner
	radio     *radio.WPARadio
	apiServer *api.Server
	publisher *publish.Publisher
	interval  time.Duration
	log       log.FieldLogger
}

func (d *daemonService) Start(ctx context.Context) error {
	if err := d.scanner.Start(ctx); err != nil {
		return err
	}

	// An unarmed boot is not fatal: scans may be disallowed by config
	// or the radio may still be coming up. The API can arm it later.
	if err := d.scanner.StartScanning(ctx, d.interval); err != nil {
		d.log.Warnf("scanning not armed at boot: %v", err)
	}

	return nil
}

func (d *daemonService) Stop(ctx context.Context) error {
	d.apiServer.Close()

	if err := d.scanner.Stop(ctx); err != nil {
		return err
	}

	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			d.log.Errorf("failed to close publisher: %v", err)
		}
	}

	return d.radio.Close()
}
