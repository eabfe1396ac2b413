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

// Package radio provides access to the platform WiFi scan surface.
package radio

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock_radio.go -package=radio github.com/mfreeman451/wifiradar/pkg/radio Radio,Permissions

// Event is a platform scan completion notice. Success mirrors the
// platform's own verdict; a false value means the scan ran but produced
// nothing usable.
type Event struct {
	Success bool
	At      time.Time
}

// Radio abstracts one WiFi device: triggering scans, fetching raw
// results, and surfacing scan completions as events.
type Radio interface {
	// Enabled reports whether the radio is powered and operational.
	Enabled(ctx context.Context) bool

	// StartScan asks the platform to begin a scan. The platform may
	// decline (busy, throttled, unsupported); false means nothing was
	// started and no completion event will follow.
	StartScan(ctx context.Context) bool

	// Results returns the raw results of the most recent scan.
	Results(ctx context.Context) ([]BSS, error)

	// Events delivers exactly one Event per platform scan completion.
	// The channel stays open for the lifetime of the radio.
	Events() <-chan Event

	Close() error
}

// Permissions gates scan operations. Grants are re-checked on every
// use because they can be revoked while a scan is in flight.
type Permissions interface {
	CanScan(ctx context.Context) bool
}

// Logger is the logging surface used by this package. *logrus.Entry
// satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Warnf(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}
