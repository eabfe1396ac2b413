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

// Package scanner implements the periodic WiFi-scan orchestration core:
// a timer-driven trigger loop and a result dispatcher that normalizes,
// caches and fans out completed scans.
package scanner

import (
	"time"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

//go:generate mockgen -destination=mock_scanner.go -package=scanner github.com/mfreeman451/wifiradar/pkg/scanner Listener,CycleRecorder

// EventKind classifies error events delivered to listeners.
type EventKind string

const (
	KindPermissionDenied EventKind = "permission_denied"
	KindRadioDisabled    EventKind = "radio_disabled"
	KindScanFailed       EventKind = "scan_failed"
	KindProcessingError  EventKind = "processing_error"
	KindTriggerRejected  EventKind = "trigger_rejected"
)

// Event is one error outcome delivered to listeners.
type Event struct {
	Kind EventKind `json:"kind"`
	Err  error     `json:"-"`
	At   time.Time `json:"at"`
}

// Message returns the human-readable error text, empty when none.
func (e Event) Message() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

// Listener consumes scan outcomes. For every completed scan cycle
// exactly one of OnBatch or OnError is invoked, and cycle outcomes are
// serialized in completion order. Precondition failures from trigger
// calls are delivered on the calling goroutine and may interleave.
// Implementations that block delay subsequent deliveries.
type Listener interface {
	// OnBatch receives a successful cycle's full batch. The batch is
	// shared and must be treated as read-only.
	OnBatch(batch models.ScanBatch)

	// OnError receives a failed cycle or a rejected trigger.
	OnError(event Event)
}

// CycleRecorder receives one point per completed scan cycle. Rejected
// triggers are not cycles and are not recorded.
type CycleRecorder interface {
	AddCycle(point models.CyclePoint)
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
