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

// Package publish pkg/publish/interfaces.go

//go:generate mockgen -destination=mock_publish.go -package=publish github.com/mfreeman451/wifiradar/pkg/publish BatchSink

package publish

import (
	"context"
)

// BatchSink delivers one serialized scan batch to an external system.
type BatchSink interface {
	// Send publishes the payload with the given attributes.
	Send(ctx context.Context, data []byte, attrs map[string]string) error

	// Close flushes pending deliveries and releases the sink.
	Close() error
}

// Logger is the subset of a structured logger this package needs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}
