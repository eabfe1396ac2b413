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

package api

import (
	"time"

	"github.com/mfreeman451/wifiradar/pkg/config"
	"github.com/mfreeman451/wifiradar/pkg/models"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

// StatusResponse is the payload for GET /api/status.
type StatusResponse struct {
	scanner.Status
	ScansAllowed bool `json:"scans_allowed"`
}

// StartRequest is the body for POST /api/scanner/start. An absent or
// zero interval falls back to the server default.
type StartRequest struct {
	Interval config.Duration `json:"interval,omitempty"`
}

// PermissionRequest is the body for POST /api/permissions.
type PermissionRequest struct {
	Allow bool `json:"allow"`
}

// ErrorResponse carries a machine-readable failure to API clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StreamMessage is one WebSocket frame on /api/stream, mirroring the
// listener callback that produced it.
type StreamMessage struct {
	Type  string            `json:"type"` // "batch" or "error"
	At    time.Time         `json:"at"`
	Batch *models.ScanBatch `json:"batch,omitempty"`
	Kind  scanner.EventKind `json:"kind,omitempty"`
	Error string            `json:"error,omitempty"`
}
