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

// Package models pkg/models/cycle.go
package models

import "time"

// CycleOutcome classifies how one scan cycle ended.
type CycleOutcome string

const (
	CycleSuccess          CycleOutcome = "success"
	CycleScanFailed       CycleOutcome = "scan_failed"
	CycleProcessingError  CycleOutcome = "processing_error"
	CyclePermissionDenied CycleOutcome = "permission_denied"
)

// CyclePoint is one completed scan cycle for the in-memory history.
type CyclePoint struct {
	Timestamp time.Time    `json:"timestamp"`
	Elapsed   int64        `json:"elapsed_ms"`
	Networks  int          `json:"networks"`
	Outcome   CycleOutcome `json:"outcome"`
}

// HistoryConfig controls the in-memory cycle history.
type HistoryConfig struct {
	Enabled   bool `json:"enabled"`
	Retention int  `json:"retention"`
}
