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

package scanner

import "errors"

// Errors returned by scanner operations.
var (
	// ErrInvalidInterval is returned when a scan interval is not positive.
	ErrInvalidInterval = errors.New("scan interval must be positive")

	// ErrPermissionDenied is returned when the scan permission is missing
	// or was revoked.
	ErrPermissionDenied = errors.New("scan permission denied")

	// ErrRadioDisabled is returned when the WiFi radio is off or absent.
	ErrRadioDisabled = errors.New("wifi radio is disabled")

	// ErrTriggerRejected is returned when the platform declines to start
	// a scan, or one is already in flight.
	ErrTriggerRejected = errors.New("scan trigger rejected")

	// ErrScanFailed is reported when the platform signals an unsuccessful
	// scan completion.
	ErrScanFailed = errors.New("platform reported scan failure")

	// ErrProcessing is reported when raw results cannot be fetched or
	// normalized.
	ErrProcessing = errors.New("scan result processing failed")

	// ErrNotRunning is returned when the scanner service has not been
	// started.
	ErrNotRunning = errors.New("scanner is not running")
)

var errAlreadyStarted = errors.New("scanner already started")
