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

package scanner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreeman451/wifiradar/pkg/radio"
)

func TestStartScanningValidatesInterval(t *testing.T) {
	rig := newTestRig(t)

	err := rig.s.StartScanning(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	err = rig.s.StartScanning(context.Background(), -time.Second)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	assert.False(t, rig.s.Active())
	assert.Zero(t, rig.radio.attemptCount())
}

func TestStartScanningPermissionDenied(t *testing.T) {
	rig := newTestRig(t)
	rig.perms.SetAllowed(false)

	listener := &countingListener{}
	rig.s.AddListener(listener)

	err := rig.s.StartScanning(context.Background(), testInterval)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Precondition failures are reported synchronously, before
	// StartScanning returns.
	assert.Equal(t, 1, listener.errorsOfKind(KindPermissionDenied))
	assert.False(t, rig.s.Active())
	assert.Zero(t, rig.radio.attemptCount())
}

func TestStartScanningRadioDisabled(t *testing.T) {
	rig := newTestRig(t)
	rig.radio.setEnabled(false)

	listener := &countingListener{}
	rig.s.AddListener(listener)

	err := rig.s.StartScanning(context.Background(), testInterval)
	assert.ErrorIs(t, err, ErrRadioDisabled)

	assert.Equal(t, 1, listener.errorsOfKind(KindRadioDisabled))
	assert.False(t, rig.s.Active())
}

func TestPeriodicScanning(t *testing.T) {
	rig := newTestRig(t)
	rig.radio.setResults([]radio.BSS{testBSS("lab", "aa:bb:cc:dd:ee:01")}, nil)

	listener := &countingListener{}
	rig.s.AddListener(listener)

	require.NoError(t, rig.s.StartScanning(context.Background(), testInterval))
	require.True(t, rig.s.Active())

	// Each cycle needs a completion before the next interval is armed.
	for i := 1; i <= 3; i++ {
		require.Eventually(t, func() bool {
			return rig.radio.acceptedCount() >= i
		}, waitFor, tick, "scan %d never started", i)

		rig.radio.complete(true)

		require.Eventually(t, func() bool {
			return listener.batchCount() >= i
		}, waitFor, tick, "batch %d never delivered", i)
	}

	assert.Equal(t, 3, listener.batchCount())
	assert.Zero(t, listener.errorCount())
}

func TestStartScanningReconfiguresInterval(t *testing.T) {
	rig := newTestRig(t)

	require.NoError(t, rig.s.StartScanning(context.Background(), time.Hour))
	require.True(t, rig.s.Active())

	// Re-arming with a short interval must replace the pending
	// one-hour timer, not stack a second one.
	require.NoError(t, rig.s.StartScanning(context.Background(), testInterval))

	require.Eventually(t, func() bool {
		return rig.radio.acceptedCount() >= 1
	}, waitFor, tick)

	rig.radio.complete(true)

	require.Eventually(t, func() bool {
		return rig.radio.acceptedCount() >= 2
	}, waitFor, tick)

	assert.Equal(t, rig.radio.acceptedCount(), rig.radio.attemptCount())
}

func TestRejectedTriggerRetriesForever(t *testing.T) {
	rig := newTestRig(t)
	rig.radio.setAccept(false)

	listener := &countingListener{}
	rig.s.AddListener(listener)

	require.NoError(t, rig.s.StartScanning(context.Background(), 15*time.Millisecond))

	// Every rejected attempt re-arms the same interval and surfaces a
	// trigger_rejected event. No backoff, no give-up.
	require.Eventually(t, func() bool {
		return rig.radio.attemptCount() >= 3
	}, waitFor, tick)

	require.Eventually(t, func() bool {
		return listener.errorsOfKind(KindTriggerRejected) >= 3
	}, waitFor, tick)

	assert.Zero(t, rig.radio.acceptedCount())
	assert.True(t, rig.s.Active())

	// Once the platform accepts again the loop recovers on its own.
	rig.radio.setAccept(true)

	require.Eventually(t, func() bool {
		return rig.radio.acceptedCount() == 1
	}, waitFor, tick)

	rig.radio.complete(true)

	require.Eventually(t, func() bool {
		return listener.batchCount() == 1
	}, waitFor, tick)
}

func TestPauseCancelsPendingTrigger(t *testing.T) {
	rig := newTestRig(t)

	require.NoError(t, rig.s.StartScanning(context.Background(), 20*time.Millisecond))
	rig.s.Pause()

	assert.True(t, rig.s.Status().Paused)
	assert.False(t, rig.s.Active())

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, rig.radio.attemptCount())
}

func TestResumeRestartsScanning(t *testing.T) {
	rig := newTestRig(t)

	require.NoError(t, rig.s.StartScanning(context.Background(), testInterval))
	rig.s.Pause()
	rig.s.Resume()

	assert.True(t, rig.s.Active())

	require.Eventually(t, func() bool {
		return rig.radio.attemptCount() >= 1
	}, waitFor, tick)
}

func TestResumeWithoutPauseIsNoOp(t *testing.T) {
	rig := newTestRig(t)

	rig.s.Resume()
	assert.False(t, rig.s.Active())

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, rig.radio.attemptCount())
}

func TestPauseWhenIdleIsNoOp(t *testing.T) {
	rig := newTestRig(t)

	rig.s.Pause()

	status := rig.s.Status()
	assert.False(t, status.Armed)
	assert.False(t, status.Paused)
}

func TestStopScanningIsIdempotent(t *testing.T) {
	rig := newTestRig(t)

	require.NoError(t, rig.s.StartScanning(context.Background(), testInterval))

	rig.s.StopScanning()
	rig.s.StopScanning()

	assert.False(t, rig.s.Active())
	assert.False(t, rig.s.Status().Armed)

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, rig.radio.attemptCount())
}

func TestScanOnceWhileIdle(t *testing.T) {
	rig := newTestRig(t)
	rig.radio.setResults([]radio.BSS{testBSS("lab", "aa:bb:cc:dd:ee:01")}, nil)

	listener := &countingListener{}
	rig.s.AddListener(listener)

	require.NoError(t, rig.s.ScanOnce(context.Background()))
	assert.Equal(t, 1, rig.radio.acceptedCount())

	rig.radio.complete(true)

	require.Eventually(t, func() bool {
		return listener.batchCount() == 1
	}, waitFor, tick)

	// A one-shot scan never arms the periodic loop.
	assert.False(t, rig.s.Active())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, rig.radio.attemptCount())
}

func TestScanOnceWhilePaused(t *testing.T) {
	rig := newTestRig(t)

	require.NoError(t, rig.s.StartScanning(context.Background(), time.Hour))
	rig.s.Pause()

	require.NoError(t, rig.s.ScanOnce(context.Background()))
	assert.Equal(t, 1, rig.radio.acceptedCount())

	rig.radio.complete(true)

	require.Eventually(t, func() bool {
		return !rig.s.LastBatch().CompletedAt.IsZero()
	}, waitFor, tick)

	// Completion of a one-shot must not revive the paused loop.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, rig.radio.attemptCount())
	assert.True(t, rig.s.Status().Paused)
}

func TestScanOnceSupersedesPendingTrigger(t *testing.T) {
	rig := newTestRig(t)

	require.NoError(t, rig.s.StartScanning(context.Background(), 40*time.Millisecond))
	require.NoError(t, rig.s.ScanOnce(context.Background()))

	assert.Equal(t, 1, rig.radio.acceptedCount())

	// The pending periodic trigger was cancelled when the one-shot was
	// accepted, so nothing else fires until this scan completes.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, rig.radio.attemptCount())

	rig.radio.complete(true)

	// Completion re-arms the loop because it is still active.
	require.Eventually(t, func() bool {
		return rig.radio.acceptedCount() >= 2
	}, waitFor, tick)
}

func TestScanOnceRejectedWhileOutstanding(t *testing.T) {
	rig := newTestRig(t)

	listener := &countingListener{}
	rig.s.AddListener(listener)

	require.NoError(t, rig.s.ScanOnce(context.Background()))

	err := rig.s.ScanOnce(context.Background())
	assert.ErrorIs(t, err, ErrTriggerRejected)
	assert.Equal(t, 1, listener.errorsOfKind(KindTriggerRejected))

	// Only the first request reached the radio.
	assert.Equal(t, 1, rig.radio.attemptCount())
}

func TestScanOnceRejectedByRadio(t *testing.T) {
	rig := newTestRig(t)
	rig.radio.setAccept(false)

	listener := &countingListener{}
	rig.s.AddListener(listener)

	err := rig.s.ScanOnce(context.Background())
	assert.ErrorIs(t, err, ErrTriggerRejected)
	assert.Equal(t, 1, listener.errorsOfKind(KindTriggerRejected))

	// One-shot rejections are not retried.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, rig.radio.attemptCount())
}

func TestScanOncePreconditions(t *testing.T) {
	rig := newTestRig(t)
	rig.perms.SetAllowed(false)

	err := rig.s.ScanOnce(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)

	rig.perms.SetAllowed(true)
	rig.radio.setEnabled(false)

	err = rig.s.ScanOnce(context.Background())
	assert.ErrorIs(t, err, ErrRadioDisabled)

	assert.Zero(t, rig.radio.attemptCount())
}

func TestWatchdogExpiryFailsCycle(t *testing.T) {
	rig := newTestRig(t, WithWatchdog(30*time.Millisecond))

	listener := &countingListener{}
	rig.s.AddListener(listener)

	require.NoError(t, rig.s.StartScanning(context.Background(), 15*time.Millisecond))

	require.Eventually(t, func() bool {
		return rig.radio.acceptedCount() >= 1
	}, waitFor, tick)

	// No completion arrives; the watchdog gives up on the cycle and the
	// loop re-arms.
	require.Eventually(t, func() bool {
		return listener.errorsOfKind(KindScanFailed) >= 1
	}, waitFor, tick)

	require.Eventually(t, func() bool {
		return rig.radio.acceptedCount() >= 2
	}, waitFor, tick)
}

func TestLateCompletionAfterWatchdog(t *testing.T) {
	rig := newTestRig(t, WithWatchdog(20*time.Millisecond))
	rig.radio.setResults([]radio.BSS{testBSS("late", "aa:bb:cc:dd:ee:09")}, nil)

	listener := &countingListener{}
	rig.s.AddListener(listener)

	require.NoError(t, rig.s.ScanOnce(context.Background()))

	// Wait for the watchdog to declare the cycle failed.
	require.Eventually(t, func() bool {
		return listener.errorsOfKind(KindScanFailed) == 1
	}, waitFor, tick)

	// The real completion then lands. It is no longer ours, so the
	// cache refreshes silently without a second outcome.
	rig.radio.complete(true)

	require.Eventually(t, func() bool {
		return len(rig.s.LastBatch().Networks) == 1
	}, waitFor, tick)

	assert.Zero(t, listener.batchCount())
	assert.Equal(t, 1, listener.errorCount())
}
