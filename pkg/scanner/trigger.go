package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

// StartScanning arms continuous scanning at the given interval; the
// first scan fires one full interval from now. Calling it while
// already armed reconfigures the interval in place, and while paused
// it also resumes.
func (s *Scanner) StartScanning(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	if err := s.ensureRunning(); err != nil {
		return err
	}

	if err := s.checkPreconditions(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.armed = true
	s.paused = false
	s.interval = interval

	if !s.outstanding {
		s.resetTimerLocked(interval)
	}
	s.mu.Unlock()

	s.log.Infof("continuous scanning armed at %s", interval)

	return nil
}

// StopScanning disarms continuous scanning. Idempotent. An in-flight
// scan keeps running; its completion updates the cache and notifies
// listeners but does not re-arm.
func (s *Scanner) StopScanning() {
	s.mu.Lock()
	wasArmed := s.armed
	s.armed = false
	s.paused = false
	s.cancelTimerLocked()
	s.mu.Unlock()

	if wasArmed {
		s.log.Infof("continuous scanning disarmed")
	}
}

// Pause suspends scheduling without forgetting the armed state. Only
// meaningful while armed and unpaused; a no-op otherwise.
func (s *Scanner) Pause() {
	s.mu.Lock()
	if !s.armed || s.paused {
		s.mu.Unlock()
		return
	}

	s.paused = true
	s.cancelTimerLocked()
	s.mu.Unlock()

	s.log.Infof("scanning paused")
}

// Resume re-enables scheduling after Pause, arming a fresh, full
// interval; time elapsed before the pause is forgotten.
func (s *Scanner) Resume() {
	s.mu.Lock()
	if !s.armed || !s.paused {
		s.mu.Unlock()
		return
	}

	s.paused = false

	if !s.outstanding {
		s.resetTimerLocked(s.interval)
	}
	s.mu.Unlock()

	s.log.Infof("scanning resumed")
}

// Active reports whether the trigger loop is armed and not paused.
func (s *Scanner) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.armed && !s.paused
}

// ScanOnce fires exactly one scan attempt immediately, independent of
// the armed and paused states, which it leaves untouched.
func (s *Scanner) ScanOnce(ctx context.Context) error {
	if err := s.ensureRunning(); err != nil {
		return err
	}

	if err := s.checkPreconditions(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	if s.outstanding {
		s.mu.Unlock()
		s.emitError(KindTriggerRejected, fmt.Errorf("%w: scan already in flight", ErrTriggerRejected))

		return ErrTriggerRejected
	}

	if !s.radio.StartScan(ctx) {
		s.mu.Unlock()
		s.emitError(KindTriggerRejected, ErrTriggerRejected)

		return ErrTriggerRejected
	}

	s.beginScanLocked()
	// A pending timer alongside an outstanding scan would double
	// trigger; the completion re-arms the cadence.
	s.cancelTimerLocked()
	s.mu.Unlock()

	s.log.Debugf("manual scan accepted")

	return nil
}

func (s *Scanner) ensureRunning() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrNotRunning
	}

	return nil
}

// checkPreconditions verifies the scan grant and radio power state,
// emitting the corresponding event on failure. Emission happens on the
// calling goroutine, outside the delivery lock.
func (s *Scanner) checkPreconditions(ctx context.Context) error {
	if !s.perms.CanScan(ctx) {
		s.emitError(KindPermissionDenied, ErrPermissionDenied)
		return ErrPermissionDenied
	}

	if !s.radio.Enabled(ctx) {
		s.emitError(KindRadioDisabled, ErrRadioDisabled)
		return ErrRadioDisabled
	}

	return nil
}

// fire runs on the timer goroutine when an interval elapses.
func (s *Scanner) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.armed || s.paused || s.outstanding {
		s.mu.Unlock()
		return
	}

	s.timer = nil

	if s.radio.StartScan(s.runCtx) {
		s.beginScanLocked()
		s.mu.Unlock()

		s.log.Debugf("periodic scan accepted")

		return
	}

	// Declined by the platform: keep the cadence and retry after one
	// full interval, forever.
	interval := s.interval
	s.resetTimerLocked(interval)
	s.mu.Unlock()

	s.log.Warnf("periodic scan trigger rejected, retrying in %s", interval)
	s.notifyError(KindTriggerRejected, ErrTriggerRejected)
}

// beginScanLocked marks an accepted scan outstanding and arms the
// watchdog. Callers hold mu.
func (s *Scanner) beginScanLocked() {
	s.outstanding = true
	s.scanStart = time.Now()
	s.scanSeq++
	s.startWatchdogLocked(s.scanSeq)
}

// resetTimerLocked replaces any pending timer with a fresh one.
// Callers hold mu.
func (s *Scanner) resetTimerLocked(d time.Duration) {
	if s.timer != nil {
		s.timer.Stop()
	}

	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(d, func() { s.fire(gen) })
}

// cancelTimerLocked stops and clears any pending timer. Callers hold mu.
func (s *Scanner) cancelTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.gen++
}

// armNextIfActive arms the next periodic fire if the loop is still
// armed, unpaused and idle.
func (s *Scanner) armNextIfActive() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.armed && !s.paused && !s.outstanding {
		s.resetTimerLocked(s.interval)
	}
}

func (s *Scanner) startWatchdogLocked(seq uint64) {
	if s.watchdog <= 0 {
		return
	}

	if s.wdTimer != nil {
		s.wdTimer.Stop()
	}

	s.wdTimer = time.AfterFunc(s.watchdog, func() { s.expireScan(seq) })
}

// expireScan abandons an accepted scan that never completed. A real
// completion arriving later counts as unsolicited: it may refresh the
// cache but cannot notify or re-arm a second time.
func (s *Scanner) expireScan(seq uint64) {
	s.mu.Lock()
	if !s.outstanding || seq != s.scanSeq {
		s.mu.Unlock()
		return
	}

	s.outstanding = false
	s.wdTimer = nil
	elapsed := time.Since(s.scanStart)
	s.mu.Unlock()

	s.log.Warnf("scan watchdog expired after %s", elapsed.Round(time.Millisecond))

	s.recordCycle(models.CycleScanFailed, 0, elapsed)
	s.notifyError(KindScanFailed, fmt.Errorf("%w: watchdog expired", ErrScanFailed))
	s.armNextIfActive()
}
