package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/mfreeman451/wifiradar/pkg/models"
	"github.com/mfreeman451/wifiradar/pkg/radio"
)

// pump serializes completion processing: it is the only goroutine that
// runs handleCompletion, which gives every listener a stable delivery
// order matching completion order.
func (s *Scanner) pump(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case event, ok := <-s.radio.Events():
			if !ok {
				return
			}

			s.handleCompletion(ctx, event)
		}
	}
}

// handleCompletion is the single entry point for scan completions.
// Exactly one batch or error reaches listeners per completed cycle,
// and every outcome re-arms the loop while it stays armed and unpaused.
func (s *Scanner) handleCompletion(ctx context.Context, event radio.Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	s.mu.Lock()
	mine := s.outstanding
	s.outstanding = false

	if s.wdTimer != nil {
		s.wdTimer.Stop()
		s.wdTimer = nil
	}

	elapsed := time.Since(s.scanStart)
	s.mu.Unlock()

	if !mine {
		// Unsolicited: another supplicant client scanned, or the
		// watchdog already wrote this cycle off. Freshest data wins,
		// but nothing is notified and nothing re-arms.
		if event.Success {
			if batch, err := s.collect(ctx, event.At); err == nil {
				s.storeBatch(batch)
				s.log.Debugf("cache refreshed from unsolicited scan: %d networks", len(batch.Networks))
			}
		}

		return
	}

	if !event.Success {
		s.log.Warnf("scan failed after %s", elapsed.Round(time.Millisecond))
		s.recordCycle(models.CycleScanFailed, 0, elapsed)
		s.notifyError(KindScanFailed, ErrScanFailed)
		s.armNextIfActive()

		return
	}

	// The grant can be revoked while a scan is in flight; results from
	// such a scan must not be surfaced.
	if !s.perms.CanScan(ctx) {
		s.log.Warnf("scan permission revoked mid-flight")
		s.recordCycle(models.CyclePermissionDenied, 0, elapsed)
		s.notifyError(KindPermissionDenied, ErrPermissionDenied)
		s.armNextIfActive()

		return
	}

	batch, err := s.collect(ctx, event.At)
	if err != nil {
		s.log.Errorf("failed to process scan results: %v", err)
		s.recordCycle(models.CycleProcessingError, 0, elapsed)
		s.notifyError(KindProcessingError, fmt.Errorf("%w: %w", ErrProcessing, err))
		s.armNextIfActive()

		return
	}

	s.storeBatch(batch)
	s.recordCycle(models.CycleSuccess, len(batch.Networks), elapsed)
	s.log.Infof("scan completed: %d networks in %s", len(batch.Networks), elapsed.Round(time.Millisecond))
	s.notifyBatch(batch)
	s.armNextIfActive()
}

// collect fetches raw results and normalizes them into a batch. Any
// malformed record fails the whole cycle; the cache is never fed a
// partial batch.
func (s *Scanner) collect(ctx context.Context, at time.Time) (models.ScanBatch, error) {
	raw, err := s.radio.Results(ctx)
	if err != nil {
		return models.ScanBatch{}, fmt.Errorf("failed to fetch results: %w", err)
	}

	networks := make([]models.ScanRecord, 0, len(raw))

	for _, bss := range raw {
		record, err := radio.Normalize(bss, at)
		if err != nil {
			return models.ScanBatch{}, err
		}

		networks = append(networks, record)
	}

	return models.ScanBatch{Networks: networks, CompletedAt: at}, nil
}

// storeBatch atomically replaces the cached batch. Readers observe the
// old batch or the new one, never a mix.
func (s *Scanner) storeBatch(batch models.ScanBatch) {
	s.cacheMu.Lock()
	s.last = batch
	s.cacheMu.Unlock()
}
