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
	"sync"
	"time"

	"github.com/mfreeman451/wifiradar/pkg/models"
	"github.com/mfreeman451/wifiradar/pkg/radio"
)

// Scanner owns the scan scheduling policy for one radio: when scans
// fire, how failures retry, and how completed batches reach listeners.
type Scanner struct {
	radio    radio.Radio
	perms    radio.Permissions
	log      Logger
	cycles   CycleRecorder
	watchdog time.Duration

	// mu guards the trigger-loop state below. It is held across
	// StartScan calls so at most one scan is ever submitted at a time.
	mu          sync.Mutex
	running     bool
	armed       bool
	paused      bool
	interval    time.Duration
	timer       *time.Timer
	gen         uint64
	outstanding bool
	scanStart   time.Time
	scanSeq     uint64
	wdTimer     *time.Timer
	runCtx      context.Context

	cacheMu sync.RWMutex
	last    models.ScanBatch

	regMu     sync.RWMutex
	listeners map[Listener]struct{}

	// deliverMu serializes listener callbacks across every goroutine
	// that emits events.
	deliverMu sync.Mutex

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Option configures optional Scanner behavior.
type Option func(*Scanner)

// WithLogger sets the scanner's logger.
func WithLogger(log Logger) Option {
	return func(s *Scanner) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCycleRecorder wires a sink that receives one point per completed
// scan cycle.
func WithCycleRecorder(rec CycleRecorder) Option {
	return func(s *Scanner) {
		s.cycles = rec
	}
}

// WithWatchdog abandons an accepted scan that sees no completion
// within d, reporting it as a failed cycle. Zero disables the watchdog
// and an in-flight scan may wait forever.
func WithWatchdog(d time.Duration) Option {
	return func(s *Scanner) {
		s.watchdog = d
	}
}

// New creates a Scanner for the given radio and permission gate. The
// scanner is inert until Start is called.
func New(r radio.Radio, perms radio.Permissions, opts ...Option) *Scanner {
	s := &Scanner{
		radio:     r,
		perms:     perms,
		log:       noopLogger{},
		listeners: make(map[Listener]struct{}),
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start launches the completion pump. It must be called before any
// trigger operation.
func (s *Scanner) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errAlreadyStarted
	}

	s.running = true
	s.runCtx = ctx
	s.mu.Unlock()

	s.wg.Add(1)

	go s.pump(ctx)

	s.log.Infof("scanner started")

	return nil
}

// Stop disarms the trigger loop and shuts down the completion pump.
// In-flight platform scans cannot be cancelled; completions arriving
// after the pump exits are dropped.
func (s *Scanner) Stop(_ context.Context) error {
	s.StopScanning()

	s.stopOnce.Do(func() {
		close(s.done)
	})

	s.wg.Wait()

	s.mu.Lock()
	s.running = false

	if s.wdTimer != nil {
		s.wdTimer.Stop()
		s.wdTimer = nil
	}
	s.mu.Unlock()

	s.log.Infof("scanner stopped")

	return nil
}

// LastBatch returns the most recent successful batch, or the zero
// batch when no scan has completed yet. It never blocks on scan
// activity.
func (s *Scanner) LastBatch() models.ScanBatch {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	return s.last
}

// AddListener registers l for future deliveries. Registering the same
// listener twice is a no-op.
func (s *Scanner) AddListener(l Listener) {
	if l == nil {
		return
	}

	s.regMu.Lock()
	s.listeners[l] = struct{}{}
	s.regMu.Unlock()
}

// RemoveListener unregisters l. A delivery already in progress still
// reaches it.
func (s *Scanner) RemoveListener(l Listener) {
	s.regMu.Lock()
	delete(s.listeners, l)
	s.regMu.Unlock()
}

// Status is a point-in-time snapshot for operators.
type Status struct {
	Running     bool      `json:"running"`
	Armed       bool      `json:"armed"`
	Paused      bool      `json:"paused"`
	Active      bool      `json:"active"`
	Interval    string    `json:"interval,omitempty"`
	Outstanding bool      `json:"scan_in_flight"`
	LastBatchAt time.Time `json:"last_batch_at"`
	Networks    int       `json:"networks"`
}

// Status reports the current trigger-loop state and cache summary.
func (s *Scanner) Status() Status {
	s.mu.Lock()
	st := Status{
		Running:     s.running,
		Armed:       s.armed,
		Paused:      s.paused,
		Active:      s.armed && !s.paused,
		Outstanding: s.outstanding,
	}

	if s.armed {
		st.Interval = s.interval.String()
	}
	s.mu.Unlock()

	batch := s.LastBatch()
	st.LastBatchAt = batch.CompletedAt
	st.Networks = len(batch.Networks)

	return st
}

func (s *Scanner) snapshotListeners() []Listener {
	s.regMu.RLock()
	defer s.regMu.RUnlock()

	snapshot := make([]Listener, 0, len(s.listeners))
	for l := range s.listeners {
		snapshot = append(snapshot, l)
	}

	return snapshot
}

func (s *Scanner) notifyBatch(batch models.ScanBatch) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	for _, l := range s.snapshotListeners() {
		l.OnBatch(batch)
	}
}

// notifyError delivers a cycle-outcome error, serialized with batch
// deliveries.
func (s *Scanner) notifyError(kind EventKind, err error) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.emitError(kind, err)
}

// emitError fans an error out without the delivery lock. Caller-path
// failures (preconditions, manual-trigger rejections) use it directly
// so listener callbacks can safely call back into trigger operations.
func (s *Scanner) emitError(kind EventKind, err error) {
	event := Event{Kind: kind, Err: err, At: time.Now()}

	for _, l := range s.snapshotListeners() {
		l.OnError(event)
	}
}

func (s *Scanner) recordCycle(outcome models.CycleOutcome, networks int, elapsed time.Duration) {
	if s.cycles == nil {
		return
	}

	s.cycles.AddCycle(models.CyclePoint{
		Timestamp: time.Now(),
		Elapsed:   elapsed.Milliseconds(),
		Networks:  networks,
		Outcome:   outcome,
	})
}
