package metrics

import (
	"sync"
	"time"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

// cyclePoint is the packed in-buffer representation of one cycle.
type cyclePoint struct {
	timestamp int64
	elapsed   int64
	networks  int32
	outcome   models.CycleOutcome
}

// RingBuffer keeps the most recent scan cycles in a fixed-size ring.
// Writers come from the dispatch goroutine and the watchdog, readers
// from the API, so slot access is guarded rather than lock-free.
type RingBuffer struct {
	mu     sync.RWMutex
	points []cyclePoint
	pos    int64
	count  int64
	size   int64
}

// NewCycleBuffer creates a CycleStore retaining the last size cycles.
func NewCycleBuffer(size int) CycleStore {
	if size < 1 {
		size = 1
	}

	return &RingBuffer{
		points: make([]cyclePoint, size),
		size:   int64(size),
	}
}

// AddCycle records one completed scan cycle, evicting the oldest entry
// once the ring is full.
func (b *RingBuffer) AddCycle(point models.CyclePoint) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.pos % b.size
	b.points[idx] = cyclePoint{
		timestamp: point.Timestamp.UnixNano(),
		elapsed:   point.Elapsed,
		networks:  int32(point.Networks),
		outcome:   point.Outcome,
	}

	b.pos++

	if b.count < b.size {
		b.count++
	}
}

// GetCycles returns the retained cycles, newest first. Only slots that
// were actually written are returned.
func (b *RingBuffer) GetCycles() []models.CyclePoint {
	b.mu.RLock()
	defer b.mu.RUnlock()

	points := make([]models.CyclePoint, b.count)

	for i := int64(0); i < b.count; i++ {
		idx := (b.pos - i - 1 + b.size) % b.size
		points[i] = b.points[idx].unpack()
	}

	return points
}

// LastCycle returns the most recent cycle, or nil if none was recorded.
func (b *RingBuffer) LastCycle() *models.CyclePoint {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}

	idx := (b.pos - 1 + b.size) % b.size
	point := b.points[idx].unpack()

	return &point
}

func (p cyclePoint) unpack() models.CyclePoint {
	return models.CyclePoint{
		Timestamp: time.Unix(0, p.timestamp),
		Elapsed:   p.elapsed,
		Networks:  int(p.networks),
		Outcome:   p.outcome,
	}
}
