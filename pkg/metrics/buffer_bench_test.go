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

package metrics

import (
	"testing"
	"time"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

// ChannelBuffer is a channel-based alternative kept around for
// benchmark comparison against the ring.
type ChannelBuffer struct {
	points chan cyclePoint
	size   int
}

// NewChannelBuffer creates a new ChannelBuffer with the specified size.
func NewChannelBuffer(size int) *ChannelBuffer {
	return &ChannelBuffer{
		points: make(chan cyclePoint, size),
		size:   size,
	}
}

// AddCycle adds a cycle to the buffer, dropping the oldest when full.
func (b *ChannelBuffer) AddCycle(point models.CyclePoint) {
	packed := cyclePoint{
		timestamp: point.Timestamp.UnixNano(),
		elapsed:   point.Elapsed,
		networks:  int32(point.Networks),
		outcome:   point.Outcome,
	}

	select {
	case b.points <- packed:
	default:
		// Drop the oldest point if the buffer is full
		<-b.points
		b.points <- packed
	}
}

// GetCycles drains and returns all buffered cycles.
func (b *ChannelBuffer) GetCycles() []models.CyclePoint {
	points := make([]models.CyclePoint, 0, b.size)

	for len(b.points) > 0 {
		p := <-b.points
		points = append(points, p.unpack())
	}

	return points
}

// BenchmarkRingBuffer benchmarks the RingBuffer implementation.
func BenchmarkRingBuffer(b *testing.B) {
	buffer := NewCycleBuffer(1000)
	now := time.Now()

	b.Run("AddCycle", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			buffer.AddCycle(cycleAt(now, i))
		}
	})

	b.Run("GetCycles", func(b *testing.B) {
		for i := 0; i < 1000; i++ {
			buffer.AddCycle(cycleAt(now, i))
		}

		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = buffer.GetCycles()
		}
	})
}

// BenchmarkChannelBuffer benchmarks the ChannelBuffer implementation.
func BenchmarkChannelBuffer(b *testing.B) {
	buffer := NewChannelBuffer(1000)
	now := time.Now()

	b.Run("AddCycle", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			buffer.AddCycle(cycleAt(now, i))
		}
	})

	b.Run("GetCycles", func(b *testing.B) {
		for i := 0; i < 1000; i++ {
			buffer.AddCycle(cycleAt(now, i))
		}

		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = buffer.GetCycles()
		}
	})
}
