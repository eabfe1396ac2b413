package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

func cycleAt(ts time.Time, networks int) models.CyclePoint {
	return models.CyclePoint{
		Timestamp: ts,
		Elapsed:   1500,
		Networks:  networks,
		Outcome:   models.CycleSuccess,
	}
}

func TestCycleBuffer(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("empty buffer", func(t *testing.T) {
		buffer := NewCycleBuffer(8)

		assert.Empty(t, buffer.GetCycles())
		assert.Nil(t, buffer.LastCycle())
	})

	t.Run("returns only written cycles", func(t *testing.T) {
		buffer := NewCycleBuffer(8)

		buffer.AddCycle(cycleAt(now, 3))
		buffer.AddCycle(cycleAt(now.Add(time.Second), 5))

		cycles := buffer.GetCycles()
		require.Len(t, cycles, 2)

		// Newest first.
		assert.Equal(t, 5, cycles[0].Networks)
		assert.Equal(t, 3, cycles[1].Networks)
		assert.True(t, cycles[0].Timestamp.Equal(now.Add(time.Second)))
	})

	t.Run("wraps and evicts oldest", func(t *testing.T) {
		buffer := NewCycleBuffer(4)

		for i := 0; i < 10; i++ {
			buffer.AddCycle(cycleAt(now.Add(time.Duration(i)*time.Second), i))
		}

		cycles := buffer.GetCycles()
		require.Len(t, cycles, 4)

		for i, c := range cycles {
			assert.Equal(t, 9-i, c.Networks)
		}
	})

	t.Run("last cycle", func(t *testing.T) {
		buffer := NewCycleBuffer(4)

		buffer.AddCycle(models.CyclePoint{Timestamp: now, Outcome: models.CycleScanFailed})
		buffer.AddCycle(models.CyclePoint{Timestamp: now.Add(time.Second), Outcome: models.CycleSuccess, Networks: 7})

		last := buffer.LastCycle()
		require.NotNil(t, last)
		assert.Equal(t, models.CycleSuccess, last.Outcome)
		assert.Equal(t, 7, last.Networks)
	})

	t.Run("outcome and elapsed survive the round trip", func(t *testing.T) {
		buffer := NewCycleBuffer(2)

		buffer.AddCycle(models.CyclePoint{
			Timestamp: now,
			Elapsed:   2750,
			Networks:  12,
			Outcome:   models.CyclePermissionDenied,
		})

		cycles := buffer.GetCycles()
		require.Len(t, cycles, 1)
		assert.Equal(t, models.CyclePermissionDenied, cycles[0].Outcome)
		assert.Equal(t, int64(2750), cycles[0].Elapsed)
		assert.Equal(t, 12, cycles[0].Networks)
		assert.True(t, cycles[0].Timestamp.Equal(now))
	})

	t.Run("size clamped to one", func(t *testing.T) {
		buffer := NewCycleBuffer(0)

		buffer.AddCycle(cycleAt(now, 1))
		buffer.AddCycle(cycleAt(now.Add(time.Second), 2))

		cycles := buffer.GetCycles()
		require.Len(t, cycles, 1)
		assert.Equal(t, 2, cycles[0].Networks)
	})
}

func TestCycleBufferConcurrentAccess(t *testing.T) {
	buffer := NewCycleBuffer(64)
	done := make(chan bool)

	const goroutines = 8

	const iterations = 200

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			for j := 0; j < iterations; j++ {
				buffer.AddCycle(cycleAt(time.Now(), id*1000+j))
				_ = buffer.GetCycles()
			}
			done <- true
		}(i)
	}

	for i := 0; i < goroutines; i++ {
		<-done
	}

	assert.Len(t, buffer.GetCycles(), 64)
}
