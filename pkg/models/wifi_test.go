package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandFromFrequency(t *testing.T) {
	tests := []struct {
		name string
		freq int
		want Band
	}{
		{name: "2.4GHz channel 6", freq: 2437, want: Band24GHz},
		{name: "2.4GHz channel 14", freq: 2484, want: Band24GHz},
		{name: "5GHz channel 36", freq: 5180, want: Band5GHz},
		{name: "5GHz upper edge", freq: 5885, want: Band5GHz},
		{name: "6GHz lower channels", freq: 5955, want: Band6GHz},
		{name: "6GHz upper channels", freq: 7115, want: Band6GHz},
		{name: "below every band", freq: 1000, want: BandUnknown},
		{name: "gap between 5GHz and 6GHz", freq: 5910, want: BandUnknown},
		{name: "above 6GHz", freq: 7200, want: BandUnknown},
		{name: "zero frequency", freq: 0, want: BandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BandFromFrequency(tt.freq))
		})
	}
}

func TestBandPredicates(t *testing.T) {
	assert.True(t, Is24GHz(2437))
	assert.False(t, Is5GHz(2437))
	assert.False(t, Is6GHz(2437))

	assert.True(t, Is5GHz(5180))
	assert.False(t, Is24GHz(5180))

	assert.True(t, Is6GHz(5955))
	assert.False(t, Is5GHz(5955))
}

// Every frequency must classify into at most one band.
func TestBandRangesDisjoint(t *testing.T) {
	for freq := 0; freq <= 8000; freq++ {
		matches := 0

		if Is24GHz(freq) {
			matches++
		}

		if Is5GHz(freq) {
			matches++
		}

		if Is6GHz(freq) {
			matches++
		}

		require.LessOrEqual(t, matches, 1, "frequency %d matched %d bands", freq, matches)
	}
}

func TestChannelFromFrequency(t *testing.T) {
	tests := []struct {
		name string
		freq int
		want int
	}{
		{name: "2.4GHz channel 1", freq: 2412, want: 1},
		{name: "2.4GHz channel 6", freq: 2437, want: 6},
		{name: "2.4GHz channel 13", freq: 2472, want: 13},
		{name: "2.4GHz channel 14 offset", freq: 2484, want: 14},
		{name: "5GHz channel 36", freq: 5180, want: 36},
		{name: "5GHz channel 165", freq: 5825, want: 165},
		{name: "6GHz low channel", freq: 5955, want: 2},
		{name: "unmapped low frequency", freq: 1000, want: ChannelUnspecified},
		{name: "between 5GHz and 6GHz channels", freq: 5890, want: ChannelUnspecified},
		{name: "above 6GHz channels", freq: 7200, want: ChannelUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChannelFromFrequency(tt.freq))
		})
	}
}

func TestScanBatchEmpty(t *testing.T) {
	var batch ScanBatch
	assert.True(t, batch.Empty())

	batch.Networks = []ScanRecord{{SSID: "lab"}}
	assert.False(t, batch.Empty())
}
