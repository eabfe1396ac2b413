// Package models pkg/models/wifi.go
package models

import "time"

// Band identifies the radio band a frequency belongs to.
type Band string

const (
	Band24GHz   Band = "2.4GHz"
	Band5GHz    Band = "5GHz"
	Band6GHz    Band = "6GHz"
	BandUnknown Band = "unknown"
)

// ChannelWidth is the operating width advertised by an access point.
type ChannelWidth string

const (
	Width20MHz    ChannelWidth = "20MHz"
	Width40MHz    ChannelWidth = "40MHz"
	Width80MHz    ChannelWidth = "80MHz"
	Width160MHz   ChannelWidth = "160MHz"
	Width80p80MHz ChannelWidth = "80+80MHz"
)

// ChannelUnspecified is reported when a frequency maps to no known channel.
const ChannelUnspecified = -1

// Band boundaries in MHz. The classification ranges are exclusive on
// both ends and do not overlap; frequencies in the gaps (e.g. 5900-5925)
// classify as BandUnknown.
const (
	band24LowMHz  = 2400
	band24HighMHz = 2500
	band5LowMHz   = 4900
	band5HighMHz  = 5900
	band6LowMHz   = 5925
	band6HighMHz  = 7125
)

// Channel derivation anchors. Channel numbers are only defined inside
// the per-band first/last channel frequencies, which are narrower than
// the classification ranges above.
const (
	band24FirstChannelMHz = 2412
	band24LastChannelMHz  = 2484
	band5FirstChannelMHz  = 5160
	band5FirstChannelNum  = 32
	band5LastChannelMHz   = 5885
	band6FirstChannelMHz  = 5950
	band6LastChannelMHz   = 7115
)

// Is24GHz reports whether a frequency in MHz falls in the 2.4GHz band.
func Is24GHz(freqMHz int) bool {
	return freqMHz > band24LowMHz && freqMHz < band24HighMHz
}

// Is5GHz reports whether a frequency in MHz falls in the 5GHz band.
func Is5GHz(freqMHz int) bool {
	return freqMHz > band5LowMHz && freqMHz < band5HighMHz
}

// Is6GHz reports whether a frequency in MHz falls in the 6GHz band.
func Is6GHz(freqMHz int) bool {
	return freqMHz > band6LowMHz && freqMHz < band6HighMHz
}

// BandFromFrequency classifies a frequency in MHz into exactly one band.
func BandFromFrequency(freqMHz int) Band {
	switch {
	case Is24GHz(freqMHz):
		return Band24GHz
	case Is5GHz(freqMHz):
		return Band5GHz
	case Is6GHz(freqMHz):
		return Band6GHz
	default:
		return BandUnknown
	}
}

// ChannelFromFrequency converts a center frequency in MHz to its channel
// number, or ChannelUnspecified when the frequency is not a recognized
// channel. Channel 14 sits 12MHz above channel 13 and is special-cased.
func ChannelFromFrequency(freqMHz int) int {
	switch {
	case freqMHz == band24LastChannelMHz:
		return 14
	case freqMHz >= band24FirstChannelMHz && freqMHz < band24LastChannelMHz:
		return (freqMHz-band24FirstChannelMHz)/5 + 1
	case freqMHz >= band5FirstChannelMHz && freqMHz <= band5LastChannelMHz:
		return (freqMHz-band5FirstChannelMHz)/5 + band5FirstChannelNum
	case freqMHz >= band6FirstChannelMHz && freqMHz <= band6LastChannelMHz:
		return (freqMHz-band6FirstChannelMHz)/5 + 1
	default:
		return ChannelUnspecified
	}
}

// ScanRecord is one observed BSS in the stable, platform-independent
// shape. Records are value types; a published record is never mutated.
type ScanRecord struct {
	SSID           string    `json:"ssid"`
	BSSID          string    `json:"bssid"`
	Capabilities   string    `json:"capabilities"`
	SignalStrength int       `json:"signal_strength"` // dBm
	Frequency      int       `json:"frequency"`       // MHz
	Channel        int       `json:"channel"`
	Band           Band      `json:"band"`
	SeenAt         time.Time `json:"seen_at"`

	// Extended fields derived from information elements.
	ChannelWidth   ChannelWidth `json:"channel_width,omitempty"`
	CenterFreq0    int          `json:"center_freq0,omitempty"` // MHz
	CenterFreq1    int          `json:"center_freq1,omitempty"` // MHz
	IsPasspoint    bool         `json:"is_passpoint,omitempty"`
	IsFTMResponder bool         `json:"is_ftm_responder,omitempty"`
	Elements       []IE         `json:"elements,omitempty"`
}

// ScanBatch is the atomic unit of scan output: every network visible in
// one completed scan, plus the completion time. Consumers share the
// backing array and must treat a batch as read-only.
type ScanBatch struct {
	Networks    []ScanRecord `json:"networks"`
	CompletedAt time.Time    `json:"completed_at"`
}

// Empty reports whether the batch is the zero value, i.e. no scan has
// completed successfully yet.
func (b ScanBatch) Empty() bool {
	return len(b.Networks) == 0 && b.CompletedAt.IsZero()
}
