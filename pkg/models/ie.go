// Package models pkg/models/ie.go
package models

import (
	"errors"
	"fmt"
)

// IE is one raw 802.11 information element as carried in beacon and
// probe response frames.
type IE struct {
	ID   uint8  `json:"id"`
	Data []byte `json:"data"`
}

// Element IDs used for record enrichment.
const (
	ieHTOperation    = 61
	ieExtendedCaps   = 127
	ieVHTOperation   = 192
	ieVendorSpecific = 221
)

// VHT operation channel-width values.
const (
	vhtWidth2040  = 0
	vhtWidth80    = 1
	vhtWidth160   = 2
	vhtWidth80p80 = 3
)

// Extended Capabilities bit 70 signals fine-timing-measurement
// responder support (byte 8, bit 6).
const (
	extCapFTMByte = 8
	extCapFTMBit  = 0x40
)

// Wi-Fi Alliance vendor OUI and the Hotspot 2.0 indication subtype.
var wfaOUI = [3]byte{0x50, 0x6f, 0x9a}

const wfaHS20Indication = 0x10

var errTruncatedElement = errors.New("truncated information element")

// ParseIEs splits a raw element blob into its elements. The blob is a
// sequence of [id, length, payload...] entries; an entry whose declared
// length runs past the end of the blob invalidates the whole blob.
func ParseIEs(raw []byte) ([]IE, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var elements []IE

	for off := 0; off < len(raw); {
		if off+2 > len(raw) {
			return nil, fmt.Errorf("%w: header at offset %d", errTruncatedElement, off)
		}

		id := raw[off]
		length := int(raw[off+1])

		if off+2+length > len(raw) {
			return nil, fmt.Errorf("%w: element %d declares %d bytes at offset %d",
				errTruncatedElement, id, length, off)
		}

		data := make([]byte, length)
		copy(data, raw[off+2:off+2+length])

		elements = append(elements, IE{ID: id, Data: data})
		off += 2 + length
	}

	return elements, nil
}

// EnrichFromElements fills the extended record fields derived from raw
// information elements: channel width, center frequencies, FTM responder
// support and Passpoint indication. Elements must already be populated.
func (r *ScanRecord) EnrichFromElements() {
	r.ChannelWidth = Width20MHz

	for _, el := range r.Elements {
		switch el.ID {
		case ieHTOperation:
			// Secondary channel offset of zero means plain 20MHz.
			if r.ChannelWidth == Width20MHz && len(el.Data) >= 2 && el.Data[1]&0x03 != 0 {
				r.ChannelWidth = Width40MHz
			}
		case ieVHTOperation:
			r.applyVHTOperation(el.Data)
		case ieExtendedCaps:
			if len(el.Data) > extCapFTMByte && el.Data[extCapFTMByte]&extCapFTMBit != 0 {
				r.IsFTMResponder = true
			}
		case ieVendorSpecific:
			if len(el.Data) >= 4 &&
				el.Data[0] == wfaOUI[0] && el.Data[1] == wfaOUI[1] && el.Data[2] == wfaOUI[2] &&
				el.Data[3] == wfaHS20Indication {
				r.IsPasspoint = true
			}
		}
	}
}

func (r *ScanRecord) applyVHTOperation(data []byte) {
	if len(data) < 3 {
		return
	}

	switch data[0] {
	case vhtWidth80:
		r.ChannelWidth = Width80MHz
	case vhtWidth160:
		r.ChannelWidth = Width160MHz
	case vhtWidth80p80:
		r.ChannelWidth = Width80p80MHz
	case vhtWidth2040:
		// Width stays whatever HT operation said.
	}

	// Center frequency segments are 5GHz channel numbers.
	if seg0 := int(data[1]); seg0 > 0 {
		r.CenterFreq0 = 5000 + 5*seg0
	}

	if seg1 := int(data[2]); seg1 > 0 {
		r.CenterFreq1 = 5000 + 5*seg1
	}
}
