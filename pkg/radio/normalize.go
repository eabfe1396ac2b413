package radio

import (
	"fmt"
	"strings"
	"time"

	"github.com/mfreeman451/wifiradar/pkg/models"
)

// Normalize maps a raw platform record into the stable record shape.
// It is a pure function: band, channel, capability string and the
// IE-derived fields are all resolved here, exactly once per record.
func Normalize(bss BSS, at time.Time) (models.ScanRecord, error) {
	if bss.BSSID == "" {
		return models.ScanRecord{}, fmt.Errorf("%w: missing BSSID", errMalformedBSS)
	}

	elements, err := models.ParseIEs(bss.IEs)
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("%w: %s: %w", errMalformedBSS, bss.BSSID, err)
	}

	seenAt := at
	if bss.Age > 0 {
		seenAt = at.Add(-time.Duration(bss.Age) * time.Second)
	}

	record := models.ScanRecord{
		SSID:           string(bss.SSID),
		BSSID:          bss.BSSID,
		Capabilities:   capabilityString(bss),
		SignalStrength: bss.Signal,
		Frequency:      bss.Frequency,
		Channel:        models.ChannelFromFrequency(bss.Frequency),
		Band:           models.BandFromFrequency(bss.Frequency),
		SeenAt:         seenAt,
		Elements:       elements,
	}

	record.EnrichFromElements()

	return record, nil
}

// capabilityString renders the security summaries in the conventional
// bracketed form, e.g. "[WPA2-PSK-CCMP][ESS]".
func capabilityString(bss BSS) string {
	var sb strings.Builder

	if bss.WPA != nil {
		writeSuite(&sb, "WPA", bss.WPA)
	}

	if bss.RSN != nil {
		writeSuite(&sb, "WPA2", bss.RSN)
	}

	if bss.WPA == nil && bss.RSN == nil && bss.Privacy {
		sb.WriteString("[WEP]")
	}

	if bss.Mode == "ad-hoc" {
		sb.WriteString("[IBSS]")
	} else {
		sb.WriteString("[ESS]")
	}

	return sb.String()
}

func writeSuite(sb *strings.Builder, label string, sec *SecSummary) {
	sb.WriteByte('[')
	sb.WriteString(label)

	if len(sec.KeyMgmt) > 0 {
		sb.WriteByte('-')
		sb.WriteString(joinSuites(sec.KeyMgmt))
	}

	if len(sec.Pairwise) > 0 {
		sb.WriteByte('-')
		sb.WriteString(joinSuites(sec.Pairwise))
	}

	sb.WriteByte(']')
}

// joinSuites uppercases supplicant suite names and joins them with '+',
// dropping the redundant "wpa-" prefix ("wpa-psk" -> "PSK").
func joinSuites(suites []string) string {
	parts := make([]string, 0, len(suites))

	for _, s := range suites {
		s = strings.TrimPrefix(s, "wpa-")
		parts = append(parts, strings.ToUpper(s))
	}

	return strings.Join(parts, "+")
}
