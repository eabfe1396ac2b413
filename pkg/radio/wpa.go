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

package radio

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"golang.org/x/time/rate"
)

const (
	wpaService        = "fi.w1.wpa_supplicant1"
	wpaRootPath       = dbus.ObjectPath("/fi/w1/wpa_supplicant1")
	wpaRootIface      = "fi.w1.wpa_supplicant1"
	wpaInterfaceIface = wpaRootIface + ".Interface"
	wpaBSSIface       = wpaRootIface + ".BSS"

	dbusPropsGetAll = "org.freedesktop.DBus.Properties.GetAll"

	// eventBuffer absorbs completion signals while the consumer is
	// between reads. The supplicant emits at most one per scan.
	eventBuffer = 4
)

// defaultScanRate matches the supplicant's own tolerance: bursts are
// fine, sustained triggering beyond ~1 scan per 10s is not.
var defaultScanRate = rate.Every(10 * time.Second)

// WPAConfig configures the wpa_supplicant-backed radio.
type WPAConfig struct {
	// Interface is the device to scan on. Empty means autodetect the
	// first 802.11 station interface.
	Interface string

	// ScanRate and ScanBurst bound how fast triggers are admitted to
	// the supplicant. Zero values pick conservative defaults.
	ScanRate  rate.Limit
	ScanBurst int
}

// WPARadio drives scans through wpa_supplicant's D-Bus control
// interface. It satisfies Radio.
type WPARadio struct {
	conn    *dbus.Conn
	iface   dbus.BusObject
	path    dbus.ObjectPath
	ifName  string
	limiter *rate.Limiter
	log     Logger

	events  chan Event
	signals chan *dbus.Signal

	done      chan struct{}
	closeOnce sync.Once
}

// NewWPARadio connects to the system bus and binds to the supplicant
// interface object for the configured device.
func NewWPARadio(ctx context.Context, cfg WPAConfig, log Logger) (*WPARadio, error) {
	if log == nil {
		log = noopLogger{}
	}

	name := cfg.Interface

	if name == "" {
		detected, err := DetectInterface()
		if err != nil {
			return nil, err
		}

		name = detected
		log.Infof("autodetected wifi interface %s", name)
	}

	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}

	var path dbus.ObjectPath

	root := conn.Object(wpaService, wpaRootPath)
	if err := root.CallWithContext(ctx, wpaRootIface+".GetInterface", 0, name).Store(&path); err != nil {
		return nil, fmt.Errorf("supplicant does not manage %s: %w", name, err)
	}

	limit := cfg.ScanRate
	if limit <= 0 {
		limit = defaultScanRate
	}

	burst := cfg.ScanBurst
	if burst <= 0 {
		burst = 2
	}

	r := &WPARadio{
		conn:    conn,
		iface:   conn.Object(wpaService, path),
		path:    path,
		ifName:  name,
		limiter: rate.NewLimiter(limit, burst),
		log:     log,
		events:  make(chan Event, eventBuffer),
		signals: make(chan *dbus.Signal, 16),
		done:    make(chan struct{}),
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(path),
		dbus.WithMatchInterface(wpaInterfaceIface),
		dbus.WithMatchMember("ScanDone"),
	); err != nil {
		return nil, fmt.Errorf("failed to subscribe to ScanDone: %w", err)
	}

	conn.Signal(r.signals)

	go r.watch()

	return r, nil
}

// Interface returns the device name the radio is bound to.
func (r *WPARadio) Interface() string {
	return r.ifName
}

// watch forwards supplicant ScanDone signals as completion events.
func (r *WPARadio) watch() {
	for {
		select {
		case <-r.done:
			return
		case sig, ok := <-r.signals:
			if !ok {
				return
			}

			if sig == nil || sig.Path != r.path || sig.Name != wpaInterfaceIface+".ScanDone" {
				continue
			}

			success := false
			if len(sig.Body) == 1 {
				success, _ = sig.Body[0].(bool)
			}

			r.log.Debugf("ScanDone on %s: success=%v", r.ifName, success)

			select {
			case r.events <- Event{Success: success, At: time.Now()}:
			case <-r.done:
				return
			}
		}
	}
}

// Enabled reports whether the supplicant considers the interface
// operational.
func (r *WPARadio) Enabled(_ context.Context) bool {
	v, err := r.iface.GetProperty(wpaInterfaceIface + ".State")
	if err != nil {
		r.log.Debugf("failed to read interface state: %v", err)
		return false
	}

	state, _ := v.Value().(string)

	return state != "" && state != "interface_disabled"
}

// StartScan submits an active scan request. A throttled or declined
// request returns false and produces no completion event.
func (r *WPARadio) StartScan(ctx context.Context) bool {
	if !r.limiter.Allow() {
		r.log.Debugf("scan trigger throttled on %s", r.ifName)
		return false
	}

	args := map[string]interface{}{"Type": "active"}

	if call := r.iface.CallWithContext(ctx, wpaInterfaceIface+".Scan", 0, args); call.Err != nil {
		r.log.Warnf("supplicant rejected scan on %s: %v", r.ifName, call.Err)
		return false
	}

	return true
}

// Results walks the supplicant's BSS list into raw records. Entries
// that expire between the list read and the property read are skipped.
func (r *WPARadio) Results(ctx context.Context) ([]BSS, error) {
	v, err := r.iface.GetProperty(wpaInterfaceIface + ".BSSs")
	if err != nil {
		return nil, fmt.Errorf("failed to list BSSs: %w", err)
	}

	paths, ok := v.Value().([]dbus.ObjectPath)
	if !ok {
		return nil, fmt.Errorf("%w: BSSs property is %T", errUnexpectedType, v.Value())
	}

	results := make([]BSS, 0, len(paths))

	for _, p := range paths {
		obj := r.conn.Object(wpaService, p)

		var props map[string]dbus.Variant
		if err := obj.CallWithContext(ctx, dbusPropsGetAll, 0, wpaBSSIface).Store(&props); err != nil {
			r.log.Debugf("skipping expired BSS %s: %v", p, err)
			continue
		}

		results = append(results, bssFromProperties(props))
	}

	return results, nil
}

// Events implements Radio.
func (r *WPARadio) Events() <-chan Event {
	return r.events
}

// Close tears down the signal subscription and the bus connection.
func (r *WPARadio) Close() error {
	var err error

	r.closeOnce.Do(func() {
		close(r.done)

		if rmErr := r.conn.RemoveMatchSignal(
			dbus.WithMatchObjectPath(r.path),
			dbus.WithMatchInterface(wpaInterfaceIface),
			dbus.WithMatchMember("ScanDone"),
		); rmErr != nil {
			r.log.Debugf("failed to remove signal match: %v", rmErr)
		}

		r.conn.RemoveSignal(r.signals)

		err = r.conn.Close()
	})

	return err
}

// bssFromProperties converts one supplicant BSS property map into a raw
// record, tolerating missing keys.
func bssFromProperties(props map[string]dbus.Variant) BSS {
	var bss BSS

	if v, ok := props["SSID"]; ok {
		bss.SSID, _ = v.Value().([]byte)
	}

	if v, ok := props["BSSID"]; ok {
		if raw, isBytes := v.Value().([]byte); isBytes && len(raw) > 0 {
			bss.BSSID = net.HardwareAddr(raw).String()
		}
	}

	if v, ok := props["Frequency"]; ok {
		bss.Frequency = variantInt(v)
	}

	if v, ok := props["Signal"]; ok {
		bss.Signal = variantInt(v)
	}

	if v, ok := props["Age"]; ok {
		bss.Age = variantInt(v)
	}

	if v, ok := props["Privacy"]; ok {
		bss.Privacy, _ = v.Value().(bool)
	}

	if v, ok := props["Mode"]; ok {
		bss.Mode, _ = v.Value().(string)
	}

	if v, ok := props["IEs"]; ok {
		bss.IEs, _ = v.Value().([]byte)
	}

	bss.WPA = securitySummary(props["WPA"])
	bss.RSN = securitySummary(props["RSN"])

	return bss
}

// securitySummary unpacks a supplicant WPA/RSN property dict. A missing
// or empty dict yields nil.
func securitySummary(v dbus.Variant) *SecSummary {
	dict, ok := v.Value().(map[string]dbus.Variant)
	if !ok || len(dict) == 0 {
		return nil
	}

	var sec SecSummary

	if km, isStrs := dict["KeyMgmt"].Value().([]string); isStrs {
		sec.KeyMgmt = km
	}

	if pw, isStrs := dict["Pairwise"].Value().([]string); isStrs {
		sec.Pairwise = pw
	}

	if len(sec.KeyMgmt) == 0 && len(sec.Pairwise) == 0 {
		return nil
	}

	return &sec
}

// variantInt widens any integer-typed variant to int. The supplicant
// mixes uint16, int16 and uint32 across BSS properties.
func variantInt(v dbus.Variant) int {
	switch n := v.Value().(type) {
	case int16:
		return int(n)
	case uint16:
		return int(n)
	case int32:
		return int(n)
	case uint32:
		return int(n)
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
