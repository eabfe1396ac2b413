package radio

import (
	"context"
	"sync"
)

// StaticPermissions grants or denies every scan request. The zero
// value denies.
type StaticPermissions bool

// CanScan implements Permissions.
func (p StaticPermissions) CanScan(context.Context) bool {
	return bool(p)
}

// TogglePermissions is a Permissions implementation whose grant can be
// flipped at runtime, e.g. from an operator kill switch. Safe for
// concurrent use.
type TogglePermissions struct {
	mu    sync.RWMutex
	allow bool
}

// NewTogglePermissions returns a TogglePermissions with the given
// initial grant.
func NewTogglePermissions(allow bool) *TogglePermissions {
	return &TogglePermissions{allow: allow}
}

// CanScan implements Permissions.
func (p *TogglePermissions) CanScan(context.Context) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.allow
}

// SetAllowed updates the grant. Scans already in flight are not
// interrupted; their results are re-checked against the new grant.
func (p *TogglePermissions) SetAllowed(allow bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.allow = allow
}

// Allowed reports the current grant without consuming it.
func (p *TogglePermissions) Allowed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.allow
}
