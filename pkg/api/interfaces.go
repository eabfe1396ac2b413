package api

import (
	"context"
	"time"

	"github.com/mfreeman451/wifiradar/pkg/models"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

//go:generate mockgen -destination=mock_api.go -package=api github.com/mfreeman451/wifiradar/pkg/api Control,PermissionToggle

// Control is the slice of the scanner the HTTP surface drives.
type Control interface {
	StartScanning(ctx context.Context, interval time.Duration) error
	StopScanning()
	Pause()
	Resume()
	ScanOnce(ctx context.Context) error
	LastBatch() models.ScanBatch
	Status() scanner.Status
	AddListener(l scanner.Listener)
	RemoveListener(l scanner.Listener)
}

// PermissionToggle exposes the runtime scan permission switch.
type PermissionToggle interface {
	SetAllowed(allow bool)
	Allowed() bool
}

// Logger is the subset of a structured logger this package needs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}
