package metrics

import (
	"github.com/mfreeman451/wifiradar/pkg/models"
)

//go:generate mockgen -destination=mock_buffer.go -package=metrics github.com/mfreeman451/wifiradar/pkg/metrics CycleStore

// CycleStore retains a bounded history of completed scan cycles.
type CycleStore interface {
	AddCycle(point models.CyclePoint)
	GetCycles() []models.CyclePoint
	LastCycle() *models.CyclePoint
}
