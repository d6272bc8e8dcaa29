// Package client talks to the battery and performance controls, either through the
// daemon or directly through acpi_call.
package client

import (
	"context"

	"github.com/zllovesuki/IdeapadManager/system/battery"
	"github.com/zllovesuki/IdeapadManager/system/performance"
)

// Interface is implemented by Remote and Direct
type Interface interface {
	BatteryStatus(ctx context.Context) (battery.State, error)
	Enable(ctx context.Context, feature battery.Feature, mode battery.Mode) error
	Disable(ctx context.Context, feature battery.Feature) error

	Performance(ctx context.Context) (performance.Mode, error)
	SetPerformance(ctx context.Context, mode performance.Mode) error
	NextPerformance(ctx context.Context, howMany int) (performance.Mode, error)
}
