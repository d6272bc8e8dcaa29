package client

import (
	"context"
	"log"

	"github.com/zllovesuki/IdeapadManager/controller"
	"github.com/zllovesuki/IdeapadManager/system/battery"
	"github.com/zllovesuki/IdeapadManager/system/performance"
)

// Direct uses the controllers in-process. Changes are saved to the state file so the
// daemon restores them on next start.
type Direct struct {
	dep *controller.Dependencies
}

var _ Interface = &Direct{}

// NewDirect returns a Direct using dep. The persisted settings are loaded but not
// applied.
func NewDirect(dep *controller.Dependencies) *Direct {
	if dep.ConfigRegistry != nil {
		if err := dep.ConfigRegistry.Load(); err != nil {
			log.Printf("client: cannot load settings: %s\n", err)
		}
	}
	return &Direct{
		dep: dep,
	}
}

func (d *Direct) controller(feature battery.Feature) battery.Controller {
	if feature == battery.Conservation {
		return d.dep.Conservation()
	}
	return d.dep.RapidCharge()
}

func (d *Direct) save() {
	if d.dep.ConfigRegistry == nil {
		return
	}
	if err := d.dep.ConfigRegistry.Save(); err != nil {
		log.Printf("client: cannot save settings: %s\n", err)
	}
}

// remember saves what the hardware reports, or fallback when it cannot be read
func (d *Direct) remember(c battery.Controller, fallback battery.State) {
	if d.dep.BatteryPreference == nil {
		return
	}
	s, err := battery.Status(c)
	if err != nil {
		log.Printf("client: cannot read battery status, remembering %s: %s\n", fallback, err)
		s = fallback
	}
	d.dep.BatteryPreference.Remember(s)
	d.save()
}

func (d *Direct) BatteryStatus(ctx context.Context) (battery.State, error) {
	return battery.Status(d.dep.Conservation())
}

func (d *Direct) Enable(ctx context.Context, feature battery.Feature, mode battery.Mode) error {
	c := d.controller(feature)
	if err := c.Enable(mode); err != nil {
		return err
	}
	d.remember(c, battery.State{
		Conservation: feature == battery.Conservation,
		RapidCharge:  feature == battery.RapidCharge,
	})
	return nil
}

func (d *Direct) Disable(ctx context.Context, feature battery.Feature) error {
	c := d.controller(feature)
	if err := c.Disable(); err != nil {
		return err
	}
	if d.dep.BatteryPreference == nil {
		return nil
	}
	fallback := d.dep.BatteryPreference.Current()
	if feature == battery.Conservation {
		fallback.Conservation = false
	} else {
		fallback.RapidCharge = false
	}
	d.remember(c, fallback)
	return nil
}

func (d *Direct) Performance(ctx context.Context) (performance.Mode, error) {
	return d.dep.Performance().Get()
}

func (d *Direct) SetPerformance(ctx context.Context, mode performance.Mode) error {
	if err := d.dep.Performance().Set(mode); err != nil {
		return err
	}
	d.rememberPerformance(mode)
	return nil
}

func (d *Direct) NextPerformance(ctx context.Context, howMany int) (performance.Mode, error) {
	mode, err := d.dep.Performance().Next(howMany)
	if err != nil {
		return mode, err
	}
	d.rememberPerformance(mode)
	return mode, nil
}

func (d *Direct) rememberPerformance(mode performance.Mode) {
	if d.dep.PerformancePreference != nil {
		d.dep.PerformancePreference.Remember(mode)
		d.save()
	}
}
