// Package battery controls battery conservation and rapid charge. The two cannot be
// enabled at the same time, so enabling one consults the other first.
package battery

import (
	"log"

	"github.com/zllovesuki/IdeapadManager/system/acpicall"
	"github.com/zllovesuki/IdeapadManager/system/guard"
	"github.com/zllovesuki/IdeapadManager/system/profile"

	"github.com/pkg/errors"
)

var (
	// ErrConservationEnabled is returned by ModeError when enabling rapid charge
	ErrConservationEnabled = errors.New("battery conservation is enabled, disable it before enabling rapid charge")
	// ErrRapidChargeEnabled is returned by ModeError when enabling battery conservation
	ErrRapidChargeEnabled = errors.New("rapid charge is enabled, disable it first before enabling battery conservation mode")
)

// Controller controls one battery feature. It holds no state of its own and is
// cheap to copy.
type Controller struct {
	Profile *profile.Profile
	Caller  acpicall.Caller
	// Sink receives guard release errors. The process-wide default is used when nil.
	Sink guard.Sink

	feature Feature
}

// New returns a Controller for feature
func New(feature Feature, p *profile.Profile, c acpicall.Caller) Controller {
	return Controller{
		Profile: p,
		Caller:  c,
		feature: feature,
	}
}

// NewConservation returns a Controller for battery conservation
func NewConservation(p *profile.Profile, c acpicall.Caller) Controller {
	return New(Conservation, p, c)
}

// NewRapidCharge returns a Controller for rapid charge
func NewRapidCharge(p *profile.Profile, c acpicall.Caller) Controller {
	return New(RapidCharge, p, c)
}

// Feature returns the feature controlled
func (c Controller) Feature() Feature {
	return c.feature
}

// Opposing returns a Controller for the other feature, sharing the same profile,
// caller and sink
func (c Controller) Opposing() Controller {
	o := c
	o.feature = c.feature.Opposing()
	return o
}

func (c Controller) config() profile.Feature {
	if c.feature == Conservation {
		return c.Profile.Battery.Conservation
	}
	return c.Profile.Battery.RapidCharge
}

func (c Controller) conflict() error {
	if c.feature == Conservation {
		return ErrRapidChargeEnabled
	}
	return ErrConservationEnabled
}

func (c Controller) set(parameter uint32) error {
	if _, err := c.Caller.Call(c.Profile.Battery.SetCommand, parameter); err != nil {
		return errors.Wrapf(err, "battery: cannot set %s", c.feature)
	}
	return nil
}

// Enable enables the feature, resolving a conflict with the opposing feature
// according to mode
func (c Controller) Enable(mode Mode) error {
	switch mode {
	case ModeIgnore:
		return c.EnableIgnore()
	case ModeError:
		return c.EnableError()
	case ModeSwitch:
		return c.EnableSwitch()
	default:
		return errors.Wrapf(ErrInvalidMode, "%d", int(mode))
	}
}

// EnableIgnore enables the feature without looking at the opposing feature. Both
// may end up enabled; some models turn battery conservation off by themselves when
// rapid charge is enabled.
func (c Controller) EnableIgnore() error {
	if err := c.set(c.config().Parameters.Enable); err != nil {
		return err
	}
	log.Printf("battery: %s enabled\n", c.feature)
	return nil
}

// EnableError enables the feature, failing without touching the hardware if the
// opposing feature is enabled
func (c Controller) EnableError() error {
	enabled, err := c.Opposing().Enabled()
	if err != nil {
		return err
	}
	if enabled {
		return c.conflict()
	}
	return c.EnableIgnore()
}

// EnableSwitch enables the feature, disabling the opposing feature first if needed
func (c Controller) EnableSwitch() error {
	opposing := c.Opposing()
	enabled, err := opposing.Enabled()
	if err != nil {
		return err
	}
	if enabled {
		if err := opposing.Disable(); err != nil {
			return err
		}
	}
	return c.EnableIgnore()
}

// Disable disables the feature. Disabling twice is harmless.
func (c Controller) Disable() error {
	if err := c.set(c.config().Parameters.Disable); err != nil {
		return err
	}
	log.Printf("battery: %s disabled\n", c.feature)
	return nil
}

// Get returns whether the feature is enabled
func (c Controller) Get() (bool, error) {
	v, err := acpicall.CallExpectValid(c.Caller, c.config().GetCommand)
	if err != nil {
		return false, errors.Wrapf(err, "battery: cannot get %s status", c.feature)
	}
	return v != 0, nil
}

// Enabled is the same as Get
func (c Controller) Enabled() (bool, error) {
	return c.Get()
}

// Disabled is the negation of Get
func (c Controller) Disabled() (bool, error) {
	enabled, err := c.Get()
	return !enabled, err
}

// EnableGuard enables the feature now and disables it on Release
func (c Controller) EnableGuard(mode Mode) (*guard.Guard, error) {
	if err := c.Enable(mode); err != nil {
		return nil, err
	}
	return guard.New(c.Sink, c.Disable), nil
}

// DisableGuard disables the feature now and enables it again with mode on Release
func (c Controller) DisableGuard(mode Mode) (*guard.Guard, error) {
	if err := c.Disable(); err != nil {
		return nil, err
	}
	return guard.New(c.Sink, func() error {
		return c.Enable(mode)
	}), nil
}
