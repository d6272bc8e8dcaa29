// Package performance controls the system performance mode
package performance

import (
	"log"

	"github.com/zllovesuki/IdeapadManager/system/acpicall"
	"github.com/zllovesuki/IdeapadManager/system/guard"
	"github.com/zllovesuki/IdeapadManager/system/profile"

	"github.com/pkg/errors"
)

// Controller sets and reads the system performance mode. It holds no state of its
// own and is cheap to copy.
type Controller struct {
	Profile *profile.Profile
	Caller  acpicall.Caller
	// Sink receives guard release errors. The process-wide default is used when nil.
	Sink guard.Sink
}

// New returns a Controller
func New(p *profile.Profile, c acpicall.Caller) Controller {
	return Controller{
		Profile: p,
		Caller:  c,
	}
}

func (c Controller) config() *profile.SystemPerformance {
	return &c.Profile.SystemPerformance
}

// Set switches to mode
func (c Controller) Set(mode Mode) error {
	if _, err := c.Caller.Call(c.config().Commands.Set, mode.Setter(c.config())); err != nil {
		return errors.Wrapf(err, "performance: cannot set %s", mode)
	}
	log.Printf("performance: mode set to %s\n", mode)
	return nil
}

// Get reads both registers and returns the mode they agree on
func (c Controller) Get() (Mode, error) {
	conf := c.config()

	spmo, err := acpicall.CallExpectValid(c.Caller, conf.Commands.GetSPMO)
	if err != nil {
		return 0, errors.Wrap(err, "performance: cannot read SPMO")
	}
	fcmo, err := acpicall.CallExpectValid(c.Caller, conf.Commands.GetFCMO)
	if err != nil {
		return 0, errors.Wrap(err, "performance: cannot read FCMO")
	}

	spmoMode, ok := FromSPMO(conf, spmo)
	if !ok {
		return 0, &InvalidModeError{Bit: spmo}
	}
	fcmoMode, ok := FromFCMO(conf, fcmo)
	if !ok {
		return 0, &InvalidModeError{Bit: fcmo}
	}

	if spmoMode != fcmoMode {
		return 0, &MismatchedError{
			FCMO:     fcmo,
			FCMOMode: fcmoMode,
			SPMO:     spmo,
			SPMOMode: spmoMode,
		}
	}
	return spmoMode, nil
}

// Next switches to the mode howMany steps after the current one, wrapping around
func (c Controller) Next(howMany int) (Mode, error) {
	current, err := c.Get()
	if err != nil {
		return 0, err
	}

	index := (int(current) + howMany) % len(Modes)
	if index < 0 {
		index += len(Modes)
	}
	next := Modes[index]

	return next, c.Set(next)
}

// Guard switches to onInit now and to onRelease on Release
func (c Controller) Guard(onInit, onRelease Mode) (*guard.Guard, error) {
	if err := c.Set(onInit); err != nil {
		return nil, err
	}
	return guard.New(c.Sink, func() error {
		return c.Set(onRelease)
	}), nil
}

// GuardForScope switches to mode now and back to the current mode on Release
func (c Controller) GuardForScope(mode Mode) (*guard.Guard, error) {
	current, err := c.Get()
	if err != nil {
		return nil, err
	}
	return c.Guard(mode, current)
}
