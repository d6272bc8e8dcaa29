package battery

import (
	"strings"
	"sync"

	"github.com/zllovesuki/IdeapadManager/system/persist"

	"github.com/pkg/errors"
)

const (
	persistKey = "BatteryMode"
)

// State is the combined status of both features
type State struct {
	Conservation bool
	RapidCharge  bool
}

// Status reads both features through c, which may control either of them
func Status(c Controller) (State, error) {
	var s State
	var err error

	conservation, rapidCharge := c, c.Opposing()
	if c.Feature() == RapidCharge {
		conservation, rapidCharge = rapidCharge, conservation
	}

	if s.Conservation, err = conservation.Get(); err != nil {
		return State{}, err
	}
	if s.RapidCharge, err = rapidCharge.Get(); err != nil {
		return State{}, err
	}
	return s, nil
}

func (s State) String() string {
	switch {
	case s.Conservation && s.RapidCharge:
		return "conservation+rapid-charge"
	case s.Conservation:
		return "conservation"
	case s.RapidCharge:
		return "rapid-charge"
	default:
		return "normal"
	}
}

// Preference remembers which battery feature the user wants and restores it on Apply.
// Restoring always uses ModeSwitch. Nothing is restored until a state is remembered
// or loaded.
type Preference struct {
	controller Controller

	mu    sync.RWMutex
	state State
	set   bool
}

var _ persist.Registry = &Preference{}

// NewPreference returns a Preference restoring through c
func NewPreference(c Controller) *Preference {
	return &Preference{
		controller: c,
	}
}

// Remember records s as the state to restore
func (p *Preference) Remember(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = s
	p.set = true
}

// Current returns the state to restore
func (p *Preference) Current() State {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state
}

// Name satisfies persist.Registry
func (p *Preference) Name() string {
	return persistKey
}

// Value satisfies persist.Registry
func (p *Preference) Value() []byte {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.set {
		return nil
	}
	return []byte(p.state.String())
}

// Load satisfies persist.Registry
func (p *Preference) Load(v []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(v) == 0 {
		return nil
	}

	switch strings.TrimSpace(string(v)) {
	case "normal":
		p.state = State{}
	case "conservation":
		p.state = State{Conservation: true}
	case "rapid-charge":
		p.state = State{RapidCharge: true}
	case "conservation+rapid-charge":
		p.state = State{Conservation: true, RapidCharge: true}
	default:
		return errors.Errorf("battery: unknown persisted state %q", string(v))
	}
	p.set = true
	return nil
}

// Apply satisfies persist.Registry
func (p *Preference) Apply() error {
	p.mu.RLock()
	s, ok := p.state, p.set
	p.mu.RUnlock()

	if !ok {
		return nil
	}

	conservation, rapidCharge := p.controller, p.controller.Opposing()
	if p.controller.Feature() == RapidCharge {
		conservation, rapidCharge = rapidCharge, conservation
	}

	switch {
	case s.Conservation && s.RapidCharge:
		if err := conservation.EnableIgnore(); err != nil {
			return err
		}
		return rapidCharge.EnableIgnore()
	case s.Conservation:
		return conservation.EnableSwitch()
	case s.RapidCharge:
		return rapidCharge.EnableSwitch()
	default:
		if err := conservation.Disable(); err != nil {
			return err
		}
		return rapidCharge.Disable()
	}
}

// Close satisfies persist.Registry
func (p *Preference) Close() error {
	return nil
}
