package performance

import (
	"sync"

	"github.com/zllovesuki/IdeapadManager/system/persist"
)

const (
	persistKey = "SystemPerformanceMode"
)

// Preference remembers the last mode chosen and restores it on Apply
type Preference struct {
	controller Controller

	mu   sync.RWMutex
	mode Mode
	set  bool
}

var _ persist.Registry = &Preference{}

// NewPreference returns a Preference restoring through c
func NewPreference(c Controller) *Preference {
	return &Preference{
		controller: c,
	}
}

// Remember records mode as the one to restore
func (p *Preference) Remember(mode Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.mode = mode
	p.set = true
}

// Current returns the mode to restore, if any
func (p *Preference) Current() (Mode, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.mode, p.set
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
	return []byte(p.mode.String())
}

// Load satisfies persist.Registry
func (p *Preference) Load(v []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(v) == 0 {
		return nil
	}
	mode, err := ParseMode(string(v))
	if err != nil {
		return err
	}
	p.mode = mode
	p.set = true
	return nil
}

// Apply satisfies persist.Registry. Nothing is written when no mode was remembered.
func (p *Preference) Apply() error {
	mode, ok := p.Current()
	if !ok {
		return nil
	}
	return p.controller.Set(mode)
}

// Close satisfies persist.Registry
func (p *Preference) Close() error {
	return nil
}
