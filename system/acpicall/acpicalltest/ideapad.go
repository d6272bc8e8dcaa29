package acpicalltest

import (
	"fmt"
	"sync"

	"github.com/zllovesuki/IdeapadManager/system/profile"
)

// Ideapad simulates the embedded controller described by a profile: both battery
// features and the system performance registers.
type Ideapad struct {
	*Simulator

	mu           sync.Mutex
	conservation bool
	rapidCharge  bool
	spmo         uint32
	fcmo         uint32
	// some models switch conservation off when rapid charge is enabled
	rapidChargeQuirk bool
}

// NewIdeapad returns a simulated machine with every feature off and intelligent
// cooling selected
func NewIdeapad(p *profile.Profile) *Ideapad {
	m := &Ideapad{
		Simulator: NewSimulator(),
		spmo:      p.SystemPerformance.Bits.IntelligentCooling.SPMO,
		fcmo:      p.SystemPerformance.Bits.IntelligentCooling.FCMO,
	}

	b := p.Battery
	m.Handle(b.SetCommand, func(params []uint32) string {
		m.mu.Lock()
		defer m.mu.Unlock()

		switch params[0] {
		case b.Conservation.Parameters.Enable:
			m.conservation = true
		case b.Conservation.Parameters.Disable:
			m.conservation = false
		case b.RapidCharge.Parameters.Enable:
			m.rapidCharge = true
			if m.rapidChargeQuirk {
				m.conservation = false
			}
		case b.RapidCharge.Parameters.Disable:
			m.rapidCharge = false
		default:
			return "Error: AE_BAD_PARAMETER"
		}
		return "0x0"
	})
	m.Handle(b.Conservation.GetCommand, func([]uint32) string {
		m.mu.Lock()
		defer m.mu.Unlock()
		return flag(m.conservation)
	})
	m.Handle(b.RapidCharge.GetCommand, func([]uint32) string {
		m.mu.Lock()
		defer m.mu.Unlock()
		return flag(m.rapidCharge)
	})

	sp := p.SystemPerformance
	m.Handle(sp.Commands.Set, func(params []uint32) string {
		var bit profile.Bit
		switch params[0] {
		case sp.Parameters.IntelligentCooling:
			bit = sp.Bits.IntelligentCooling
		case sp.Parameters.ExtremePerformance:
			bit = sp.Bits.ExtremePerformance
		case sp.Parameters.BatterySaving:
			bit = sp.Bits.BatterySaving
		default:
			return "Error: AE_BAD_PARAMETER"
		}
		m.SetRegisters(bit.SPMO, bit.FCMO)
		return "0x0"
	})
	m.Handle(sp.Commands.GetSPMO, func([]uint32) string {
		m.mu.Lock()
		defer m.mu.Unlock()
		return fmt.Sprintf("0x%x", m.spmo)
	})
	m.Handle(sp.Commands.GetFCMO, func([]uint32) string {
		m.mu.Lock()
		defer m.mu.Unlock()
		return fmt.Sprintf("0x%x", m.fcmo)
	})

	return m
}

// SetBattery forces the state of both battery features
func (m *Ideapad) SetBattery(conservation, rapidCharge bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.conservation = conservation
	m.rapidCharge = rapidCharge
}

// SetRapidChargeQuirk makes enabling rapid charge also turn battery conservation off
func (m *Ideapad) SetRapidChargeQuirk(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rapidChargeQuirk = on
}

// Battery returns the state of both battery features
func (m *Ideapad) Battery() (conservation, rapidCharge bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.conservation, m.rapidCharge
}

// SetRegisters forces the values read back from SPMO and FCMO
func (m *Ideapad) SetRegisters(spmo, fcmo uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.spmo = spmo
	m.fcmo = fcmo
}

func flag(on bool) string {
	if on {
		return "0x1"
	}
	return "0x0"
}
