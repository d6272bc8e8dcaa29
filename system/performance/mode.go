package performance

import (
	"strings"

	"github.com/zllovesuki/IdeapadManager/system/profile"

	"github.com/pkg/errors"
)

// Mode is a system performance mode
type Mode int

const (
	IntelligentCooling Mode = iota
	ExtremePerformance
	BatterySaving
)

// Modes lists every mode in cycling order
var Modes = []Mode{IntelligentCooling, ExtremePerformance, BatterySaving}

// ErrInvalidMode is returned when parsing an unknown mode name
var ErrInvalidMode = errors.New("invalid system performance mode")

func (m Mode) String() string {
	switch m {
	case IntelligentCooling:
		return "intelligent-cooling"
	case ExtremePerformance:
		return "extreme-performance"
	case BatterySaving:
		return "battery-saving"
	default:
		return "unknown"
	}
}

// ParseMode is the inverse of Mode.String. A few shorter spellings are accepted too.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intelligent-cooling", "cooling", "ic":
		return IntelligentCooling, nil
	case "extreme-performance", "performance", "ep":
		return ExtremePerformance, nil
	case "battery-saving", "battery", "bs":
		return BatterySaving, nil
	default:
		return 0, errors.Wrapf(ErrInvalidMode, "%q", s)
	}
}

// Setter returns the parameter passed to the set command for m
func (m Mode) Setter(p *profile.SystemPerformance) uint32 {
	switch m {
	case ExtremePerformance:
		return p.Parameters.ExtremePerformance
	case BatterySaving:
		return p.Parameters.BatterySaving
	default:
		return p.Parameters.IntelligentCooling
	}
}

func (m Mode) bit(p *profile.SystemPerformance) profile.Bit {
	switch m {
	case ExtremePerformance:
		return p.Bits.ExtremePerformance
	case BatterySaving:
		return p.Bits.BatterySaving
	default:
		return p.Bits.IntelligentCooling
	}
}

// FromSetter maps a set command parameter back to its mode
func FromSetter(p *profile.SystemPerformance, parameter uint32) (Mode, bool) {
	for _, m := range Modes {
		if m.Setter(p) == parameter {
			return m, true
		}
	}
	return 0, false
}

// FromSPMO maps a value read from the SPMO register to its mode
func FromSPMO(p *profile.SystemPerformance, bit uint32) (Mode, bool) {
	for _, m := range Modes {
		if m.bit(p).SPMO == bit {
			return m, true
		}
	}
	return 0, false
}

// FromFCMO maps a value read from the FCMO register to its mode
func FromFCMO(p *profile.SystemPerformance, bit uint32) (Mode, bool) {
	for _, m := range Modes {
		if m.bit(p).FCMO == bit {
			return m, true
		}
	}
	return 0, false
}
