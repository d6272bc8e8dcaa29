package battery

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode decides what to do when enabling a feature while the opposing feature is on
type Mode int

const (
	// ModeIgnore enables the feature regardless, possibly leaving both on
	ModeIgnore Mode = iota
	// ModeError refuses to enable the feature
	ModeError
	// ModeSwitch disables the opposing feature first
	ModeSwitch
)

// ErrInvalidMode is returned for a Mode outside the known values
var ErrInvalidMode = errors.New("invalid battery mode")

func (m Mode) String() string {
	switch m {
	case ModeIgnore:
		return "ignore"
	case ModeError:
		return "error"
	case ModeSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// ParseMode is the inverse of Mode.String
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return ModeIgnore, nil
	case "error":
		return ModeError, nil
	case "switch":
		return ModeSwitch, nil
	default:
		return 0, errors.Wrapf(ErrInvalidMode, "%q", s)
	}
}

// Feature is one of the two mutually exclusive battery features
type Feature int

const (
	Conservation Feature = iota
	RapidCharge
)

func (f Feature) String() string {
	switch f {
	case Conservation:
		return "battery conservation"
	case RapidCharge:
		return "rapid charge"
	default:
		return "unknown"
	}
}

// Opposing returns the feature which cannot be on at the same time as f
func (f Feature) Opposing() Feature {
	if f == Conservation {
		return RapidCharge
	}
	return Conservation
}
