package performance

import "fmt"

// InvalidModeError is returned when a register reads back a value no mode maps to
type InvalidModeError struct {
	Bit uint32
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid system performance mode bit: 0x%x", e.Bit)
}

// MismatchedError is returned when the SPMO and FCMO registers disagree
type MismatchedError struct {
	FCMO     uint32
	FCMOMode Mode
	SPMO     uint32
	SPMOMode Mode
}

func (e *MismatchedError) Error() string {
	return fmt.Sprintf("mismatched FCMO (0x%x: %s) and SPMO (0x%x: %s)", e.FCMO, e.FCMOMode, e.SPMO, e.SPMOMode)
}
