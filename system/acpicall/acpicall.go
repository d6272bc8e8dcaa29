// Package acpicall talks to the acpi_call kernel module.
//
// acpi_call support is very basic: commands are not verified, the only supported
// parameter type is uint32, and the only output considered valid is a uint32.
package acpicall

import (
	"strconv"
	"strings"
)

// DefaultPath is where the acpi_call kernel module exposes its control file
const DefaultPath = "/proc/acpi/call"

const (
	errorPrefix = "Error: "
	hexPrefix   = "0x"
)

// Output is the decoded response of a successful call. When Valid is false the
// response was not numeric and Raw holds the text as returned.
type Output struct {
	Valid bool
	Value uint32
	Raw   string
}

// Caller invokes ACPI methods
type Caller interface {
	Call(method string, parameters ...uint32) (Output, error)
}

// Command builds the text written to the control file: the method path followed by
// each parameter in decimal, joined by single spaces.
func Command(method string, parameters ...uint32) string {
	parts := make([]string, 0, len(parameters)+1)
	parts = append(parts, method)
	for _, p := range parameters {
		parts = append(parts, strconv.FormatUint(uint64(p), 10))
	}
	return strings.Join(parts, " ")
}

// ParseOutput decodes a response read back from the control file. Firmware errors are
// returned as errors, anything else is an Output.
func ParseOutput(method string, text string) (Output, error) {
	text = strings.TrimRight(text, "\x00")

	if strings.HasPrefix(text, errorPrefix) {
		message := strings.TrimPrefix(text, errorPrefix)
		if message == aeNotFound {
			return Output{}, &MethodNotFoundError{Method: method}
		}
		return Output{}, &UnknownError{Message: message}
	}

	var (
		value uint64
		err   error
	)
	if strings.HasPrefix(text, hexPrefix) {
		value, err = strconv.ParseUint(strings.TrimPrefix(text, hexPrefix), 16, 32)
	} else {
		value, err = strconv.ParseUint(text, 10, 32)
	}
	if err != nil {
		return Output{Raw: text}, nil
	}

	return Output{
		Valid: true,
		Value: uint32(value),
		Raw:   text,
	}, nil
}

// CallExpectValid invokes the method and requires a numeric response
func CallExpectValid(c Caller, method string, parameters ...uint32) (uint32, error) {
	out, err := c.Call(method, parameters...)
	if err != nil {
		return 0, err
	}
	if !out.Valid {
		return 0, &UnknownValueError{Value: out.Raw}
	}
	return out.Value, nil
}
