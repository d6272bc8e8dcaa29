package acpicall

import "fmt"

const aeNotFound = "AE_NOT_FOUND"

// KernelModuleNotLoadedError means the control file does not exist, usually because
// acpi_call is not installed or not loaded
type KernelModuleNotLoadedError struct {
	Path string
	Err  error
}

func (e *KernelModuleNotLoadedError) Error() string {
	return fmt.Sprintf("acpi_call kernel module not loaded (%s)", e.Path)
}

func (e *KernelModuleNotLoadedError) Unwrap() error {
	return e.Err
}

// UnknownValueError is returned when a numeric response was required but the
// response could not be parsed
type UnknownValueError struct {
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown or unsupported value returned from acpi_call: '%s'", e.Value)
}

// UnknownError carries an unrecognized firmware error message
type UnknownError struct {
	Message string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown error returned from acpi_call: %s", e.Message)
}

// MethodNotFoundError means the method path does not exist in the ACPI table
type MethodNotFoundError struct {
	Method string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("method '%s' not found in acpi table", e.Method)
}
