package profile

import (
	"strings"

	"github.com/jouyouyun/hardware/dmi"
	"github.com/pkg/errors"
)

var (
	// ErrUnableToFindSystemInformation means the product name could not be read
	ErrUnableToFindSystemInformation = errors.New("unable to find system information from smbios")
	// ErrNoValidProfileInSearchPath means no profile expects the product name
	ErrNoValidProfileInSearchPath = errors.New("no valid profiles were found in the search path")
)

// SystemInformationError carries the reason the product name could not be read.
// It matches ErrUnableToFindSystemInformation with errors.Is.
type SystemInformationError struct {
	Err error
}

func (e *SystemInformationError) Error() string {
	return ErrUnableToFindSystemInformation.Error() + ": " + e.Err.Error()
}

func (e *SystemInformationError) Is(target error) bool {
	return target == ErrUnableToFindSystemInformation
}

func (e *SystemInformationError) Unwrap() error {
	return e.Err
}

// Identifier returns the product name of the running system
type Identifier func() (string, error)

// DMIProductName reads the product name from the DMI tables
func DMIProductName() (string, error) {
	info, err := dmi.GetDMI()
	if err != nil {
		return "", err
	}
	return info.ProductName, nil
}

// Find matches the running system against the built-in profiles
func Find(identify Identifier) (*Profile, error) {
	return FindWithSearchPath(identify, SearchPath())
}

// FindWithSearchPath returns the first profile in search expecting the product name
// reported by identify
func FindWithSearchPath(identify Identifier, search []Profile) (*Profile, error) {
	productName, err := identify()
	if err != nil {
		return nil, &SystemInformationError{Err: err}
	}
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, ErrUnableToFindSystemInformation
	}

	for i := range search {
		if search[i].Matches(productName) {
			p := search[i]
			return &p, nil
		}
	}

	return nil, errors.Wrapf(ErrNoValidProfileInSearchPath, "product name %q", productName)
}

// ByName returns the profile in search with the given name, ignoring case
func ByName(name string, search []Profile) (*Profile, error) {
	for i := range search {
		if strings.EqualFold(search[i].Name, name) {
			p := search[i]
			return &p, nil
		}
	}
	return nil, errors.Errorf("cannot find profile with name: %s", name)
}
