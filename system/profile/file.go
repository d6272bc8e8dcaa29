package profile

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML list of profiles
func LoadFile(path string) ([]Profile, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "profile: cannot read %s", path)
	}
	profiles, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "profile: invalid profile file %s", path)
	}
	return profiles, nil
}

// Parse decodes and validates a YAML list of profiles
func Parse(b []byte) ([]Profile, error) {
	var profiles []Profile
	if err := yaml.Unmarshal(b, &profiles); err != nil {
		return nil, err
	}
	for i := range profiles {
		if err := profiles[i].Validate(); err != nil {
			return nil, errors.Wrapf(err, "profile #%d", i)
		}
	}
	return profiles, nil
}

// Validate checks that every field needed by the controllers is filled in and that
// the modes can be told apart
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("name cannot be empty")
	}
	if len(p.ExpectedProductNames) == 0 {
		return fmt.Errorf("%s: expected product names cannot be empty", p.Name)
	}

	commands := map[string]string{
		"system_performance.commands.set":      p.SystemPerformance.Commands.Set,
		"system_performance.commands.get_fcmo": p.SystemPerformance.Commands.GetFCMO,
		"system_performance.commands.get_spmo": p.SystemPerformance.Commands.GetSPMO,
		"battery.set":                          p.Battery.SetCommand,
		"battery.conservation.get":             p.Battery.Conservation.GetCommand,
		"battery.rapid_charge.get":             p.Battery.RapidCharge.GetCommand,
	}
	for field, command := range commands {
		if command == "" {
			return fmt.Errorf("%s: %s cannot be empty", p.Name, field)
		}
	}

	bits := p.SystemPerformance.Bits
	if !distinct(bits.IntelligentCooling.SPMO, bits.ExtremePerformance.SPMO, bits.BatterySaving.SPMO) ||
		!distinct(bits.IntelligentCooling.FCMO, bits.ExtremePerformance.FCMO, bits.BatterySaving.FCMO) {
		return fmt.Errorf("%s: system performance bits must be distinct", p.Name)
	}
	params := p.SystemPerformance.Parameters
	if !distinct(params.IntelligentCooling, params.ExtremePerformance, params.BatterySaving) {
		return fmt.Errorf("%s: system performance parameters must be distinct", p.Name)
	}

	return nil
}

func distinct(a, b, c uint32) bool {
	return a != b && b != c && a != c
}
