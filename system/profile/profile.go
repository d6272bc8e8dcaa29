// Package profile describes the ACPI method paths and magic parameters of each
// supported laptop model.
package profile

import "gopkg.in/yaml.v3"

// Bit is the value a system performance mode reads back as, from the SPMO and the
// FCMO registers respectively. Most models use the same value for both.
type Bit struct {
	SPMO uint32 `yaml:"spmo"`
	FCMO uint32 `yaml:"fcmo"`
}

// Same returns a Bit reading back as value from both registers
func Same(value uint32) Bit {
	return Bit{SPMO: value, FCMO: value}
}

// Different returns a Bit reading back differently from each register
func Different(spmo, fcmo uint32) Bit {
	return Bit{SPMO: spmo, FCMO: fcmo}
}

// UnmarshalYAML accepts either a single number or a {spmo, fcmo} mapping
func (b *Bit) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v uint32
		if err := value.Decode(&v); err != nil {
			return err
		}
		*b = Same(v)
		return nil
	}
	type plain Bit
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*b = Bit(p)
	return nil
}

// SystemPerformanceCommands are the ACPI methods to set the mode and read it back
type SystemPerformanceCommands struct {
	Set     string `yaml:"set"`
	GetFCMO string `yaml:"get_fcmo"`
	GetSPMO string `yaml:"get_spmo"`
}

// SystemPerformanceBits are what each mode reads back as
type SystemPerformanceBits struct {
	IntelligentCooling Bit `yaml:"intelligent_cooling"`
	ExtremePerformance Bit `yaml:"extreme_performance"`
	BatterySaving      Bit `yaml:"battery_saving"`
}

// SystemPerformanceParameters are the parameters passed to the set command for each mode
type SystemPerformanceParameters struct {
	IntelligentCooling uint32 `yaml:"intelligent_cooling"`
	ExtremePerformance uint32 `yaml:"extreme_performance"`
	BatterySaving      uint32 `yaml:"battery_saving"`
}

// SystemPerformance groups everything needed to control the system performance mode
type SystemPerformance struct {
	Commands   SystemPerformanceCommands   `yaml:"commands"`
	Bits       SystemPerformanceBits       `yaml:"bits"`
	Parameters SystemPerformanceParameters `yaml:"parameters"`
}

// FeatureParameters are the set command parameters to turn a battery feature on or off
type FeatureParameters struct {
	Enable  uint32 `yaml:"enable"`
	Disable uint32 `yaml:"disable"`
}

// Feature describes one battery feature
type Feature struct {
	GetCommand string            `yaml:"get"`
	Parameters FeatureParameters `yaml:"parameters"`
}

// Battery groups battery conservation and rapid charge, which share a set command
type Battery struct {
	SetCommand   string  `yaml:"set"`
	Conservation Feature `yaml:"conservation"`
	RapidCharge  Feature `yaml:"rapid_charge"`
}

// Profile is the hardware configuration of one family of models. Treat it as
// read-only once constructed.
type Profile struct {
	Name                 string            `yaml:"name"`
	ExpectedProductNames []string          `yaml:"expected_product_names"`
	SystemPerformance    SystemPerformance `yaml:"system_performance"`
	Battery              Battery           `yaml:"battery"`
}

// Matches reports whether productName is one of the expected product names
func (p *Profile) Matches(productName string) bool {
	for _, name := range p.ExpectedProductNames {
		if name == productName {
			return true
		}
	}
	return false
}
