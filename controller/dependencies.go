package controller

import (
	"log"
	"sync"

	"github.com/zllovesuki/IdeapadManager/system/acpicall"
	"github.com/zllovesuki/IdeapadManager/system/battery"
	"github.com/zllovesuki/IdeapadManager/system/performance"
	"github.com/zllovesuki/IdeapadManager/system/persist"
	"github.com/zllovesuki/IdeapadManager/system/profile"

	"github.com/pkg/errors"
)

// RunConfig contains the start up configuration
type RunConfig struct {
	DryRun bool
	// ProfileName selects a profile by name instead of matching the product name
	ProfileName string
	// ProfileFiles are YAML profile lists searched before the built-in profiles
	ProfileFiles []string
	// StateDir holds the persisted settings. persist.DefaultDir is used when empty.
	StateDir string
	// CallPath overrides the acpi_call control file
	CallPath string
	// Identify overrides DMI product name detection
	Identify profile.Identifier
}

// Dependencies are shared by the daemon and the direct mode client
type Dependencies struct {
	Caller         acpicall.Caller
	Profile        *profile.Profile
	ConfigRegistry persist.ConfigRegistry

	BatteryPreference     *battery.Preference
	PerformancePreference *performance.Preference
}

// GetDependencies resolves the profile and builds everything on top of it
func GetDependencies(conf RunConfig) (*Dependencies, error) {
	var caller acpicall.Caller
	var config persist.ConfigRegistry
	var err error

	if conf.StateDir == "" {
		conf.StateDir = persist.DefaultDir
	}

	if conf.DryRun {
		caller = acpicall.NewDryCaller()
		config, err = persist.NewDryConfigHelper(conf.StateDir)
	} else {
		if conf.CallPath == "" {
			caller = acpicall.NewCaller()
		} else {
			caller = acpicall.NewCallerWithPath(conf.CallPath)
		}
		config, err = persist.NewFileConfigHelper(conf.StateDir)
	}
	if err != nil {
		return nil, err
	}

	p, err := findProfile(conf)
	if err != nil {
		return nil, err
	}
	log.Printf("controller: using profile %s\n", p.Name)

	return NewDependencies(caller, p, config), nil
}

// NewDependencies wires the controllers of p over caller. Every exchange with the
// caller is serialized. The preferences are registered with config when it is not nil.
func NewDependencies(caller acpicall.Caller, p *profile.Profile, config persist.ConfigRegistry) *Dependencies {
	dep := &Dependencies{
		Caller:         acpicall.Serialize(caller),
		Profile:        p,
		ConfigRegistry: config,
	}
	dep.BatteryPreference = battery.NewPreference(dep.Conservation())
	dep.PerformancePreference = performance.NewPreference(dep.Performance())

	if config != nil {
		config.Register(dep.BatteryPreference)
		config.Register(dep.PerformancePreference)
	}

	return dep
}

func findProfile(conf RunConfig) (*profile.Profile, error) {
	var search []profile.Profile
	for _, file := range conf.ProfileFiles {
		loaded, err := profile.LoadFile(file)
		if err != nil {
			return nil, err
		}
		search = append(search, loaded...)
	}
	search = append(search, profile.SearchPath()...)

	if conf.ProfileName != "" {
		return profile.ByName(conf.ProfileName, search)
	}

	identify := conf.Identify
	if identify == nil {
		identify = profile.DMIProductName
	}
	p, err := profile.FindWithSearchPath(identify, search)
	if err != nil {
		return nil, errors.Wrap(err, "controller: cannot determine hardware profile, use -profile to pick one")
	}
	return p, nil
}

// Conservation returns a battery conservation controller
func (d *Dependencies) Conservation() battery.Controller {
	return battery.NewConservation(d.Profile, d.Caller)
}

// RapidCharge returns a rapid charge controller
func (d *Dependencies) RapidCharge() battery.Controller {
	return battery.NewRapidCharge(d.Profile, d.Caller)
}

// Performance returns a system performance controller
func (d *Dependencies) Performance() performance.Controller {
	return performance.New(d.Profile, d.Caller)
}

var (
	defaultMu  sync.RWMutex
	defaultDep *Dependencies
)

// SetDefault makes dep available through Default
func SetDefault(dep *Dependencies) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultDep = dep
}

// Default returns the Dependencies given to SetDefault, or nil
func Default() *Dependencies {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultDep
}
