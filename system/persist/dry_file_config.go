package persist

import "log"

type dryConfigHelper struct {
	ConfigRegistry
}

var _ ConfigRegistry = &dryConfigHelper{}

// NewDryConfigHelper returns a helper which loads from dir but never saves
func NewDryConfigHelper(dir string) (ConfigRegistry, error) {
	helper, err := NewFileConfigHelper(dir)
	if err != nil {
		return nil, err
	}
	log.Println("[dry run] persist: initializing state file without save IOs")
	return &dryConfigHelper{
		ConfigRegistry: helper,
	}, nil
}

// Save will do nothing
func (d *dryConfigHelper) Save() error {
	return nil
}
