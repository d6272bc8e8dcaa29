package persist

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDir is where the state file is kept unless configured otherwise
	DefaultDir = "/var/lib/IdeapadManager"
	stateFile  = "state.yaml"
)

// FileConfigHelper contains a list of configurations to be loaded, saved, and applied.
// All values are kept in a single YAML document.
type FileConfigHelper struct {
	mu            sync.Mutex
	alreadyClosed bool
	configs       map[string]Registry
	order         []string
	path          string
}

var _ ConfigRegistry = &FileConfigHelper{}

// NewFileConfigHelper returns a helper to persist config to dir
func NewFileConfigHelper(dir string) (*FileConfigHelper, error) {
	if len(dir) == 0 {
		return nil, errors.New("state directory cannot be empty")
	}
	return &FileConfigHelper{
		configs: make(map[string]Registry),
		path:    filepath.Join(dir, stateFile),
	}, nil
}

// Register will add the config to the list. Configs are applied in the order registered.
func (h *FileConfigHelper) Register(config Registry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.configs[config.Name()]; !ok {
		h.order = append(h.order, config.Name())
	}
	h.configs[config.Name()] = config
}

func (h *FileConfigHelper) read() (map[string]string, error) {
	values := make(map[string]string)
	b, err := ioutil.ReadFile(h.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, &values); err != nil {
		return nil, errors.Wrapf(err, "persist: corrupted state file %s", h.path)
	}
	return values, nil
}

// Load will retrive and populate configs from the state file
func (h *FileConfigHelper) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	values, err := h.read()
	if err != nil {
		return err
	}

	for _, name := range h.order {
		config := h.configs[name]
		v, ok := values[name]
		if !ok {
			continue
		}
		log.Printf("persist: loading \"%s\" from %s\n", name, h.path)
		if err := config.Load([]byte(v)); err != nil {
			log.Printf("persist: error loading \"%s\": %s\n", name, err)
			return err
		}
	}

	return nil
}

// Save will persist all the configs to the state file
func (h *FileConfigHelper) Save() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	values, err := h.read()
	if err != nil {
		// start over rather than refusing to save forever
		log.Printf("persist: %s\n", err)
		values = make(map[string]string)
	}

	for _, name := range h.order {
		log.Printf("persist: saving \"%s\" to %s\n", name, h.path)
		values[name] = string(h.configs[name].Value())
	}

	b, err := yaml.Marshal(values)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return errors.Wrap(err, "persist: cannot create state directory")
	}

	tmp := h.path + ".tmp"
	if err := ioutil.WriteFile(tmp, b, 0644); err != nil {
		return errors.Wrap(err, "persist: cannot write state file")
	}
	return errors.Wrap(os.Rename(tmp, h.path), "persist: cannot replace state file")
}

// Apply will apply each config accordingly. This is usually called after Load()
func (h *FileConfigHelper) Apply() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, name := range h.order {
		log.Printf("persist: applying \"%s\" config\n", name)
		err := h.configs[name].Apply()
		if err != nil {
			log.Printf("persist: error applying \"%s\": %s\n", name, err)
			return err
		}
		time.Sleep(time.Millisecond * 25) // allow time for hardware configuration to propagate
	}

	return nil
}

// Close will release resources of each config
func (h *FileConfigHelper) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.alreadyClosed {
		return
	}
	h.alreadyClosed = true

	for _, name := range h.order {
		log.Printf("persist: closing \"%s\"\n", name)
		err := h.configs[name].Close()
		if err != nil {
			log.Printf("persist: error closing \"%s\": %s\n", name, err)
		}
	}
}
