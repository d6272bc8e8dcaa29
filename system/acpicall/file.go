package acpicall

import (
	"io/ioutil"
	"log"
	"os"
	"sync"

	"github.com/pkg/errors"
)

type fileCaller struct {
	mu   sync.Mutex
	path string
}

var _ Caller = &fileCaller{}

// NewCaller returns a Caller backed by the acpi_call control file
func NewCaller() Caller {
	return NewCallerWithPath(DefaultPath)
}

// NewCallerWithPath returns a Caller backed by the control file at path
func NewCallerWithPath(path string) Caller {
	return &fileCaller{
		path: path,
	}
}

func (f *fileCaller) Call(method string, parameters ...uint32) (Output, error) {
	command := Command(method, parameters...)

	// the response must be read back before anyone else writes
	f.mu.Lock()
	defer f.mu.Unlock()

	log.Printf("acpicall: write %q\n", command)

	if err := f.write(command); err != nil {
		return Output{}, err
	}

	b, err := ioutil.ReadFile(f.path)
	if err != nil {
		return Output{}, errors.Wrapf(err, "acpicall: cannot read response from %s", f.path)
	}

	log.Printf("acpicall: read %q\n", string(b))

	return ParseOutput(method, string(b))
}

// write never creates the file; a missing path means the module is absent
func (f *fileCaller) write(command string) error {
	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return &KernelModuleNotLoadedError{Path: f.path, Err: err}
		}
		return errors.Wrapf(err, "acpicall: cannot open %s", f.path)
	}

	if _, err := file.WriteString(command); err != nil {
		file.Close()
		return errors.Wrapf(err, "acpicall: cannot write to %s", f.path)
	}

	return errors.Wrapf(file.Close(), "acpicall: cannot write to %s", f.path)
}
