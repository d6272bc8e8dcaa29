// Package acpicalltest provides a programmable stand-in for the acpi_call control
// file, for use in tests.
package acpicalltest

import (
	"strings"
	"sync"

	"github.com/zllovesuki/IdeapadManager/system/acpicall"
)

// Call is one recorded invocation
type Call struct {
	Method     string
	Parameters []uint32
}

// String returns the command text as it would be written to the control file
func (c Call) String() string {
	return acpicall.Command(c.Method, c.Parameters...)
}

// HandlerFunc produces the raw response text for a call, exactly as acpi_call would
// print it (e.g. "0x1", "Error: AE_NOT_FOUND")
type HandlerFunc func(parameters []uint32) string

// Simulator records every call and answers with the handler registered for the
// method. Unregistered methods answer "Error: AE_NOT_FOUND".
type Simulator struct {
	mu       sync.Mutex
	calls    []Call
	handlers map[string]HandlerFunc
}

var _ acpicall.Caller = &Simulator{}

// NewSimulator returns an empty Simulator
func NewSimulator() *Simulator {
	return &Simulator{
		handlers: make(map[string]HandlerFunc),
	}
}

// Handle registers fn for method, replacing any previous handler
func (s *Simulator) Handle(method string, fn HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers[method] = fn
}

// Respond registers a fixed response for method
func (s *Simulator) Respond(method string, response string) {
	s.Handle(method, func([]uint32) string { return response })
}

// Call satisfies acpicall.Caller
func (s *Simulator) Call(method string, parameters ...uint32) (acpicall.Output, error) {
	s.mu.Lock()
	params := append([]uint32(nil), parameters...)
	s.calls = append(s.calls, Call{Method: method, Parameters: params})
	fn, ok := s.handlers[method]
	s.mu.Unlock()

	response := "Error: AE_NOT_FOUND"
	if ok {
		response = fn(params)
	}
	return acpicall.ParseOutput(method, response)
}

// Calls returns every call recorded so far
func (s *Simulator) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Call(nil), s.calls...)
}

// CallsTo returns the recorded calls to method
func (s *Simulator) CallsTo(method string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	var calls []Call
	for _, c := range s.calls {
		if c.Method == method {
			calls = append(calls, c)
		}
	}
	return calls
}

// Commands returns the recorded calls as command text
func (s *Simulator) Commands() []string {
	calls := s.Calls()
	commands := make([]string, 0, len(calls))
	for _, c := range calls {
		commands = append(commands, c.String())
	}
	return commands
}

// Reset forgets the recorded calls but keeps the handlers
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = nil
}

// String dumps the recorded commands, one per line
func (s *Simulator) String() string {
	return strings.Join(s.Commands(), "\n")
}
