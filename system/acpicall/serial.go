package acpicall

import "sync"

type serialCaller struct {
	mu     sync.Mutex
	caller Caller
}

var _ Caller = &serialCaller{}

// Serialize returns a Caller allowing one exchange with c at a time. The control
// file holds a single response, so overlapping exchanges can read each other's answer.
func Serialize(c Caller) Caller {
	if s, ok := c.(*serialCaller); ok {
		return s
	}
	return &serialCaller{
		caller: c,
	}
}

func (s *serialCaller) Call(method string, parameters ...uint32) (Output, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.caller.Call(method, parameters...)
}
