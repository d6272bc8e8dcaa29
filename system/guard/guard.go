package guard

import "sync"

// Guard holds some state until Release is called
type Guard struct {
	sink    Sink
	release func() error
	once    sync.Once
}

// New returns a Guard which calls release once on Release. Release errors go to
// sink, or to the process-wide Sink when sink is nil.
func New(sink Sink, release func() error) *Guard {
	return &Guard{
		sink:    sink,
		release: release,
	}
}

// Release restores the state. Only the first call has any effect.
func (g *Guard) Release() {
	g.once.Do(func() {
		if err := g.release(); err != nil {
			g.notify(err)
		}
	})
}

func (g *Guard) notify(err error) {
	if g.sink != nil {
		g.sink.Notify(err)
		return
	}
	Notify(err)
}
