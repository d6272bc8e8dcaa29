package background

import (
	"context"
	"log"
	"time"

	"github.com/zllovesuki/IdeapadManager/system/persist"
	"github.com/zllovesuki/IdeapadManager/util"
)

// Saver persists the settings shortly after the last change request, so a burst of
// changes is written once
type Saver struct {
	registry persist.ConfigRegistry
	wait     time.Duration
	request  chan struct{}
}

// NewSaver returns a Saver writing registry wait after the last Request
func NewSaver(registry persist.ConfigRegistry, wait time.Duration) *Saver {
	return &Saver{
		registry: registry,
		wait:     wait,
		request:  make(chan struct{}, 1),
	}
}

// Request asks for a save without blocking
func (s *Saver) Request() {
	select {
	case s.request <- struct{}{}:
	default:
	}
}

func (s *Saver) String() string {
	return "Saver"
}

// Serve satisfies suture.Service
func (s *Saver) Serve(haltCtx context.Context) error {
	log.Println("[Saver] starting save loop")

	noisy, clean := util.Debounce(haltCtx, s.wait)

	for {
		select {
		case <-s.request:
			select {
			case noisy <- struct{}{}:
			case <-haltCtx.Done():
				return nil
			}
		case ev := <-clean:
			log.Printf("[Saver] saving settings after %d change(s)\n", ev.Counter)
			if err := s.registry.Save(); err != nil {
				log.Printf("[Saver] cannot save settings: %+v\n", err)
			}
		case <-haltCtx.Done():
			log.Println("[Saver] stopping save loop")
			return nil
		}
	}
}
