package supervisor

import (
	"log"

	"github.com/thejerf/suture/v4"
)

// EventHook logs what happens in the supervisor tree
type EventHook struct {
	// Crashes counts services which terminated or panicked
	Crashes int
}

func (e *EventHook) Event(evt suture.Event) {
	defer func() {
		if err := recover(); err != nil {
			log.Printf("[supervisor] event hook panic: %+v\n", err)
		}
	}()
	switch evt.Type() {
	case suture.EventTypeServiceTerminate, suture.EventTypeServicePanic:
		e.Crashes++
		log.Printf("[supervisor] %s crashed unexpectedly, restarting...\n", evt.Map()["service_name"])
	default:
		log.Printf("[supervisor] event: %+v\n", evt)
	}
}
