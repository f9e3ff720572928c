package events

import (
	"log"
	"sync"
)

// AllEventTypes lists every event the services emit
var AllEventTypes = []EventType{
	EventTypeHeroRecruited,
	EventTypeHeroRested,
	EventTypeVehicleRegistered,
	EventTypeVehicleMoved,
	EventTypeVehicleRefueled,
}

// LogListener writes every event it sees to the standard logger
type LogListener struct{}

func (l *LogListener) ID() string    { return "log" }
func (l *LogListener) Priority() int { return 1000 }

func (l *LogListener) HandleEvent(event Event) error {
	if result := event.GetResult(); result != nil {
		log.Printf("Events: %s %s (%s) success=%t: %s",
			event.GetType(), event.GetSubjectName(), event.GetSubjectID(), result.Success, result.Message)
		return nil
	}

	log.Printf("Events: %s %s (%s)", event.GetType(), event.GetSubjectName(), event.GetSubjectID())
	return nil
}

// Recorder keeps every event it receives, in delivery order
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) ID() string    { return "recorder" }
func (r *Recorder) Priority() int { return 0 }

func (r *Recorder) HandleEvent(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event types in delivery order
func (r *Recorder) Types() []EventType {
	recorded := r.Events()
	types := make([]EventType, 0, len(recorded))
	for _, event := range recorded {
		types = append(types, event.GetType())
	}
	return types
}
