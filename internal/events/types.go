package events

import (
	"github.com/KirkDiggler/oop-showcase/internal/domain/shared"
)

// EventType represents the type of roster or fleet event
type EventType string

const (
	EventTypeHeroRecruited     EventType = "hero.recruited"
	EventTypeHeroRested        EventType = "hero.rested"
	EventTypeVehicleRegistered EventType = "vehicle.registered"
	EventTypeVehicleMoved      EventType = "vehicle.moved"
	EventTypeVehicleRefueled   EventType = "vehicle.refueled"
)

// Event is emitted by the services after a hero or vehicle acted
type Event interface {
	GetType() EventType
	GetSubjectID() string
	GetSubjectName() string
	GetResult() *shared.Result
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides the common implementation for all events
type BaseEvent struct {
	Type        EventType
	SubjectID   string
	SubjectName string
	Result      *shared.Result // nil for events that carry no narration
	Cancelled   bool
}

func (e *BaseEvent) GetType() EventType        { return e.Type }
func (e *BaseEvent) GetSubjectID() string      { return e.SubjectID }
func (e *BaseEvent) GetSubjectName() string    { return e.SubjectName }
func (e *BaseEvent) GetResult() *shared.Result { return e.Result }
func (e *BaseEvent) IsCancelled() bool         { return e.Cancelled }
func (e *BaseEvent) Cancel()                   { e.Cancelled = true }

// NewEvent builds a BaseEvent for a subject
func NewEvent(eventType EventType, id, name string, result *shared.Result) *BaseEvent {
	return &BaseEvent{
		Type:        eventType,
		SubjectID:   id,
		SubjectName: name,
		Result:      result,
	}
}
