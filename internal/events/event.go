package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is a domain event raised by an aggregate.
type Event interface {
	Name() string
	ID() string
	OccurredAt() time.Time
	AggregateID() string
}

// Handler reacts to a dispatched event.
type Handler interface {
	Handle(ctx context.Context, ev Event) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(ctx context.Context, ev Event) error

func (f HandlerFunc) Handle(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// Base carries the identity and timestamp shared by all events. Concrete
// events embed it.
type Base struct {
	EventID  string    `json:"eventId"`
	Occurred time.Time `json:"occurredAt"`
}

func NewBase() Base {
	return Base{EventID: uuid.NewString(), Occurred: time.Now().UTC()}
}

func (b Base) ID() string            { return b.EventID }
func (b Base) OccurredAt() time.Time { return b.Occurred }
