// Package telemetry records tool-invocation audit events.
package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is one recorded tool invocation.
type Event struct {
	ID        string
	Timestamp time.Time
	Tool      string
	Detail    string
}

// Store persists audit events.
type Store interface {
	AppendEvent(ctx context.Context, evt Event) error
}

// Emitter records audit events for tool invocations.
type Emitter struct {
	store Store
	clock func() time.Time
}

// NewEmitter creates a new audit emitter.
func NewEmitter(store Store) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records an audit event. It is a no-op when the store is nil, so an
// unconfigured audit database never blocks tool calls.
func (e *Emitter) Emit(ctx context.Context, evt Event) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendEvent(ctx, evt)
}
