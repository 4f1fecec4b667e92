package events

import (
	"context"

	"github.com/majordomo-io/majordomo/ent"
)

// eventQuerier is the slice of services.EventService the adapter needs.
type eventQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter wraps the event service to implement CatchupQuerier.
type EventServiceAdapter struct {
	events eventQuerier
}

// NewEventServiceAdapter creates a CatchupQuerier from an event service.
func NewEventServiceAdapter(events eventQuerier) *EventServiceAdapter {
	return &EventServiceAdapter{events: events}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup mechanism.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	events, err := a.events.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(events))
	for i, evt := range events {
		result[i] = CatchupEvent{
			ID:      evt.ID,
			Payload: evt.Payload,
		}
	}
	return result, nil
}
