package lib

import (
	"context"
	"encoding/json"
	"log"

	"github.com/william000000/team-odd-bn-backend/src/types"
)

// LocalPublisher hands events to a handler in-process, used when no broker is configured.
type LocalPublisher struct {
	handler EventHandler
}

func NewLocalPublisher(handler EventHandler) *LocalPublisher {
	return &LocalPublisher{handler: handler}
}

func (l *LocalPublisher) Publish(ctx context.Context, event types.TripRequestEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[events] handler panicked on %s: %v\n", event.Type, r)
			}
		}()
		l.handler(context.WithoutCancel(ctx), string(payload))
	}()
	return nil
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, types.TripRequestEvent) error { return nil }
