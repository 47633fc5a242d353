package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ashtabanjan/restaurant-api/internal/events"
)

// publish stamps event and hands it to dispatcher. Subscriber failures are
// logged; they never fail the operation that raised the event.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event not fully handled",
			zap.String("type", string(event.Type)),
			zap.String("id", event.ID),
			zap.String("subject", event.Subject),
			zap.Error(err))
	}
}
