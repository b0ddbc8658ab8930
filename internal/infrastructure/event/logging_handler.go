package event

import (
	"context"

	"github.com/flowstock/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LoggingHandler writes a structured log line for every event it
// receives. Subscribed as a wildcard handler it gives an audit trail of
// catalog and stock changes without any further delivery mechanism.
type LoggingHandler struct {
	logger *zap.Logger
}

// NewLoggingHandler creates a new LoggingHandler
func NewLoggingHandler(logger *zap.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger}
}

// Handle logs the event
func (h *LoggingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes subscribes the handler to all events
func (h *LoggingHandler) EventTypes() []string {
	return nil
}

var _ Handler = (*LoggingHandler)(nil)
