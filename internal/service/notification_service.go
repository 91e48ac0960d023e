package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/icconsult/customer-service/internal/events"
)

// NotificationService forwards customer events to downstream consumers.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	sink       events.EventHandler
}

// NewNotificationService creates the service. A nil sink only logs events.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, sink events.EventHandler) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		sink:       sink,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventCustomerUpdated, n.handleCustomerUpdated)
}

func (n *NotificationService) handleCustomerUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("CustomerUpdated",
		zap.String("event_id", event.ID),
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload))
	if n.sink == nil {
		return nil
	}
	return n.sink(ctx, event)
}
