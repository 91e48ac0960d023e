package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/icconsult/customer-service/internal/events"
)

func TestNotificationService_ForwardsToSink(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	var forwarded []events.Event
	sink := func(_ context.Context, e events.Event) error {
		forwarded = append(forwarded, e)
		return nil
	}
	NewNotificationService(dispatcher, zap.NewNop(), sink).RegisterHandlers()

	event := events.NewEvent(events.EventCustomerUpdated, "abc-123", "admin-1", events.CustomerUpdatedPayload{})
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, forwarded, 1)
	assert.Equal(t, event.ID, forwarded[0].ID)
}

func TestNotificationService_WithoutSink(t *testing.T) {
	n := NewNotificationService(nil, zap.NewNop(), nil)
	n.RegisterHandlers()

	err := n.handleCustomerUpdated(context.Background(), events.NewEvent(events.EventCustomerUpdated, "abc-123", "admin-1", nil))
	assert.NoError(t, err)
}

func TestNotificationService_SinkErrorReturned(t *testing.T) {
	boom := errors.New("redis down")
	n := NewNotificationService(nil, zap.NewNop(), func(context.Context, events.Event) error { return boom })

	err := n.handleCustomerUpdated(context.Background(), events.NewEvent(events.EventCustomerUpdated, "abc-123", "admin-1", nil))
	assert.ErrorIs(t, err, boom)
}
