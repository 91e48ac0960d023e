package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StreamAdder is the part of redis.Cmdable used to append stream entries.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamSink forwards events to a Redis stream.
type RedisStreamSink struct {
	client StreamAdder
	stream string
}

// NewRedisStreamSink builds a sink writing to stream.
func NewRedisStreamSink(client StreamAdder, stream string) *RedisStreamSink {
	return &RedisStreamSink{client: client, stream: stream}
}

// Handle appends the event as a single stream entry.
func (s *RedisStreamSink) Handle(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	err = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"id":          event.ID,
			"type":        string(event.Type),
			"customer_id": event.CustomerID,
			"actor":       event.Actor,
			"timestamp":   event.Timestamp.Format(time.RFC3339Nano),
			"payload":     string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}
