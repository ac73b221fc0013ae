package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"labdesk/internal/domain/request"
	"labdesk/internal/domain/shared/events"
	"labdesk/internal/shared/goroutine"
	"labdesk/internal/shared/logger"
)

const (
	// requestBroadcastChannel carries every committed request event to all
	// TA observers.
	requestBroadcastChannel = "labdesk:requests"

	// requestStudentChannelPrefix prefixes the per-student channel that
	// carries events about that student's own requests.
	requestStudentChannelPrefix = "labdesk:requests:student:"
)

// RequestEventHandler is a callback for inbound request events.
type RequestEventHandler func(ctx context.Context, event request.Event)

// RedisRequestBroadcaster fans committed request events out over Redis
// Pub/Sub: one broadcast leg for TAs, one targeted leg for the creating
// student. Delivery is best-effort; failures are logged and dropped.
type RedisRequestBroadcaster struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisRequestBroadcaster(client *redis.Client, logger logger.Interface) *RedisRequestBroadcaster {
	return &RedisRequestBroadcaster{
		client: client,
		logger: logger,
	}
}

// Handle implements events.EventHandler for request events coming off the
// in-process dispatcher.
func (b *RedisRequestBroadcaster) Handle(event events.DomainEvent) error {
	reqEvent, ok := event.(request.Event)
	if !ok {
		return nil
	}
	return b.Broadcast(context.Background(), reqEvent)
}

// CanHandle implements events.EventHandler.
func (b *RedisRequestBroadcaster) CanHandle(eventType string) bool {
	for _, t := range request.AllEventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

// channelsFor returns every channel an event goes out on: the TA broadcast
// channel always, the creator's student channel when the snapshot names one.
func channelsFor(event request.Event) []string {
	channels := []string{requestBroadcastChannel}
	if event.Request.CreatorID != "" {
		channels = append(channels, requestStudentChannelPrefix+event.Request.CreatorID)
	}
	return channels
}

// Broadcast publishes one event on both legs. A failure on one leg does not
// stop the other; the first error is returned for logging by the caller.
func (b *RedisRequestBroadcaster) Broadcast(ctx context.Context, event request.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal request event: %w", err)
	}

	var firstErr error

	for _, channel := range channelsFor(event) {
		if err := b.client.Publish(ctx, channel, data).Err(); err != nil {
			b.logger.Errorw("failed to publish request event",
				"channel", channel,
				"request_id", event.Request.ID,
				"event_type", event.Type,
				"error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr == nil {
		b.logger.Debugw("request event broadcast",
			"request_id", event.Request.ID,
			"event_type", event.Type)
	}

	return firstErr
}

// Subscribe listens on the broadcast channel and invokes the handler for
// each inbound event until the context is cancelled.
func (b *RedisRequestBroadcaster) Subscribe(ctx context.Context, handler RequestEventHandler) error {
	pubsub := b.client.Subscribe(ctx, requestBroadcastChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to request events", "channel", requestBroadcastChannel)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("request event subscriber stopped", "reason", ctx.Err())
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("request event channel closed")
				return nil
			}

			var event request.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal request event",
					"payload", msg.Payload,
					"error", err)
				continue
			}

			goroutine.SafeGo(b.logger, "request-event-handler", func() {
				handler(context.Background(), event)
			})
		}
	}
}
