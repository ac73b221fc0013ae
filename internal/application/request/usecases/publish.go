package usecases

import (
	"labdesk/internal/domain/request"
	"labdesk/internal/domain/shared/events"
	"labdesk/internal/shared/logger"
)

// publishRequestEvent emits one event for a committed write. Delivery is
// best-effort: failures are logged and never surface to the caller.
func publishRequestEvent(
	dispatcher events.EventPublisher,
	log logger.Interface,
	eventType request.EventType,
	r *request.Request,
) {
	if dispatcher == nil {
		return
	}

	event := request.NewEvent(eventType, r)
	if err := dispatcher.Publish(event); err != nil {
		log.Warnw("failed to publish request event",
			"event_type", event.GetEventType(),
			"request_id", r.ID(),
			"error", err)
	}
}
