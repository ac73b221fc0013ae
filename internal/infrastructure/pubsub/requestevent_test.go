package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labdesk/internal/domain/request"
	"labdesk/internal/shared/logger"
)

func TestChannelsFor_BothLegs(t *testing.T) {
	r, err := request.New("Stuck on exercise 2", "Compiler output makes no sense to me", "student-1", "", "")
	require.NoError(t, err)

	channels := channelsFor(request.NewEvent(request.EventTypeCreated, r))

	require.Len(t, channels, 2)
	assert.Equal(t, "labdesk:requests", channels[0])
	assert.Equal(t, "labdesk:requests:student:student-1", channels[1])
}

func TestChannelsFor_SkipsStudentLegWithoutCreator(t *testing.T) {
	event := request.Event{Type: request.EventTypeDeleted, Request: request.Snapshot{ID: "req-1"}}

	channels := channelsFor(event)

	require.Len(t, channels, 1)
	assert.Equal(t, "labdesk:requests", channels[0])
}

func TestBroadcaster_CanHandle(t *testing.T) {
	b := NewRedisRequestBroadcaster(nil, logger.NewLogger())

	for _, eventType := range request.AllEventTypes() {
		assert.True(t, b.CanHandle(eventType), eventType)
	}
	assert.False(t, b.CanHandle("ticket:created"))
}
