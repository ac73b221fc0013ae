package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labdesk/internal/shared/errors"
)

func TestNewReply(t *testing.T) {
	reply, err := NewReply("req-1", "ta-1", "Check the loop condition on line 12")
	require.NoError(t, err)

	assert.NotEmpty(t, reply.ID())
	assert.Equal(t, "req-1", reply.RequestID())
	assert.Equal(t, "ta-1", reply.TAID())
	assert.Equal(t, "Check the loop condition on line 12", reply.Message())
	assert.False(t, reply.CreatedAt().IsZero())
}

func TestNewReply_Validation(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		taID      string
		message   string
	}{
		{name: "empty message", requestID: "req-1", taID: "ta-1", message: ""},
		{name: "message too long", requestID: "req-1", taID: "ta-1", message: strings.Repeat("x", 5001)},
		{name: "missing request id", requestID: "", taID: "ta-1", message: "hello"},
		{name: "missing ta id", requestID: "req-1", taID: "", message: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReply(tt.requestID, tt.taID, tt.message)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgumentError(err))
		})
	}
}
