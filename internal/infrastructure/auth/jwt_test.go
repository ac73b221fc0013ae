package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labdesk/internal/domain/actor"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, err := svc.Generate("ta-1", []actor.Role{actor.RoleTA})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ta-1", claims.Subject)

	a := claims.Actor()
	assert.Equal(t, "ta-1", a.ID)
	assert.True(t, a.IsTA())
	assert.False(t, a.IsStudent())
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 60).Generate("student-1", []actor.Role{actor.RoleStudent})
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 60).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := NewJWTService("secret", 60).Verify("not-a-token")
	assert.Error(t, err)
}
