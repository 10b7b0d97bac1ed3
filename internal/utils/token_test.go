package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := SignSessionID("abc-123", "secret", time.Hour)
	require.NoError(t, err)

	sid, err := ParseSessionID(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", sid)
}

func TestSessionToken_Rejects(t *testing.T) {
	token, err := SignSessionID("abc-123", "secret", time.Hour)
	require.NoError(t, err)
	expired, err := SignSessionID("abc-123", "secret", -time.Minute)
	require.NoError(t, err)
	empty, err := SignSessionID("", "secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: token, secret: "other"},
		{name: "expired", token: expired, secret: "secret"},
		{name: "garbage", token: "not-a-token", secret: "secret"},
		{name: "tampered", token: token + "x", secret: "secret"},
		{name: "no session id", token: empty, secret: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionID(tt.token, tt.secret)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
