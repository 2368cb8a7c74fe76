package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 3, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "2f0c7a5e-8d0b-4f52-9d5c-2f3b8f1a9e77",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "/", "token must be safe in a query string")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, cursor.Date.Equal(decoded.Date))
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%"},
		{"missing fields", base64.RawURLEncoding.EncodeToString([]byte("2026-03-15T00:00:00Z"))},
		{"bad date", base64.RawURLEncoding.EncodeToString([]byte("yesterday|2026-03-15T00:00:00Z|id"))},
		{"bad created_at", base64.RawURLEncoding.EncodeToString([]byte("2026-03-15T00:00:00Z|later|id"))},
		{"missing id", base64.RawURLEncoding.EncodeToString([]byte("2026-03-15T00:00:00Z|2026-03-15T00:00:00Z|"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
