package qr

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaintrace/custody-api/internal/domain"
)

func TestEncodeClaimToken(t *testing.T) {
	enc := NewEncoder()

	dataURL, err := enc.EncodeClaimToken(domain.ClaimToken{
		ItemID:    42,
		Name:      "Crate 42",
		Location:  "Dock 4",
		Timestamp: "2026-01-02 15:04",
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	require.NoError(t, err)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestEncodeClaimTokenDeterministic(t *testing.T) {
	enc := NewEncoder()
	token := domain.ClaimToken{
		ItemID:    42,
		Name:      "Crate 42",
		Location:  "Dock 4",
		Timestamp: "2026-01-02 15:04",
	}

	first, err := enc.EncodeClaimToken(token)
	require.NoError(t, err)
	second, err := enc.EncodeClaimToken(token)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClaimTokenJSONShape(t *testing.T) {
	// The QR payload field names are fixed; scanning clients parse them literally
	token := domain.ClaimToken{
		ItemID:    42,
		Name:      "Crate 42",
		Location:  "Dock 4",
		Timestamp: "2026-01-02 15:04",
	}

	payload, err := json.Marshal(token)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"itemId": 42,
		"name": "Crate 42",
		"location": "Dock 4",
		"timestamp": "2026-01-02 15:04"
	}`, string(payload))
}
