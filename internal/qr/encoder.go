package qr

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/chaintrace/custody-api/internal/domain"
)

// imageSize is the pixel width of the generated QR image
const imageSize = 256

// Encoder renders claim tokens as scannable images.
//
//go:generate mockgen -source=encoder.go -destination=../mocks/qr.go -package=mocks -mock_names=Encoder=MockQREncoder
type Encoder interface {
	// EncodeClaimToken returns a PNG data URL of the token's JSON payload
	EncodeClaimToken(token domain.ClaimToken) (string, error)
}

type encoder struct{}

// NewEncoder creates a QR claim-token encoder
func NewEncoder() Encoder {
	return &encoder{}
}

func (e *encoder) EncodeClaimToken(token domain.ClaimToken) (string, error) {
	payload, err := json.Marshal(token)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claim token: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR image: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
