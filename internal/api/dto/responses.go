package dto

import (
	"fmt"

	"github.com/chaintrace/custody-api/internal/domain"
)

// RegisterItemResponse reports the registration outcome. TxHash is empty on
// the already_registered path since no write happened.
type RegisterItemResponse struct {
	Status    domain.RegistrationStatus `json:"status"`
	TxHash    string                    `json:"tx_hash,omitempty"`
	QRDataURL string                    `json:"qr_data_url"`
}

// SubmitScanResponse reports a confirmed custody transfer
type SubmitScanResponse struct {
	Status string `json:"status"`
	TxHash string `json:"tx_hash"`
}

// AuthorizeHandlerResponse reports a confirmed authorization write
type AuthorizeHandlerResponse struct {
	Status string `json:"status"`
	TxHash string `json:"tx_hash"`
}

// ItemHistoryResponse is the ordered audit trail for an item
type ItemHistoryResponse struct {
	ItemID  uint64                `json:"item_id"`
	History []domain.CustodyEvent `json:"history"`
}

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}
