package domain

import "strings"

// Item is the immutable registration record the ledger keeps per item.
// Custody transfers never touch these fields.
type Item struct {
	ItemID    uint64
	Name      string
	Location  string
	Timestamp string // display string, "<date> <time>" as submitted at registration
	Exists    bool
}

// CustodyEvent is one append-only entry in an item's audit trail.
// From is the zero address for the genesis event.
type CustodyEvent struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Location  string `json:"location"`
	Timestamp string `json:"timestamp"`
}

// ClaimToken is the unsigned QR payload handed back at registration.
// It carries no authority; consumers must never treat it as proof of a transfer.
type ClaimToken struct {
	ItemID    uint64 `json:"itemId"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Timestamp string `json:"timestamp"`
}

// RegistrationStatus reports whether a register call wrote to the ledger.
type RegistrationStatus string

const (
	StatusRegistered        RegistrationStatus = "registered"
	StatusAlreadyRegistered RegistrationStatus = "already_registered"
)

// NormalizeAddress lowercases a hex address so comparisons and EIP-712 domain
// values are canonical regardless of checksum casing on the wire.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
