package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSignature is returned when a signature cannot be parsed into its components
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrRecovery is returned when no identity can be recovered from a signature
	ErrRecovery = errors.New("signer recovery failed")

	// ErrItemNotFound is returned when a ledger read rejects an item identifier
	ErrItemNotFound = errors.New("item not found")
)

// ValidationError reports a missing or malformed request field.
// It is resolved locally; no ledger I/O is attempted.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Detail)
}

func NewValidationError(detail string) *ValidationError {
	return &ValidationError{Detail: detail}
}

// SignatureMismatchError reports a well-formed signature produced by a key
// other than the claimed handler's. It carries the normalized addresses and the
// resolved chain id for debugging, never the signature itself.
type SignatureMismatchError struct {
	Recovered string
	Handler   string
	ChainID   uint64
}

func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf("signature does not match handler: recovered=%s handler=%s chain_id=%d",
		e.Recovered, e.Handler, e.ChainID)
}

// LedgerWriteError reports a write the ledger rejected or failed to confirm.
// The underlying reason is preserved; writes are never retried automatically
// since a resubmitted transfer whose first attempt landed would duplicate a
// custody event.
type LedgerWriteError struct {
	Op  string
	Err error
}

func (e *LedgerWriteError) Error() string {
	return fmt.Sprintf("ledger write %s failed: %v", e.Op, e.Err)
}

func (e *LedgerWriteError) Unwrap() error {
	return e.Err
}
