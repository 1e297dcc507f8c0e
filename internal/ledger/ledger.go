package ledger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chaintrace/custody-api/internal/domain"
)

// Ledger is the append-only audit-log contract as seen by the custody services.
// One long-lived connection is constructed at process start and shared by all
// in-flight requests; reads always hit the latest durable ledger state.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// Item reads the registration record for an item id
	Item(ctx context.Context, itemID uint64) (domain.Item, error)

	// ItemHistory reads the full custody-event sequence for an item in ledger order
	ItemHistory(ctx context.Context, itemID uint64) ([]domain.CustodyEvent, error)

	// AddItem registers an item and blocks until the write is durably confirmed
	AddItem(ctx context.Context, itemID uint64, name, location, timestamp string, initialHandler common.Address) (string, error)

	// TransferItem appends a custody-transfer event and blocks until confirmed
	TransferItem(ctx context.Context, itemID uint64, to common.Address, location, timestamp string) (string, error)

	// SetHandlerAuthorization flips a handler's standing; authority is enforced on-chain
	SetHandlerAuthorization(ctx context.Context, handler common.Address, authorized bool) (string, error)

	// HandlerAuthorized reads a handler's current authorization flag
	HandlerAuthorized(ctx context.Context, handler common.Address) (bool, error)

	// ChainID returns the live chain identifier of the connected network,
	// falling back to the configured default only when the live read fails
	ChainID(ctx context.Context) (*big.Int, error)

	// VerifyingContract returns the deployed audit-log contract address
	VerifyingContract() common.Address

	// ServiceAddress returns the address of the service's own signing identity
	ServiceAddress() common.Address

	// Close closes the underlying connection
	Close()
}
