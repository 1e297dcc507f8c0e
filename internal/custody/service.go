package custody

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chaintrace/custody-api/internal/adapter"
	"github.com/chaintrace/custody-api/internal/domain"
	"github.com/chaintrace/custody-api/internal/ledger"
	"github.com/chaintrace/custody-api/internal/logger"
	"github.com/chaintrace/custody-api/internal/qr"
)

// TransferTimestampLayout renders a full-precision UTC instant with
// zero-padded nanoseconds. The width never varies, so event timestamps
// sort correctly as plain strings.
const TransferTimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// RegisterResult is the outcome of an item registration.
// Both outcomes carry a usable claim token.
type RegisterResult struct {
	Status    domain.RegistrationStatus
	TxHash    string
	QRDataURL string
	Token     domain.ClaimToken
}

// TransferResult is the outcome of a confirmed custody transfer
type TransferResult struct {
	TxHash string
}

// Service is the signature-verified custody protocol between untrusted
// clients and the append-only ledger. All operations are request-scoped and
// safe for concurrent use.
//
//go:generate mockgen -source=service.go -destination=../mocks/custody.go -package=mocks -mock_names=Service=MockCustodyService
type Service interface {
	// Register idempotently creates an item record on the ledger
	Register(ctx context.Context, itemID uint64, name, location, date, clock string) (*RegisterResult, error)

	// SubmitTransfer verifies a handler's signature over the canonical scan
	// message and appends a custody-transfer event on success
	SubmitTransfer(ctx context.Context, itemID uint64, location, handler, signature string) (*TransferResult, error)

	// History reconstructs the ordered audit trail for an item
	History(ctx context.Context, itemID uint64) ([]domain.CustodyEvent, error)

	// SetHandlerAuthorization passes an authorization flip through to the ledger
	SetHandlerAuthorization(ctx context.Context, handler string, authorized bool) (string, error)
}

type service struct {
	ledger ledger.Ledger
	clock  adapter.Clock
	qr     qr.Encoder
}

// NewService creates the custody service on top of a shared ledger connection
func NewService(l ledger.Ledger, clock adapter.Clock, qrEncoder qr.Encoder) Service {
	return &service{
		ledger: l,
		clock:  clock,
		qr:     qrEncoder,
	}
}

// Register validates the request, checks for an existing record and writes the
// item to the ledger only if it is not registered yet. Repeated calls with the
// same item id are side-effect-free after the first.
func (s *service) Register(ctx context.Context, itemID uint64, name, location, date, clock string) (*RegisterResult, error) {
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if location == "" {
		return nil, domain.NewValidationError("location is required")
	}
	if date == "" || clock == "" {
		return nil, domain.NewValidationError("date and time are required")
	}

	item, err := s.ledger.Item(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to check item existence: %w", err)
	}

	if item.Exists {
		// Idempotence path: return the existing record unchanged, zero writes
		token := domain.ClaimToken{
			ItemID:    itemID,
			Name:      item.Name,
			Location:  item.Location,
			Timestamp: item.Timestamp,
		}
		dataURL, err := s.qr.EncodeClaimToken(token)
		if err != nil {
			return nil, fmt.Errorf("failed to encode claim token: %w", err)
		}

		logger.InfoCtx(ctx, "Item already registered", zap.Uint64("item_id", itemID))
		return &RegisterResult{
			Status:    domain.StatusAlreadyRegistered,
			QRDataURL: dataURL,
			Token:     token,
		}, nil
	}

	// Registration timestamp stays an opaque display string; downstream
	// consumers depend on the "<date> <time>" concatenation literally.
	ts := date + " " + clock

	txHash, err := s.ledger.AddItem(ctx, itemID, name, location, ts, s.ledger.ServiceAddress())
	if err != nil {
		return nil, err
	}

	token := domain.ClaimToken{
		ItemID:    itemID,
		Name:      name,
		Location:  location,
		Timestamp: ts,
	}
	dataURL, err := s.qr.EncodeClaimToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to encode claim token: %w", err)
	}

	logger.InfoCtx(ctx, "Item registered",
		zap.Uint64("item_id", itemID),
		zap.String("tx_hash", txHash))

	return &RegisterResult{
		Status:    domain.StatusRegistered,
		TxHash:    txHash,
		QRDataURL: dataURL,
		Token:     token,
	}, nil
}

// SubmitTransfer runs the Validated -> Verified -> Submitted -> Confirmed
// sequence for a custody-transfer request. The transfer is written only when
// the recovered signer equals the claimed handler, compared case-insensitively.
func (s *service) SubmitTransfer(ctx context.Context, itemID uint64, location, handler, signature string) (*TransferResult, error) {
	if location == "" {
		return nil, domain.NewValidationError("location is required")
	}
	if signature == "" {
		return nil, domain.NewValidationError("signature is required")
	}
	if !common.IsHexAddress(handler) {
		return nil, domain.NewValidationError("handler must be a valid address")
	}

	// The chain id comes from the live connection, never from the client,
	// so a signature crafted for another network cannot be replayed here.
	chainID, err := s.ledger.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chain id: %w", err)
	}
	verifyingContract := domain.NormalizeAddress(s.ledger.VerifyingContract().Hex())

	digest, err := ScanDigest(chainID, verifyingContract, itemID, location)
	if err != nil {
		return nil, err
	}

	recovered, err := RecoverScanSigner(digest, signature)
	if err != nil {
		return nil, err
	}

	normalizedRecovered := domain.NormalizeAddress(recovered.Hex())
	normalizedHandler := domain.NormalizeAddress(handler)
	if normalizedRecovered != normalizedHandler {
		logger.WarnCtx(ctx, "Signature mismatch",
			zap.Uint64("item_id", itemID),
			zap.String("recovered", normalizedRecovered),
			zap.String("handler", normalizedHandler),
			zap.Uint64("chain_id", chainID.Uint64()))
		return nil, &domain.SignatureMismatchError{
			Recovered: normalizedRecovered,
			Handler:   normalizedHandler,
			ChainID:   chainID.Uint64(),
		}
	}

	ts := s.clock.Now().UTC().Format(TransferTimestampLayout)

	txHash, err := s.ledger.TransferItem(ctx, itemID, common.HexToAddress(handler), location, ts)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Custody transfer logged",
		zap.Uint64("item_id", itemID),
		zap.String("to", normalizedHandler),
		zap.String("tx_hash", txHash))

	return &TransferResult{TxHash: txHash}, nil
}

// History reads the full event sequence for an item, preserving ledger order.
// An item with no events is a valid empty result, not an error. The ledger
// client distinguishes a rejected item id from a transport failure; both pass
// through unchanged.
func (s *service) History(ctx context.Context, itemID uint64) ([]domain.CustodyEvent, error) {
	return s.ledger.ItemHistory(ctx, itemID)
}

// SetHandlerAuthorization is a pass-through administrative write; the ledger's
// own access control decides whether the service may perform it.
func (s *service) SetHandlerAuthorization(ctx context.Context, handler string, authorized bool) (string, error) {
	if !common.IsHexAddress(handler) {
		return "", domain.NewValidationError("handler must be a valid address")
	}

	txHash, err := s.ledger.SetHandlerAuthorization(ctx, common.HexToAddress(handler), authorized)
	if err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "Handler authorization updated",
		zap.String("handler", domain.NormalizeAddress(handler)),
		zap.Bool("authorized", authorized),
		zap.String("tx_hash", txHash))

	return txHash, nil
}
