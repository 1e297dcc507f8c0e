package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/chaintrace/custody-api/internal/adapter"
	"github.com/chaintrace/custody-api/internal/domain"
	"github.com/chaintrace/custody-api/internal/logger"
)

// auditLogABI mirrors the deployed AuditLog contract interface
const auditLogABI = `[
	{"inputs":[{"name":"itemId","type":"uint256"},{"name":"name","type":"string"},{"name":"location","type":"string"},{"name":"timestamp","type":"string"},{"name":"initialHandler","type":"address"}],"name":"addItem","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"itemId","type":"uint256"},{"name":"to","type":"address"},{"name":"location","type":"string"},{"name":"timestamp","type":"string"}],"name":"transferItem","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"handler","type":"address"},{"name":"authorized","type":"bool"}],"name":"setHandlerAuthorization","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"itemId","type":"uint256"}],"name":"items","outputs":[{"name":"name","type":"string"},{"name":"registrationLocation","type":"string"},{"name":"registrationTimestamp","type":"string"},{"name":"currentCustodian","type":"address"},{"name":"exists","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"itemId","type":"uint256"}],"name":"getItemHistory","outputs":[{"components":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"location","type":"string"},{"name":"timestamp","type":"string"}],"name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"handler","type":"address"}],"name":"authorizedHandlers","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"}
]`

// rawEvent matches the tuple layout of the contract's CustodyEvent struct
type rawEvent struct {
	From      common.Address
	To        common.Address
	Location  string
	Timestamp string
}

// Config holds ledger client configuration
type Config struct {
	ContractAddress common.Address
	// DefaultChainID is used only when the live chain-id read fails
	DefaultChainID *big.Int
	// ConfirmTimeout bounds the wait for write confirmation
	ConfirmTimeout time.Duration
}

type auditLogClient struct {
	backend adapter.EthBackend
	bound   *bind.BoundContract
	cfg     Config

	opts    *bind.TransactOpts
	service common.Address

	// writeMu serializes transaction dispatch so concurrent requests
	// never race on the account nonce
	writeMu sync.Mutex
}

// NewClient creates a ledger client bound to the deployed AuditLog contract.
// The signing key is the service's own administrative identity; chainID must be
// the id the node reported at startup (or the configured fallback).
func NewClient(backend adapter.EthBackend, key *ecdsa.PrivateKey, chainID *big.Int, cfg Config) (Ledger, error) {
	parsed, err := abi.JSON(strings.NewReader(auditLogABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse audit log ABI: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	if cfg.ConfirmTimeout == 0 {
		cfg.ConfirmTimeout = 2 * time.Minute
	}

	return &auditLogClient{
		backend: backend,
		bound:   bind.NewBoundContract(cfg.ContractAddress, parsed, backend, backend, backend),
		cfg:     cfg,
		opts:    opts,
		service: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Item reads the registration record for an item id
func (c *auditLogClient) Item(ctx context.Context, itemID uint64) (domain.Item, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "items", new(big.Int).SetUint64(itemID))
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to read item %d: %w", itemID, err)
	}

	return domain.Item{
		ItemID:    itemID,
		Name:      *abi.ConvertType(out[0], new(string)).(*string),
		Location:  *abi.ConvertType(out[1], new(string)).(*string),
		Timestamp: *abi.ConvertType(out[2], new(string)).(*string),
		Exists:    *abi.ConvertType(out[4], new(bool)).(*bool),
	}, nil
}

// ItemHistory reads the custody-event sequence for an item, preserving ledger order
func (c *auditLogClient) ItemHistory(ctx context.Context, itemID uint64) ([]domain.CustodyEvent, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getItemHistory", new(big.Int).SetUint64(itemID))
	if err != nil {
		if isRevert(err) {
			return nil, fmt.Errorf("%w: ledger rejected item %d: %v", domain.ErrItemNotFound, itemID, err)
		}
		return nil, fmt.Errorf("failed to read history for item %d: %w", itemID, err)
	}

	raw := *abi.ConvertType(out[0], new([]rawEvent)).(*[]rawEvent)
	events := make([]domain.CustodyEvent, 0, len(raw))
	for _, e := range raw {
		from := ""
		if e.From != (common.Address{}) {
			from = domain.NormalizeAddress(e.From.Hex())
		}
		events = append(events, domain.CustodyEvent{
			From:      from,
			To:        domain.NormalizeAddress(e.To.Hex()),
			Location:  e.Location,
			Timestamp: e.Timestamp,
		})
	}

	return events, nil
}

// AddItem registers an item and waits for durable confirmation
func (c *auditLogClient) AddItem(ctx context.Context, itemID uint64, name, location, timestamp string, initialHandler common.Address) (string, error) {
	return c.transact(ctx, "addItem", new(big.Int).SetUint64(itemID), name, location, timestamp, initialHandler)
}

// TransferItem appends a custody-transfer event and waits for confirmation
func (c *auditLogClient) TransferItem(ctx context.Context, itemID uint64, to common.Address, location, timestamp string) (string, error) {
	return c.transact(ctx, "transferItem", new(big.Int).SetUint64(itemID), to, location, timestamp)
}

// SetHandlerAuthorization flips a handler's authorization flag on the ledger
func (c *auditLogClient) SetHandlerAuthorization(ctx context.Context, handler common.Address, authorized bool) (string, error) {
	return c.transact(ctx, "setHandlerAuthorization", handler, authorized)
}

// HandlerAuthorized reads a handler's current authorization flag
func (c *auditLogClient) HandlerAuthorized(ctx context.Context, handler common.Address) (bool, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "authorizedHandlers", handler)
	if err != nil {
		return false, fmt.Errorf("failed to read handler authorization: %w", err)
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// ChainID returns the live chain identifier, falling back to the configured default
func (c *auditLogClient) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.backend.ChainID(ctx)
	if err == nil {
		return id, nil
	}

	if c.cfg.DefaultChainID != nil {
		logger.Warn("Live chain id unavailable, using configured default",
			zap.Error(err),
			zap.Uint64("default_chain_id", c.cfg.DefaultChainID.Uint64()))
		return new(big.Int).Set(c.cfg.DefaultChainID), nil
	}

	return nil, fmt.Errorf("failed to resolve chain id: %w", err)
}

func (c *auditLogClient) VerifyingContract() common.Address {
	return c.cfg.ContractAddress
}

func (c *auditLogClient) ServiceAddress() common.Address {
	return c.service
}

// Close closes the connection
func (c *auditLogClient) Close() {
	c.backend.Close()
}

// transact dispatches a state-changing call and blocks until the transaction is
// mined and reported successful. The transaction itself is sent exactly once;
// only the read-safe receipt poll is retried. A timeout here means the outcome
// is indeterminate and the caller must re-read ledger state before retrying.
func (c *auditLogClient) transact(ctx context.Context, method string, args ...interface{}) (string, error) {
	c.writeMu.Lock()
	opts := *c.opts
	opts.Context = ctx

	tx, err := c.bound.Transact(&opts, method, args...)
	c.writeMu.Unlock()
	if err != nil {
		return "", &domain.LedgerWriteError{Op: method, Err: err}
	}

	logger.Debug("Transaction dispatched",
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()))

	receipt, err := c.waitMined(ctx, tx)
	if err != nil {
		return "", &domain.LedgerWriteError{Op: method, Err: err}
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", &domain.LedgerWriteError{Op: method, Err: fmt.Errorf("transaction %s reverted", tx.Hash().Hex())}
	}

	return tx.Hash().Hex(), nil
}

// isRevert reports whether a call failed inside the contract rather than in
// transport. Geth attaches revert data via rpc.DataError; other nodes only
// carry the reason in the message.
func isRevert(err error) bool {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}

// waitMined polls for the transaction receipt until it lands or the confirm
// timeout elapses
func (c *auditLogClient) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Second
	policy.MaxInterval = 10 * time.Second
	policy.MaxElapsedTime = c.cfg.ConfirmTimeout

	var receipt *types.Receipt
	err := backoff.Retry(func() error {
		r, err := c.backend.TransactionReceipt(ctx, tx.Hash())
		if err != nil {
			return err
		}
		receipt = r
		return nil
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return nil, fmt.Errorf("confirmation not observed for %s: %w", tx.Hash().Hex(), err)
	}

	return receipt, nil
}
