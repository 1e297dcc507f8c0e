package ledger_test

import (
	"context"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaintrace/custody-api/internal/adapter"
	"github.com/chaintrace/custody-api/internal/custody"
	"github.com/chaintrace/custody-api/internal/domain"
	"github.com/chaintrace/custody-api/internal/ledger"
	"github.com/chaintrace/custody-api/internal/logger"
)

// Integration tests run against a live node with the AuditLog contract
// deployed, typically a local anvil or hardhat instance. They are skipped
// unless the environment below is present.
//
//	CUSTODY_TEST_RPC_URL          node RPC endpoint
//	CUSTODY_TEST_CONTRACT         deployed AuditLog address
//	CUSTODY_TEST_PRIVATE_KEY      funded deployer key (hex, no 0x prefix)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newIntegrationClient(t *testing.T) ledger.Ledger {
	rpcURL := os.Getenv("CUSTODY_TEST_RPC_URL")
	contract := os.Getenv("CUSTODY_TEST_CONTRACT")
	privateKey := os.Getenv("CUSTODY_TEST_PRIVATE_KEY")
	if rpcURL == "" || contract == "" || privateKey == "" {
		t.Skip("CUSTODY_TEST_RPC_URL, CUSTODY_TEST_CONTRACT and CUSTODY_TEST_PRIVATE_KEY are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend, err := adapter.NewEthBackendDialer().Dial(ctx, rpcURL)
	require.NoError(t, err)
	t.Cleanup(backend.Close)

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	require.NoError(t, err)

	chainID, err := backend.ChainID(ctx)
	require.NoError(t, err)

	client, err := ledger.NewClient(backend, key, chainID, ledger.Config{
		ContractAddress: common.HexToAddress(contract),
		ConfirmTimeout:  time.Minute,
	})
	require.NoError(t, err)

	return client
}

func TestIntegrationChainID(t *testing.T) {
	client := newIntegrationClient(t)

	id, err := client.ChainID(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, id)
}

func TestIntegrationRegisterAndTransfer(t *testing.T) {
	client := newIntegrationClient(t)
	ctx := context.Background()

	// Random id keeps reruns against a persistent node independent
	itemID := rand.Uint64()

	before, err := client.Item(ctx, itemID)
	require.NoError(t, err)
	require.False(t, before.Exists)

	txHash, err := client.AddItem(ctx, itemID, "Integration Crate", "Dock 4", "2026-01-02 15:04", client.ServiceAddress())
	require.NoError(t, err)
	assert.NotEmpty(t, txHash)

	after, err := client.Item(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, after.Exists)
	assert.Equal(t, "Integration Crate", after.Name)
	assert.Equal(t, "Dock 4", after.Location)
	assert.Equal(t, "2026-01-02 15:04", after.Timestamp)

	handlerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	handler := crypto.PubkeyToAddress(handlerKey.PublicKey)

	_, err = client.SetHandlerAuthorization(ctx, handler, true)
	require.NoError(t, err)

	authorized, err := client.HandlerAuthorized(ctx, handler)
	require.NoError(t, err)
	assert.True(t, authorized)

	_, err = client.TransferItem(ctx, itemID, handler, "Warehouse 7", time.Now().UTC().Format(custody.TransferTimestampLayout))
	require.NoError(t, err)

	history, err := client.ItemHistory(ctx, itemID)
	require.NoError(t, err)
	require.NotEmpty(t, history)

	last := history[len(history)-1]
	assert.Equal(t, domain.NormalizeAddress(handler.Hex()), last.To)
	assert.Equal(t, "Warehouse 7", last.Location)
}

func TestIntegrationHistoryOrdering(t *testing.T) {
	client := newIntegrationClient(t)
	ctx := context.Background()

	itemID := rand.Uint64()

	_, err := client.AddItem(ctx, itemID, "Ordered Crate", "Dock 1", "2026-01-02 15:04", client.ServiceAddress())
	require.NoError(t, err)

	locations := []string{"Stop A", "Stop B", "Stop C"}
	for _, loc := range locations {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		_, err = client.TransferItem(ctx, itemID, crypto.PubkeyToAddress(key.PublicKey), loc, time.Now().UTC().Format(custody.TransferTimestampLayout))
		require.NoError(t, err)
	}

	history, err := client.ItemHistory(ctx, itemID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(history), len(locations))

	tail := history[len(history)-len(locations):]
	for i, loc := range locations {
		assert.Equal(t, loc, tail[i].Location)
	}
}
