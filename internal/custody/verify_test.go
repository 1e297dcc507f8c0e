package custody

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaintrace/custody-api/internal/domain"
)

func TestRecoverScanSignerRoundTrip(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	digest, err := ScanDigest(big.NewInt(31337), testContract, 42, "Warehouse 7")
	require.NoError(t, err)

	sig, err := crypto.Sign(digest, key)
	require.NoError(t, err)

	recovered, err := RecoverScanSigner(digest, hexutil.Encode(sig))
	require.NoError(t, err)
	assert.Equal(t, signer, recovered)
}

func TestRecoverScanSignerLegacyRecoveryID(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	digest, err := ScanDigest(big.NewInt(31337), testContract, 42, "Warehouse 7")
	require.NoError(t, err)

	sig, err := crypto.Sign(digest, key)
	require.NoError(t, err)

	// Wallets emit v as 27/28; recovery must accept both forms
	sig[crypto.RecoveryIDOffset] += 27

	recovered, err := RecoverScanSigner(digest, hexutil.Encode(sig))
	require.NoError(t, err)
	assert.Equal(t, signer, recovered)
}

func TestRecoverScanSignerRejectsMalformed(t *testing.T) {
	digest, err := ScanDigest(big.NewInt(31337), testContract, 42, "Warehouse 7")
	require.NoError(t, err)

	testCases := []struct {
		name      string
		signature string
	}{
		{name: "empty", signature: ""},
		{name: "not hex", signature: "not-a-signature"},
		{name: "missing prefix", signature: "deadbeef"},
		{name: "too short", signature: "0xdeadbeef"},
		{
			name:      "truncated",
			signature: hexutil.Encode(make([]byte, crypto.SignatureLength-1)),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RecoverScanSigner(digest, tc.signature)
			assert.ErrorIs(t, err, domain.ErrMalformedSignature)
		})
	}
}

func TestRecoverScanSignerRejectsInvalidRecoveryID(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	digest, err := ScanDigest(big.NewInt(31337), testContract, 42, "Warehouse 7")
	require.NoError(t, err)

	sig, err := crypto.Sign(digest, key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] = 5

	_, err = RecoverScanSigner(digest, hexutil.Encode(sig))
	assert.ErrorIs(t, err, domain.ErrMalformedSignature)
}

func TestRecoverScanSignerTamperedMessage(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	signedDigest, err := ScanDigest(big.NewInt(31337), testContract, 42, "Warehouse 7")
	require.NoError(t, err)

	sig, err := crypto.Sign(signedDigest, key)
	require.NoError(t, err)

	// Verifying against a different location must not yield the signer
	tamperedDigest, err := ScanDigest(big.NewInt(31337), testContract, 42, "Warehouse 8")
	require.NoError(t, err)

	recovered, err := RecoverScanSigner(tamperedDigest, hexutil.Encode(sig))
	if err == nil {
		assert.NotEqual(t, signer, recovered)
	}
}
