package custody

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chaintrace/custody-api/internal/domain"
)

// RecoverScanSigner recovers the identity that signed the given digest.
// The signature is the 65-byte wallet format (r || s || v) with v in
// {0, 1, 27, 28}; 27/28 is normalized before recovery. No authorization
// check happens here; callers compare the result against the claimed
// handler case-insensitively.
func RecoverScanSigner(digest []byte, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(strings.TrimSpace(signature))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", domain.ErrMalformedSignature, err)
	}

	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes, got %d",
			domain.ErrMalformedSignature, crypto.SignatureLength, len(sig))
	}

	v := sig[crypto.RecoveryIDOffset]
	if v == 27 || v == 28 {
		v -= 27
	}
	if v > 1 {
		return common.Address{}, fmt.Errorf("%w: invalid recovery id %d",
			domain.ErrMalformedSignature, sig[crypto.RecoveryIDOffset])
	}

	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	normalized[crypto.RecoveryIDOffset] = v

	pub, err := crypto.SigToPub(digest, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", domain.ErrRecovery, err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}
