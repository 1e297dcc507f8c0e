package custody

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/chaintrace/custody-api/internal/domain"
)

// EIP-712 domain constants. Any drift between these and the signing client
// invalidates every signature, so they are fixed here and nowhere else.
const (
	domainName    = "AuditLog"
	domainVersion = "1"
	scanType      = "Scan"
)

// scanTypedData builds the canonical typed-data structure for a custody scan.
// Field order and types must match the signing client exactly.
func scanTypedData(chainID *big.Int, verifyingContract string, itemID uint64, location string) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			scanType: []apitypes.Type{
				{Name: "itemId", Type: "uint256"},
				{Name: "location", Type: "string"},
			},
		},
		PrimaryType: scanType,
		Domain: apitypes.TypedDataDomain{
			Name:              domainName,
			Version:           domainVersion,
			ChainId:           (*math.HexOrDecimal256)(new(big.Int).Set(chainID)),
			VerifyingContract: domain.NormalizeAddress(verifyingContract),
		},
		Message: apitypes.TypedDataMessage{
			"itemId":   (*math.HexOrDecimal256)(new(big.Int).SetUint64(itemID)),
			"location": location,
		},
	}
}

// ScanDigest returns the 32-byte EIP-712 sign hash for a custody scan.
// It is pure: identical inputs always produce an identical digest.
func ScanDigest(chainID *big.Int, verifyingContract string, itemID uint64, location string) ([]byte, error) {
	if chainID == nil {
		return nil, fmt.Errorf("chain id is required")
	}

	digest, _, err := apitypes.TypedDataAndHash(scanTypedData(chainID, verifyingContract, itemID, location))
	if err != nil {
		return nil, fmt.Errorf("failed to hash typed data: %w", err)
	}

	return digest, nil
}
