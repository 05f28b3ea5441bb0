package allowlist

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// VerifyClaim checks a purchase claim against the published allowlist root.
//
// A zero root means the sale is not gated: any quantity is accepted and a
// supplied proof is ignored rather than verified. For a nonzero root the
// proof must be non-empty, the claimed allowance must cover the requested
// quantity, and the leaf (account, claimedAllowance) must fold to the root.
func VerifyClaim(root common.Hash, account common.Address, claimedAllowance, quantity uint64, proof []common.Hash) error {
	if root == (common.Hash{}) {
		return nil
	}
	if len(proof) == 0 {
		return ErrNoProof
	}
	if claimedAllowance < quantity {
		return fmt.Errorf("%w: allowance %d below quantity %d", ErrNotAvailable, claimedAllowance, quantity)
	}
	if fold(LeafHash(account, claimedAllowance), proof) != root {
		return ErrNotAvailable
	}
	return nil
}

// RecomputeRoot derives the post-purchase root by re-folding the proof path
// with the account's leaf decremented by the purchased quantity. The new root
// is always re-derived here from the verified path, never accepted from the
// caller. Callers must have validated the claim with VerifyClaim first.
func RecomputeRoot(account common.Address, claimedAllowance, quantity uint64, proof []common.Hash) (common.Hash, error) {
	if quantity > claimedAllowance {
		return common.Hash{}, fmt.Errorf("%w: allowance %d below quantity %d", ErrInsufficientAllowance, claimedAllowance, quantity)
	}
	return fold(LeafHash(account, claimedAllowance-quantity), proof), nil
}
