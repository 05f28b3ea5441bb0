// Package allowlist implements the Merkle allowlist commitment used to gate
// blueprint purchases. Leaves commit to (account, remaining allowance) pairs;
// interior nodes use sorted-pair keccak256 hashing so that proofs carry no
// left/right position bits. The off-chain Tree produces roots and proofs; the
// verification side checks claims against a published root and re-derives the
// post-purchase root along the verified proof path.
package allowlist

import (
	"bytes"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// LeafHash commits to an account and its remaining allowance:
// keccak256(account || uint256(allowance)).
func LeafHash(account common.Address, allowance uint64) common.Hash {
	buf := make([]byte, common.AddressLength+32)
	copy(buf, account[:])
	binary.BigEndian.PutUint64(buf[common.AddressLength+24:], allowance)
	return crypto.Keccak256Hash(buf)
}

// hashPair hashes two sibling nodes with the lexicographically smaller node
// first, so verification is position-independent.
func hashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a[:], b[:])
}

// fold recomputes a root candidate from a leaf and its proof branch.
func fold(leaf common.Hash, proof []common.Hash) common.Hash {
	node := leaf
	for _, sibling := range proof {
		node = hashPair(node, sibling)
	}
	return node
}
