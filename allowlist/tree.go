package allowlist

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Entry is one account's remaining allowance in the off-chain mapping.
type Entry struct {
	Account   common.Address
	Allowance uint64
}

// Tree is the off-chain side of the allowlist: the full mapping from account
// to remaining allowance, from which roots and inclusion proofs are produced.
// After every accepted partial redemption the maintainer decrements the
// account's entry and republishes the new root.
//
// Leaf order is the insertion order of the entries and is part of the
// commitment: proofs generated by one ordering do not verify against a root
// built from another.
type Tree struct {
	entries []Entry
	index   map[common.Address]int
}

// NewTree builds an allowlist tree over the given entries.
func NewTree(entries []Entry) (*Tree, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	t := &Tree{
		entries: make([]Entry, len(entries)),
		index:   make(map[common.Address]int, len(entries)),
	}
	for i, e := range entries {
		if _, dup := t.index[e.Account]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Account.Hex())
		}
		t.entries[i] = e
		t.index[e.Account] = i
	}
	return t, nil
}

// Root returns the current Merkle root over all entries.
func (t *Tree) Root() common.Hash {
	level := t.leafLevel()
	for len(level) > 1 {
		level = nextLevel(level)
	}
	return level[0]
}

// Proof returns the inclusion proof for an account's current leaf.
func (t *Tree) Proof(account common.Address) ([]common.Hash, error) {
	pos, ok := t.index[account]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, account.Hex())
	}

	var proof []common.Hash
	level := t.leafLevel()
	for len(level) > 1 {
		sibling := pos ^ 1
		if sibling < len(level) {
			proof = append(proof, level[sibling])
		}
		// An unpaired last node is promoted unchanged; it contributes no
		// sibling at this level.
		pos /= 2
		level = nextLevel(level)
	}
	return proof, nil
}

// Allowance returns the remaining allowance for an account.
func (t *Tree) Allowance(account common.Address) (uint64, bool) {
	pos, ok := t.index[account]
	if !ok {
		return 0, false
	}
	return t.entries[pos].Allowance, true
}

// Decrement consumes quantity from an account's remaining allowance. The
// entry stays in the tree when it reaches zero; its leaf simply commits to a
// zero allowance, so stale proofs for the old value no longer verify.
func (t *Tree) Decrement(account common.Address, quantity uint64) error {
	pos, ok := t.index[account]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, account.Hex())
	}
	if t.entries[pos].Allowance < quantity {
		return fmt.Errorf("%w: have %d, want %d", ErrInsufficientAllowance, t.entries[pos].Allowance, quantity)
	}
	t.entries[pos].Allowance -= quantity
	return nil
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int { return len(t.entries) }

func (t *Tree) leafLevel() []common.Hash {
	leaves := make([]common.Hash, len(t.entries))
	for i, e := range t.entries {
		leaves[i] = LeafHash(e.Account, e.Allowance)
	}
	return leaves
}

// nextLevel pairs and hashes one tree level. An unpaired trailing node is
// promoted to the next level unchanged.
func nextLevel(level []common.Hash) []common.Hash {
	next := make([]common.Hash, 0, (len(level)+1)/2)
	for i := 0; i+1 < len(level); i += 2 {
		next = append(next, hashPair(level[i], level[i+1]))
	}
	if len(level)%2 == 1 {
		next = append(next, level[len(level)-1])
	}
	return next
}
