package blueprint

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// TokenMinter is the token-standard boundary of the engine. The engine only
// ever mints contiguous, never-before-issued id ranges and reads ownership;
// transfer and approval semantics live entirely behind this interface.
//
// MintRange must be atomic and must succeed for a non-zero recipient and a
// range of fresh ids; the engine guarantees it never re-issues an id.
type TokenMinter interface {
	// MintRange assigns token ids [firstID, firstID+quantity) to an owner.
	MintRange(to common.Address, firstID, quantity uint64) error

	// BalanceOf returns the number of tokens an owner holds.
	BalanceOf(owner common.Address) uint64

	// OwnerOf returns a token's owner, if the token has been minted.
	OwnerOf(tokenID uint64) (common.Address, bool)
}

// MemTokenLedger is an in-memory TokenMinter.
type MemTokenLedger struct {
	mu       sync.RWMutex
	owners   map[uint64]common.Address
	balances map[common.Address]uint64
}

// Compile-time interface check.
var _ TokenMinter = (*MemTokenLedger)(nil)

// NewMemTokenLedger creates an empty in-memory token ledger.
func NewMemTokenLedger() *MemTokenLedger {
	return &MemTokenLedger{
		owners:   make(map[uint64]common.Address),
		balances: make(map[common.Address]uint64),
	}
}

// MintRange assigns token ids [firstID, firstID+quantity) to an owner.
func (l *MemTokenLedger) MintRange(to common.Address, firstID, quantity uint64) error {
	if to == (common.Address{}) {
		return fmt.Errorf("%w: mint recipient", ErrZeroAddress)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for id := firstID; id < firstID+quantity; id++ {
		if _, exists := l.owners[id]; exists {
			return fmt.Errorf("%w: id %d", ErrTokenExists, id)
		}
	}
	for id := firstID; id < firstID+quantity; id++ {
		l.owners[id] = to
	}
	l.balances[to] += quantity
	return nil
}

// BalanceOf returns the number of tokens an owner holds.
func (l *MemTokenLedger) BalanceOf(owner common.Address) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[owner]
}

// OwnerOf returns a token's owner, if the token has been minted.
func (l *MemTokenLedger) OwnerOf(tokenID uint64) (common.Address, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	owner, ok := l.owners[tokenID]
	return owner, ok
}
