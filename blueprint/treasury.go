package blueprint

import (
	"fmt"
	"sync"

	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/ethereum/go-ethereum/common"
)

// Treasury is the payment boundary of the engine. Each Disburse call moves a
// buyer's payment to the fee recipients and must be atomic: either every
// payment lands or none does, and the error surfaces to the engine, which then
// rolls the whole purchase back. Implementations must not call back into the
// engine.
type Treasury interface {
	// DisburseNative pushes native-currency payments from the buyer.
	DisburseNative(from common.Address, payments []feesplit.Payment) error

	// DisburseToken pulls pre-approved tokens from the buyer and pays each
	// recipient. The total drawn counts against the buyer's approval.
	DisburseToken(token, from common.Address, payments []feesplit.Payment) error
}

// MemTreasury is an in-memory Treasury tracking native balances, token
// balances, and per-owner sale approvals. It backs the test harness and any
// simulation of the on-chain payment rails.
type MemTreasury struct {
	mu         sync.Mutex
	native     map[common.Address]uint64
	tokens     map[common.Address]map[common.Address]uint64 // token -> holder -> balance
	allowances map[common.Address]map[common.Address]uint64 // token -> owner -> approved
}

// Compile-time interface check.
var _ Treasury = (*MemTreasury)(nil)

// NewMemTreasury creates an empty in-memory treasury.
func NewMemTreasury() *MemTreasury {
	return &MemTreasury{
		native:     make(map[common.Address]uint64),
		tokens:     make(map[common.Address]map[common.Address]uint64),
		allowances: make(map[common.Address]map[common.Address]uint64),
	}
}

// CreditNative adds native currency to an account.
func (t *MemTreasury) CreditNative(account common.Address, amount uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.native[account] += amount
}

// NativeBalance returns an account's native balance.
func (t *MemTreasury) NativeBalance(account common.Address) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.native[account]
}

// CreditToken adds fungible tokens to a holder's balance.
func (t *MemTreasury) CreditToken(token, holder common.Address, amount uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tokens[token] == nil {
		t.tokens[token] = make(map[common.Address]uint64)
	}
	t.tokens[token][holder] += amount
}

// TokenBalance returns a holder's balance of a fungible token.
func (t *MemTreasury) TokenBalance(token, holder common.Address) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tokens[token][holder]
}

// Approve sets the amount of a token the sale engine may pull from owner.
func (t *MemTreasury) Approve(token, owner common.Address, amount uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.allowances[token] == nil {
		t.allowances[token] = make(map[common.Address]uint64)
	}
	t.allowances[token][owner] = amount
}

// DisburseNative pushes native-currency payments from the buyer. The total is
// checked against the buyer's balance before any payment is applied.
func (t *MemTreasury) DisburseNative(from common.Address, payments []feesplit.Payment) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := paymentTotal(payments)
	if t.native[from] < total {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, t.native[from], total)
	}
	t.native[from] -= total
	for _, p := range payments {
		t.native[p.To] += p.Amount
	}
	return nil
}

// DisburseToken pulls pre-approved tokens from the buyer and pays each
// recipient. Balance and approval are both checked before any payment is
// applied.
func (t *MemTreasury) DisburseToken(token, from common.Address, payments []feesplit.Payment) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := paymentTotal(payments)
	balance := t.tokens[token][from]
	if balance < total {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, balance, total)
	}
	approved := t.allowances[token][from]
	if approved < total {
		return fmt.Errorf("%w: approved %d, need %d", ErrInsufficientAllowance, approved, total)
	}

	t.allowances[token][from] -= total
	t.tokens[token][from] -= total
	for _, p := range payments {
		t.tokens[token][p.To] += p.Amount
	}
	return nil
}

func paymentTotal(payments []feesplit.Payment) uint64 {
	var total uint64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}
