// Package royalty implements the secondary-sale royalty splitter deployed
// alongside each creator contract: an immutable payee list whose shares sum
// to exactly 10000 basis points, a pull-payment ledger over received
// royalties, and a binary codec for persisting splitter state.
package royalty

import (
	"fmt"

	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/ethereum/go-ethereum/common"
)

// Payee is one recipient of a splitter and its share in basis points.
type Payee struct {
	Account common.Address
	BPS     uint32
}

// Config is an immutable splitter configuration. Unlike a primary-sale fee
// split, the shares must cover the whole payment: there is no platform
// remainder to absorb unallocated basis points.
type Config struct {
	Payees []Payee
}

// Validate checks a splitter configuration: at least one payee, no zero
// addresses, no duplicates, no zero shares, and shares summing to exactly
// 10000.
func (c Config) Validate() error {
	if len(c.Payees) == 0 {
		return ErrNoPayees
	}
	seen := make(map[common.Address]struct{}, len(c.Payees))
	var sum uint64
	for _, p := range c.Payees {
		if p.Account == (common.Address{}) {
			return ErrZeroPayee
		}
		if _, dup := seen[p.Account]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePayee, p.Account.Hex())
		}
		seen[p.Account] = struct{}{}
		if p.BPS == 0 {
			return fmt.Errorf("%w: %s", ErrZeroShare, p.Account.Hex())
		}
		sum += uint64(p.BPS)
	}
	if sum != feesplit.TotalBPS {
		return fmt.Errorf("%w: got %d", ErrBadTotalBPS, sum)
	}
	return nil
}

// Splitter accumulates royalty payments and releases each payee's
// proportional cut on demand. The payee list is fixed at construction.
//
// Rounding works per payment: every payee but the last receives the floor of
// its proportional share and the last payee absorbs the remainder, so each
// received amount is fully allocated.
type Splitter struct {
	payees        []Payee
	pending       map[common.Address]uint64
	released      map[common.Address]uint64
	totalReceived uint64
}

// NewSplitter creates a splitter over a validated configuration.
func NewSplitter(cfg Config) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Splitter{
		payees:   append([]Payee(nil), cfg.Payees...),
		pending:  make(map[common.Address]uint64, len(cfg.Payees)),
		released: make(map[common.Address]uint64, len(cfg.Payees)),
	}, nil
}

// Payees returns a copy of the splitter's payee list.
func (s *Splitter) Payees() []Payee {
	return append([]Payee(nil), s.payees...)
}

// TotalReceived returns the lifetime sum of payments into the splitter.
func (s *Splitter) TotalReceived() uint64 { return s.totalReceived }

// Receive books one royalty payment, crediting every payee's pending balance.
func (s *Splitter) Receive(amount uint64) error {
	if amount == 0 {
		return ErrZeroPayment
	}
	var allocated uint64
	for i, p := range s.payees {
		cut := amount - allocated
		if i < len(s.payees)-1 {
			cut = proportion(amount, p.BPS)
			allocated += cut
		}
		s.pending[p.Account] += cut
	}
	s.totalReceived += amount
	return nil
}

// Pending returns a payee's releasable balance.
func (s *Splitter) Pending(account common.Address) (uint64, error) {
	if !s.isPayee(account) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPayee, account.Hex())
	}
	return s.pending[account], nil
}

// Released returns the lifetime amount already released to a payee.
func (s *Splitter) Released(account common.Address) (uint64, error) {
	if !s.isPayee(account) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPayee, account.Hex())
	}
	return s.released[account], nil
}

// Release pays out a payee's pending balance and returns the amount.
func (s *Splitter) Release(account common.Address) (uint64, error) {
	if !s.isPayee(account) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPayee, account.Hex())
	}
	due := s.pending[account]
	if due == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNothingDue, account.Hex())
	}
	s.pending[account] = 0
	s.released[account] += due
	return due, nil
}

func (s *Splitter) isPayee(account common.Address) bool {
	for _, p := range s.payees {
		if p.Account == account {
			return true
		}
	}
	return false
}

// proportion computes amount * bps / 10000 without uint64 overflow.
func proportion(amount uint64, bps uint32) uint64 {
	q, r := amount/feesplit.TotalBPS, amount%feesplit.TotalBPS
	return q*uint64(bps) + r*uint64(bps)/feesplit.TotalBPS
}
