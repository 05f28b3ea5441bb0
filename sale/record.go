// Package sale holds the per-edition sale record and its lifecycle state
// machine. A record tracks everything one blueprint edition needs to run a
// primary sale: remaining capacity, pricing, the allowlist root, the reserved
// token-index range, artist and platform mint allocations, and the sale state.
// Records are never deleted; purchases, reserved mints, and re-preparations
// only mutate them under the state machine's guards.
package sale

import (
	"fmt"

	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/ethereum/go-ethereum/common"
)

// Record is the mutable state of one blueprint edition.
type Record struct {
	Artist        common.Address
	Capacity      uint64         // remaining mintable units
	Price         uint64         // unit price in the sale currency's smallest denomination
	CurrencyToken common.Address // zero address means a native-currency sale
	AllowlistRoot common.Hash    // zero hash means no gating (public sale)

	TokenIndex    uint64 // next unassigned token id within the reserved range
	TokenIndexEnd uint64 // exclusive upper bound of the reserved range

	ArtistMintAllocation   uint64
	PlatformMintAllocation uint64
	MaxPurchaseAmount      uint64 // per-transaction cap, 0 = unlimited
	SaleEndTimestamp       uint64 // unix seconds, 0 = no deadline

	State State
	Fees  feesplit.Config

	BaseTokenURI string
	URILocked    bool
	MetadataHash string
	Seed         string // empty until revealed
}

// PrepareConfig carries the fields populated by a (re-)preparation. The field
// order mirrors the prepareBlueprint call tuple.
type PrepareConfig struct {
	Artist                 common.Address
	Capacity               uint64
	Price                  uint64
	CurrencyToken          common.Address
	MetadataHash           string
	BaseTokenURI           string
	AllowlistRoot          common.Hash
	ArtistMintAllocation   uint64
	PlatformMintAllocation uint64
	MaxPurchaseAmount      uint64
	SaleEndTimestamp       uint64
}

// NativeSale reports whether the record sells in native currency.
func (r *Record) NativeSale() bool {
	return r.CurrencyToken == (common.Address{})
}

// Expired reports whether the sale deadline has passed. A zero deadline never
// expires.
func (r *Record) Expired(now uint64) bool {
	return r.SaleEndTimestamp != 0 && now > r.SaleEndTimestamp
}

// Remaining returns the number of token ids still issuable from the reserved
// range.
func (r *Record) Remaining() uint64 {
	return r.TokenIndexEnd - r.TokenIndex
}

// Consume allocates the contiguous token-id range [first, first+quantity)
// and decrements capacity. Capacity and the reserved range are checked before
// any mutation.
func (r *Record) Consume(quantity uint64) (first uint64, err error) {
	if quantity == 0 {
		return 0, ErrZeroQuantity
	}
	if quantity > r.Capacity {
		return 0, fmt.Errorf("%w: want %d, capacity %d", ErrCapacityExceeded, quantity, r.Capacity)
	}
	if quantity > r.Remaining() {
		return 0, fmt.Errorf("%w: want %d, range has %d", ErrCapacityExceeded, quantity, r.Remaining())
	}
	first = r.TokenIndex
	r.TokenIndex += quantity
	r.Capacity -= quantity
	return first, nil
}

// Clone returns a deep copy of the record. Stores hand out clones so callers
// can mutate freely and commit with Put, or drop the copy to roll back.
func (r *Record) Clone() *Record {
	c := *r
	c.Fees = feesplit.Config{
		Recipients: append([]common.Address(nil), r.Fees.Recipients...),
		BPS:        append([]uint32(nil), r.Fees.BPS...),
	}
	return &c
}
