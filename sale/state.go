package sale

import "fmt"

// State is the sale lifecycle state of a blueprint edition.
//
// Wire values: 0 not prepared, 1 prepared but not started, 2 started,
// 3 paused.
type State uint8

const (
	StateUnprepared State = iota
	StatePrepared
	StateStarted
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnprepared:
		return "unprepared"
	case StatePrepared:
		return "prepared"
	case StateStarted:
		return "started"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Prepare (re-)initializes the record's sale fields and moves it to
// StatePrepared. Legal from StateUnprepared and StatePrepared only: a live
// (started or paused) sale cannot be re-prepared. The token-index cursor is
// not touched here; the registry assigns the reserved range so that ids are
// never reused across preparations.
func (r *Record) Prepare(cfg PrepareConfig, now uint64) error {
	if r.Live() {
		return fmt.Errorf("%w: state %s", ErrAlreadyStarted, r.State)
	}
	if cfg.Capacity == 0 {
		return ErrZeroCapacity
	}
	if cfg.SaleEndTimestamp != 0 && cfg.SaleEndTimestamp <= now {
		return fmt.Errorf("%w: deadline %d not after %d", ErrSaleEnded, cfg.SaleEndTimestamp, now)
	}

	r.Artist = cfg.Artist
	r.Capacity = cfg.Capacity
	r.Price = cfg.Price
	r.CurrencyToken = cfg.CurrencyToken
	r.MetadataHash = cfg.MetadataHash
	r.BaseTokenURI = cfg.BaseTokenURI
	r.AllowlistRoot = cfg.AllowlistRoot
	r.ArtistMintAllocation = cfg.ArtistMintAllocation
	r.PlatformMintAllocation = cfg.PlatformMintAllocation
	r.MaxPurchaseAmount = cfg.MaxPurchaseAmount
	r.SaleEndTimestamp = cfg.SaleEndTimestamp
	r.Seed = ""
	r.State = StatePrepared
	return nil
}

// Live reports whether a sale cycle is in flight: started or paused. A live
// record cannot be re-prepared.
func (r *Record) Live() bool {
	return r.State == StateStarted || r.State == StatePaused
}

// BeginSale moves a prepared sale to StateStarted.
func (r *Record) BeginSale(now uint64) error {
	if r.State != StatePrepared {
		return fmt.Errorf("%w: state %s", ErrNotPrepared, r.State)
	}
	if r.Expired(now) {
		return ErrSaleEnded
	}
	r.State = StateStarted
	return nil
}

// PauseSale moves a started sale to StatePaused. Pausing a sale whose
// deadline has passed is rejected: the sale is already inert.
func (r *Record) PauseSale(now uint64) error {
	if r.State != StateStarted {
		return fmt.Errorf("%w: state %s", ErrSaleNotStarted, r.State)
	}
	if r.Expired(now) {
		return ErrSaleEnded
	}
	r.State = StatePaused
	return nil
}

// UnpauseSale moves a paused sale back to StateStarted. The deadline may have
// passed while paused; unpausing a dead sale is rejected.
func (r *Record) UnpauseSale(now uint64) error {
	if r.State != StatePaused {
		return fmt.Errorf("%w: state %s", ErrSaleNotPaused, r.State)
	}
	if r.Expired(now) {
		return ErrSaleEnded
	}
	r.State = StateStarted
	return nil
}

// Purchasable reports whether a public or allowlisted purchase is currently
// legal: the sale must be started and the deadline not passed.
func (r *Record) Purchasable(now uint64) error {
	if r.State != StateStarted {
		return fmt.Errorf("%w: state %s", ErrSaleNotStarted, r.State)
	}
	if r.Expired(now) {
		return ErrSaleEnded
	}
	return nil
}

// ReservedMintable reports whether an artist or platform reserved mint is
// currently legal. Reserved mints are a separate permission track from public
// purchasing: they run during presale (prepared) and the public sale
// (started), but not while paused.
func (r *Record) ReservedMintable(now uint64) error {
	if r.State != StatePrepared && r.State != StateStarted {
		return fmt.Errorf("%w: state %s", ErrNotMintable, r.State)
	}
	if r.Expired(now) {
		return ErrSaleEnded
	}
	return nil
}
