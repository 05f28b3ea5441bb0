// Package blueprint implements the primary-sale engine for blueprint
// editions: preparation, the sale lifecycle, allowlist-gated purchases with
// atomic fee distribution, and reserved artist/platform mints.
//
// The same engine drives both contract shapes. Registry hosts many editions
// behind one global token-id space; CreatorBlueprints hosts exactly one
// edition for a single creator. Payment rails and the token standard sit
// behind the Treasury and TokenMinter interfaces.
package blueprint

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/asyncart/blueprints-go/allowlist"
	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/asyncart/blueprints-go/sale"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// DefaultPlatformFeeBPS is the platform's default primary fee share, applied
// when a preparation names no fee recipients.
const DefaultPlatformFeeBPS = 500

// Options configures an engine behind a Registry or CreatorBlueprints.
type Options struct {
	// Store persists sale records. Defaults to an in-memory store.
	Store sale.Store

	// Treasury moves sale proceeds. Required.
	Treasury Treasury

	// Tokens is the token-standard layer receiving mints. Required.
	Tokens TokenMinter

	// Platform holds the admin role: preparation, lifecycle transitions, and
	// the admin surface. Required.
	Platform common.Address

	// Minter may run platform reserved mints and preparations. Defaults to
	// Platform.
	Minter common.Address

	// PlatformFeeRecipient receives the unallocated fee remainder. Defaults
	// to Platform.
	PlatformFeeRecipient common.Address

	// PlatformFeeBPS is the platform share used when a preparation names no
	// fee recipients. Defaults to DefaultPlatformFeeBPS.
	PlatformFeeBPS uint32

	// Clock returns the current unix time in seconds. Defaults to the wall
	// clock. Tests override it to drive sale deadlines.
	Clock func() uint64
}

// Receipt describes one accepted purchase or reserved mint.
type Receipt struct {
	ID               uuid.UUID
	EditionID        uint64
	Buyer            common.Address
	FirstTokenID     uint64
	Quantity         uint64
	TotalPaid        uint64
	Payments         []feesplit.Payment
	NewAllowlistRoot common.Hash // zero when the sale is ungated
}

// engine is the shared sale machinery. All operations hold the mutex for
// their full duration, the in-process analogue of transaction serialization:
// no call can observe another's partial effects.
type engine struct {
	mu sync.Mutex

	store    sale.Store
	treasury Treasury
	tokens   TokenMinter

	platform             common.Address
	minter               common.Address
	platformFeeRecipient common.Address
	platformFeeBPS       uint32

	// nextTokenIndex is the global cursor partitioning one token-id space
	// across editions. Each preparation reserves a fresh disjoint range, so
	// ids are never reused even across re-preparations.
	nextTokenIndex uint64

	now func() uint64
}

func newEngine(opts Options) (*engine, error) {
	if opts.Treasury == nil || opts.Tokens == nil {
		return nil, ErrMissingBoundary
	}
	if opts.Platform == (common.Address{}) {
		return nil, fmt.Errorf("%w: platform", ErrZeroAddress)
	}
	if opts.Store == nil {
		opts.Store = sale.NewMemStore()
	}
	if opts.Minter == (common.Address{}) {
		opts.Minter = opts.Platform
	}
	if opts.PlatformFeeRecipient == (common.Address{}) {
		opts.PlatformFeeRecipient = opts.Platform
	}
	if opts.PlatformFeeBPS == 0 {
		opts.PlatformFeeBPS = DefaultPlatformFeeBPS
	}
	if opts.PlatformFeeBPS > feesplit.TotalBPS {
		return nil, fmt.Errorf("%w: platform fee %d", feesplit.ErrBPSExceeded, opts.PlatformFeeBPS)
	}
	if opts.Clock == nil {
		opts.Clock = func() uint64 { return uint64(time.Now().Unix()) }
	}

	e := &engine{
		store:                opts.Store,
		treasury:             opts.Treasury,
		tokens:               opts.Tokens,
		platform:             opts.Platform,
		minter:               opts.Minter,
		platformFeeRecipient: opts.PlatformFeeRecipient,
		platformFeeBPS:       opts.PlatformFeeBPS,
		now:                  opts.Clock,
	}

	// Recover the global cursor from persisted records.
	ids, err := e.store.Editions()
	if err != nil {
		return nil, fmt.Errorf("blueprint: scan store: %w", err)
	}
	for _, id := range ids {
		rec, err := e.store.Get(id)
		if err != nil {
			return nil, fmt.Errorf("blueprint: load edition %d: %w", id, err)
		}
		if rec.TokenIndexEnd > e.nextTokenIndex {
			e.nextTokenIndex = rec.TokenIndexEnd
		}
	}
	return e, nil
}

func (e *engine) requirePlatform(caller common.Address) error {
	if caller != e.platform {
		return ErrNotPlatform
	}
	return nil
}

func (e *engine) requirePreparer(caller common.Address) error {
	if caller != e.platform && caller != e.minter {
		return ErrNotPlatform
	}
	return nil
}

// prepare (re-)initializes an edition's sale and reserves a fresh token-id
// range for its capacity. An empty fee configuration falls back to the
// default split: the artist receives everything above the platform's default
// share, which accrues to the platform fee recipient as remainder.
func (e *engine) prepare(caller common.Address, editionID uint64, cfg sale.PrepareConfig, fees feesplit.Config) error {
	if err := e.requirePreparer(caller); err != nil {
		return err
	}
	if err := feesplit.Validate(fees); err != nil {
		return err
	}

	rec, err := e.store.Get(editionID)
	if err != nil {
		rec = &sale.Record{}
	}
	if err := rec.Prepare(cfg, e.now()); err != nil {
		return err
	}

	if len(fees.Recipients) == 0 {
		fees = feesplit.Config{
			Recipients: []common.Address{cfg.Artist},
			BPS:        []uint32{feesplit.TotalBPS - e.platformFeeBPS},
		}
	}
	rec.Fees = fees

	rec.TokenIndex = e.nextTokenIndex
	rec.TokenIndexEnd = rec.TokenIndex + cfg.Capacity
	if err := e.store.Put(editionID, rec); err != nil {
		return err
	}
	e.nextTokenIndex = rec.TokenIndexEnd
	return nil
}

// transition runs one state-machine step and commits the record.
func (e *engine) transition(caller common.Address, editionID uint64, step func(*sale.Record, uint64) error) error {
	if err := e.requirePlatform(caller); err != nil {
		return err
	}
	rec, err := e.store.Get(editionID)
	if err != nil {
		return err
	}
	if err := step(rec, e.now()); err != nil {
		return err
	}
	return e.store.Put(editionID, rec)
}

func (e *engine) beginSale(caller common.Address, editionID uint64) error {
	return e.transition(caller, editionID, (*sale.Record).BeginSale)
}

func (e *engine) pauseSale(caller common.Address, editionID uint64) error {
	return e.transition(caller, editionID, (*sale.Record).PauseSale)
}

func (e *engine) unpauseSale(caller common.Address, editionID uint64) error {
	return e.transition(caller, editionID, (*sale.Record).UnpauseSale)
}

// purchase validates and executes a public or allowlisted purchase.
//
// All record mutations happen on a private copy; the buyer's payment is
// disbursed before the copy is committed and the tokens minted, so a failed
// disbursement leaves no observable effect. Within one call the record, the
// treasury, and the token ledger move together or not at all.
func (e *engine) purchase(buyer common.Address, editionID, quantity, tokenAmount, nativeValue, claimedAllowance uint64, proof []common.Hash) (*Receipt, error) {
	if buyer == (common.Address{}) {
		return nil, fmt.Errorf("%w: buyer", ErrZeroAddress)
	}

	rec, err := e.store.Get(editionID)
	if err != nil {
		return nil, err
	}
	now := e.now()
	if err := rec.Purchasable(now); err != nil {
		return nil, err
	}
	if quantity == 0 {
		return nil, sale.ErrZeroQuantity
	}
	if rec.MaxPurchaseAmount != 0 && quantity > rec.MaxPurchaseAmount {
		return nil, fmt.Errorf("%w: %d > %d", ErrMaxPurchaseExceeded, quantity, rec.MaxPurchaseAmount)
	}

	total, err := totalPrice(rec.Price, quantity)
	if err != nil {
		return nil, err
	}
	if rec.NativeSale() {
		if tokenAmount != 0 {
			return nil, ErrTokenAmountNotAllowed
		}
		if nativeValue != total {
			return nil, fmt.Errorf("%w: attached %d, need %d", ErrWrongPurchaseAmount, nativeValue, total)
		}
	} else {
		if nativeValue != 0 {
			return nil, ErrNativeAmountNotAllowed
		}
		if tokenAmount != total {
			return nil, fmt.Errorf("%w: offered %d, need %d", ErrWrongPurchaseAmount, tokenAmount, total)
		}
	}

	gated := rec.AllowlistRoot != (common.Hash{})
	if err := allowlist.VerifyClaim(rec.AllowlistRoot, buyer, claimedAllowance, quantity, proof); err != nil {
		return nil, err
	}

	first, err := rec.Consume(quantity)
	if err != nil {
		return nil, err
	}
	if gated {
		newRoot, err := allowlist.RecomputeRoot(buyer, claimedAllowance, quantity, proof)
		if err != nil {
			return nil, err
		}
		rec.AllowlistRoot = newRoot
	}

	var payments []feesplit.Payment
	if total > 0 {
		payments, err = feesplit.ComputeShares(total, rec.Fees, e.platformFeeRecipient)
		if err != nil {
			return nil, err
		}
		if rec.NativeSale() {
			err = e.treasury.DisburseNative(buyer, payments)
		} else {
			err = e.treasury.DisburseToken(rec.CurrencyToken, buyer, payments)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := e.store.Put(editionID, rec); err != nil {
		return nil, err
	}
	if err := e.tokens.MintRange(buyer, first, quantity); err != nil {
		return nil, fmt.Errorf("blueprint: mint after disbursement: %w", err)
	}

	return &Receipt{
		ID:               uuid.New(),
		EditionID:        editionID,
		Buyer:            buyer,
		FirstTokenID:     first,
		Quantity:         quantity,
		TotalPaid:        total,
		Payments:         payments,
		NewAllowlistRoot: rec.AllowlistRoot,
	}, nil
}

func (e *engine) artistMint(caller common.Address, editionID, quantity uint64) (*Receipt, error) {
	return e.mintReserved(caller, editionID, quantity, func(rec *sale.Record) (*uint64, error) {
		if caller != rec.Artist {
			return nil, ErrNotMinter
		}
		return &rec.ArtistMintAllocation, nil
	})
}

func (e *engine) platformMint(caller common.Address, editionID, quantity uint64) (*Receipt, error) {
	return e.mintReserved(caller, editionID, quantity, func(rec *sale.Record) (*uint64, error) {
		if caller != e.platform && caller != e.minter {
			return nil, ErrNotMinter
		}
		return &rec.PlatformMintAllocation, nil
	})
}

func (e *engine) mintReserved(caller common.Address, editionID, quantity uint64, pick func(*sale.Record) (*uint64, error)) (*Receipt, error) {
	rec, err := e.store.Get(editionID)
	if err != nil {
		return nil, err
	}
	if err := rec.ReservedMintable(e.now()); err != nil {
		return nil, err
	}
	remaining, err := pick(rec)
	if err != nil {
		return nil, err
	}
	if quantity == 0 {
		return nil, sale.ErrZeroQuantity
	}
	if quantity > *remaining {
		return nil, fmt.Errorf("%w: want %d, allocation %d", sale.ErrAllocationExceeded, quantity, *remaining)
	}

	first, err := rec.Consume(quantity)
	if err != nil {
		return nil, err
	}
	*remaining -= quantity

	if err := e.store.Put(editionID, rec); err != nil {
		return nil, err
	}
	if err := e.tokens.MintRange(caller, first, quantity); err != nil {
		return nil, fmt.Errorf("blueprint: reserved mint: %w", err)
	}

	return &Receipt{
		ID:           uuid.New(),
		EditionID:    editionID,
		Buyer:        caller,
		FirstTokenID: first,
		Quantity:     quantity,
	}, nil
}

// totalPrice computes quantity * price, rejecting uint64 overflow.
func totalPrice(price, quantity uint64) (uint64, error) {
	if price != 0 && quantity > math.MaxUint64/price {
		return 0, ErrPriceOverflow
	}
	return price * quantity, nil
}
