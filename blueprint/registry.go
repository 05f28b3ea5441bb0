package blueprint

import (
	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/asyncart/blueprints-go/sale"
	"github.com/ethereum/go-ethereum/common"
)

// Registry is the global multi-edition contract shape: one instance hosts
// many independent blueprint editions, keyed by edition id, sharing a single
// partitioned token-id space.
type Registry struct {
	*engine
	nextEdition uint64
}

// NewRegistry creates a multi-edition registry. When opts.Store holds
// persisted editions, the edition counter and the global token cursor are
// recovered from it.
func NewRegistry(opts Options) (*Registry, error) {
	e, err := newEngine(opts)
	if err != nil {
		return nil, err
	}
	r := &Registry{engine: e}

	ids, err := e.store.Editions()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id >= r.nextEdition {
			r.nextEdition = id + 1
		}
	}
	return r, nil
}

// PrepareBlueprint creates the next edition and prepares its sale, returning
// the new edition id. Caller must hold the platform or minter role.
func (r *Registry) PrepareBlueprint(caller common.Address, cfg sale.PrepareConfig, fees feesplit.Config) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	editionID := r.nextEdition
	if err := r.prepare(caller, editionID, cfg, fees); err != nil {
		return 0, err
	}
	r.nextEdition++
	return editionID, nil
}

// ReprepareBlueprint starts a new sale cycle for an existing edition slot.
// Legal only while the edition is not actively started or paused. The new
// sale draws token ids from a fresh range: ids issued by earlier cycles are
// never reused.
func (r *Registry) ReprepareBlueprint(caller common.Address, editionID uint64, cfg sale.PrepareConfig, fees feesplit.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	has, err := r.store.Has(editionID)
	if err != nil {
		return err
	}
	if !has {
		return sale.ErrRecordNotFound
	}
	return r.prepare(caller, editionID, cfg, fees)
}

// BeginSale opens an edition's prepared sale to the public.
func (r *Registry) BeginSale(caller common.Address, editionID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.beginSale(caller, editionID)
}

// PauseSale pauses an ongoing sale.
func (r *Registry) PauseSale(caller common.Address, editionID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pauseSale(caller, editionID)
}

// UnpauseSale resumes a paused sale.
func (r *Registry) UnpauseSale(caller common.Address, editionID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unpauseSale(caller, editionID)
}

// PurchaseBlueprints buys quantity tokens from an edition's ongoing sale.
//
// For a native-currency sale the buyer attaches exactly quantity times the
// unit price as nativeValue and tokenAmount must be zero; for a
// token-currency sale the roles flip and the amount must be pre-approved in
// the treasury. For an allowlist-gated sale, claimedAllowance and proof carry
// the buyer's current leaf; an accepted purchase republishes the decremented
// root, which the receipt reports.
func (r *Registry) PurchaseBlueprints(buyer common.Address, editionID, quantity, tokenAmount, nativeValue, claimedAllowance uint64, proof []common.Hash) (*Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.purchase(buyer, editionID, quantity, tokenAmount, nativeValue, claimedAllowance, proof)
}

// ArtistMint draws from the edition artist's reserved allocation. Callable
// only by the edition's artist, during presale or the public sale.
func (r *Registry) ArtistMint(caller common.Address, editionID, quantity uint64) (*Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.artistMint(caller, editionID, quantity)
}

// PlatformMint draws from the platform's reserved allocation. Callable only
// by the platform or minter role, during presale or the public sale.
func (r *Registry) PlatformMint(caller common.Address, editionID, quantity uint64) (*Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.platformMint(caller, editionID, quantity)
}

// Blueprint returns a copy of an edition's sale record.
func (r *Registry) Blueprint(editionID uint64) (*sale.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Get(editionID)
}

// LatestTokenIndex returns the global token cursor: the end of the highest
// reserved id range.
func (r *Registry) LatestTokenIndex() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextTokenIndex
}

// Editions returns the number of edition slots created so far.
func (r *Registry) Editions() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextEdition
}
