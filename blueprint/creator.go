package blueprint

import (
	"fmt"

	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/asyncart/blueprints-go/sale"
	"github.com/ethereum/go-ethereum/common"
)

// Profile is a creator contract's immutable identity.
type Profile struct {
	Name        string
	Symbol      string
	ContractURI string
	Artist      common.Address
}

// CreatorBlueprints is the per-creator contract shape: one instance, one
// artist, one implicit edition. It runs the same engine as the global
// Registry with the edition lookup collapsed to a single record.
type CreatorBlueprints struct {
	*engine

	profile         Profile
	royaltySplitter common.Address
}

// creatorEditionID is the implicit edition id of a per-creator contract.
const creatorEditionID = 0

// NewCreatorBlueprints creates a per-creator sale contract for the profile's
// artist. The royalty splitter address, when the factory provisioned one, is
// attached with SetRoyaltySplitter before any sale runs.
func NewCreatorBlueprints(profile Profile, opts Options) (*CreatorBlueprints, error) {
	if profile.Artist == (common.Address{}) {
		return nil, fmt.Errorf("%w: artist", ErrZeroAddress)
	}
	e, err := newEngine(opts)
	if err != nil {
		return nil, err
	}
	return &CreatorBlueprints{engine: e, profile: profile}, nil
}

// Profile returns the contract's immutable creator identity.
func (c *CreatorBlueprints) Profile() Profile { return c.profile }

// RoyaltySplitter returns the address of the associated royalty splitter, or
// the zero address when none was provisioned.
func (c *CreatorBlueprints) RoyaltySplitter() common.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.royaltySplitter
}

// SetRoyaltySplitter attaches the royalty splitter address. Platform only;
// immutable once set.
func (c *CreatorBlueprints) SetRoyaltySplitter(caller, splitter common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requirePlatform(caller); err != nil {
		return err
	}
	if c.royaltySplitter != (common.Address{}) {
		return fmt.Errorf("blueprint: royalty splitter already set")
	}
	c.royaltySplitter = splitter
	return nil
}

// PrepareBlueprint (re-)prepares the sole edition's sale. The artist is
// always the contract's creator; any artist in cfg is overridden.
func (c *CreatorBlueprints) PrepareBlueprint(caller common.Address, cfg sale.PrepareConfig, fees feesplit.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg.Artist = c.profile.Artist
	return c.prepare(caller, creatorEditionID, cfg, fees)
}

// BeginSale opens the prepared sale to the public.
func (c *CreatorBlueprints) BeginSale(caller common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beginSale(caller, creatorEditionID)
}

// PauseSale pauses the ongoing sale.
func (c *CreatorBlueprints) PauseSale(caller common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pauseSale(caller, creatorEditionID)
}

// UnpauseSale resumes the paused sale.
func (c *CreatorBlueprints) UnpauseSale(caller common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unpauseSale(caller, creatorEditionID)
}

// PurchaseBlueprints buys quantity tokens from the ongoing sale. Semantics
// match Registry.PurchaseBlueprints with the edition fixed.
func (c *CreatorBlueprints) PurchaseBlueprints(buyer common.Address, quantity, tokenAmount, nativeValue, claimedAllowance uint64, proof []common.Hash) (*Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purchase(buyer, creatorEditionID, quantity, tokenAmount, nativeValue, claimedAllowance, proof)
}

// ArtistMint draws from the creator's reserved allocation.
func (c *CreatorBlueprints) ArtistMint(caller common.Address, quantity uint64) (*Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.artistMint(caller, creatorEditionID, quantity)
}

// PlatformMint draws from the platform's reserved allocation.
func (c *CreatorBlueprints) PlatformMint(caller common.Address, quantity uint64) (*Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.platformMint(caller, creatorEditionID, quantity)
}

// Blueprint returns a copy of the sole edition's sale record.
func (c *CreatorBlueprints) Blueprint() (*sale.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Get(creatorEditionID)
}
