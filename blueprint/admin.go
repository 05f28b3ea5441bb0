package blueprint

import (
	"fmt"

	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/asyncart/blueprints-go/sale"
	"github.com/ethereum/go-ethereum/common"
)

// Admin surface shared by both contract shapes. Every operation requires the
// platform role and is validated fully before any record is committed.

func (e *engine) setFeeRecipients(caller common.Address, editionID uint64, fees feesplit.Config) error {
	if err := e.requirePlatform(caller); err != nil {
		return err
	}
	if err := feesplit.Validate(fees); err != nil {
		return err
	}
	rec, err := e.store.Get(editionID)
	if err != nil {
		return err
	}
	if rec.State == sale.StateUnprepared {
		return sale.ErrNotPrepared
	}
	rec.Fees = fees
	return e.store.Put(editionID, rec)
}

func (e *engine) updateBaseTokenURI(caller common.Address, editionID uint64, uri string) error {
	if err := e.requirePlatform(caller); err != nil {
		return err
	}
	rec, err := e.store.Get(editionID)
	if err != nil {
		return err
	}
	if rec.State == sale.StateUnprepared {
		return sale.ErrNotPrepared
	}
	if rec.URILocked {
		return sale.ErrURILocked
	}
	rec.BaseTokenURI = uri
	return e.store.Put(editionID, rec)
}

func (e *engine) lockTokenURI(caller common.Address, editionID uint64) error {
	if err := e.requirePlatform(caller); err != nil {
		return err
	}
	rec, err := e.store.Get(editionID)
	if err != nil {
		return err
	}
	if rec.State == sale.StateUnprepared {
		return sale.ErrNotPrepared
	}
	rec.URILocked = true
	return e.store.Put(editionID, rec)
}

func (e *engine) revealSeed(caller common.Address, editionID uint64, seed string) error {
	if err := e.requirePlatform(caller); err != nil {
		return err
	}
	rec, err := e.store.Get(editionID)
	if err != nil {
		return err
	}
	if rec.State == sale.StateUnprepared {
		return sale.ErrNotPrepared
	}
	rec.Seed = seed
	return e.store.Put(editionID, rec)
}

func (e *engine) updatePlatformAddress(caller, platform common.Address) error {
	if err := e.requirePlatform(caller); err != nil {
		return err
	}
	if platform == (common.Address{}) {
		return fmt.Errorf("%w: platform", ErrZeroAddress)
	}
	e.platform = platform
	return nil
}

func (e *engine) updateMinterAddress(caller, minter common.Address) error {
	if err := e.requirePlatform(caller); err != nil {
		return err
	}
	if minter == (common.Address{}) {
		return fmt.Errorf("%w: minter", ErrZeroAddress)
	}
	e.minter = minter
	return nil
}

func (e *engine) setPlatformFeeRecipient(caller, recipient common.Address) error {
	if err := e.requirePlatform(caller); err != nil {
		return err
	}
	if recipient == (common.Address{}) {
		return fmt.Errorf("%w: fee recipient", ErrZeroAddress)
	}
	e.platformFeeRecipient = recipient
	return nil
}

func (e *engine) setDefaultPlatformFeeBPS(caller common.Address, bps uint32) error {
	if err := e.requirePlatform(caller); err != nil {
		return err
	}
	if bps > feesplit.TotalBPS {
		return fmt.Errorf("%w: %d", feesplit.ErrBPSExceeded, bps)
	}
	e.platformFeeBPS = bps
	return nil
}

// --- Registry wrappers ---

// SetFeeRecipients replaces an edition's primary fee configuration.
func (r *Registry) SetFeeRecipients(caller common.Address, editionID uint64, fees feesplit.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setFeeRecipients(caller, editionID, fees)
}

// UpdateBaseTokenURI replaces an edition's metadata base URI, unless locked.
func (r *Registry) UpdateBaseTokenURI(caller common.Address, editionID uint64, uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateBaseTokenURI(caller, editionID, uri)
}

// LockTokenURI irreversibly locks an edition's metadata base URI.
func (r *Registry) LockTokenURI(caller common.Address, editionID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lockTokenURI(caller, editionID)
}

// RevealSeed publishes an edition's random seed after preparation.
func (r *Registry) RevealSeed(caller common.Address, editionID uint64, seed string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealSeed(caller, editionID, seed)
}

// UpdatePlatformAddress hands the platform admin role to a new address.
func (r *Registry) UpdatePlatformAddress(caller, platform common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updatePlatformAddress(caller, platform)
}

// UpdateMinterAddress hands the platform minter role to a new address.
func (r *Registry) UpdateMinterAddress(caller, minter common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateMinterAddress(caller, minter)
}

// SetPlatformFeeRecipient changes the default platform fee recipient.
func (r *Registry) SetPlatformFeeRecipient(caller, recipient common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setPlatformFeeRecipient(caller, recipient)
}

// SetDefaultPlatformFeeBPS changes the default platform fee share.
func (r *Registry) SetDefaultPlatformFeeBPS(caller common.Address, bps uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setDefaultPlatformFeeBPS(caller, bps)
}

// --- CreatorBlueprints wrappers ---

// SetFeeRecipients replaces the sole edition's primary fee configuration.
func (c *CreatorBlueprints) SetFeeRecipients(caller common.Address, fees feesplit.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setFeeRecipients(caller, creatorEditionID, fees)
}

// UpdateBaseTokenURI replaces the metadata base URI, unless locked.
func (c *CreatorBlueprints) UpdateBaseTokenURI(caller common.Address, uri string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateBaseTokenURI(caller, creatorEditionID, uri)
}

// LockTokenURI irreversibly locks the metadata base URI.
func (c *CreatorBlueprints) LockTokenURI(caller common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lockTokenURI(caller, creatorEditionID)
}

// RevealSeed publishes the edition's random seed after preparation.
func (c *CreatorBlueprints) RevealSeed(caller common.Address, seed string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealSeed(caller, creatorEditionID, seed)
}

// UpdatePlatformAddress hands the platform admin role to a new address.
func (c *CreatorBlueprints) UpdatePlatformAddress(caller, platform common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updatePlatformAddress(caller, platform)
}

// UpdateMinterAddress hands the platform minter role to a new address.
func (c *CreatorBlueprints) UpdateMinterAddress(caller, minter common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateMinterAddress(caller, minter)
}

// SetPlatformFeeRecipient changes the default platform fee recipient.
func (c *CreatorBlueprints) SetPlatformFeeRecipient(caller, recipient common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setPlatformFeeRecipient(caller, recipient)
}

// SetDefaultPlatformFeeBPS changes the default platform fee share.
func (c *CreatorBlueprints) SetDefaultPlatformFeeBPS(caller common.Address, bps uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setDefaultPlatformFeeBPS(caller, bps)
}
