// Package factory provisions per-creator sale contracts. Each deployment
// pairs a CreatorBlueprints instance with an optional royalty splitter whose
// address is derived CREATE2-style from the royalty configuration, so it can
// be computed and shared before the splitter exists.
package factory

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/asyncart/blueprints-go/blueprint"
	"github.com/asyncart/blueprints-go/royalty"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// splitterInitCode seeds the CREATE2 code-hash component of splitter
// addresses. It is fixed for all deployments; only the salt varies.
var splitterInitCode = []byte("blueprints-go/royalty-splitter/v1")

// Deployment is one provisioned creator contract and its royalty splitter.
type Deployment struct {
	Contract        *blueprint.CreatorBlueprints
	Splitter        *royalty.Splitter
	SplitterAddress common.Address
}

// Factory deploys creator contracts on behalf of the platform. The base
// options carry the shared payment and token boundaries; every deployment
// receives its own sale record store.
type Factory struct {
	mu          sync.Mutex
	deployer    common.Address
	base        blueprint.Options
	deployments map[common.Address]*Deployment // keyed by artist
}

// NewFactory creates a factory owned by the deployer address.
func NewFactory(deployer common.Address, base blueprint.Options) (*Factory, error) {
	if deployer == (common.Address{}) {
		return nil, fmt.Errorf("%w: deployer", ErrZeroAddress)
	}
	return &Factory{
		deployer:    deployer,
		base:        base,
		deployments: make(map[common.Address]*Deployment),
	}, nil
}

// PredictSplitterAddress derives the address a splitter with the given
// configuration will deploy at. The salt commits to the full payee list, so
// two configurations collide only when they are identical.
func PredictSplitterAddress(deployer common.Address, cfg royalty.Config) (common.Address, error) {
	if err := cfg.Validate(); err != nil {
		return common.Address{}, err
	}
	return crypto.CreateAddress2(deployer, configSalt(cfg), crypto.Keccak256(splitterInitCode)), nil
}

// DeployCreatorBlueprints provisions a creator contract for the profile's
// artist. A non-nil royalty configuration additionally deploys the royalty
// splitter at its predicted address and attaches it to the contract. One
// deployment per artist.
func (f *Factory) DeployCreatorBlueprints(profile blueprint.Profile, royaltyCfg *royalty.Config) (*Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.deployments[profile.Artist]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyDeployed, profile.Artist.Hex())
	}

	opts := f.base
	opts.Store = nil // each creator contract runs over its own store
	contract, err := blueprint.NewCreatorBlueprints(profile, opts)
	if err != nil {
		return nil, err
	}

	d := &Deployment{Contract: contract}
	if royaltyCfg != nil {
		addr, err := PredictSplitterAddress(f.deployer, *royaltyCfg)
		if err != nil {
			return nil, err
		}
		splitter, err := royalty.NewSplitter(*royaltyCfg)
		if err != nil {
			return nil, err
		}
		if err := contract.SetRoyaltySplitter(f.base.Platform, addr); err != nil {
			return nil, err
		}
		d.Splitter = splitter
		d.SplitterAddress = addr
	}

	f.deployments[profile.Artist] = d
	return d, nil
}

// Deployment returns the deployment for an artist.
func (f *Factory) Deployment(artist common.Address) (*Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deployments[artist]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotDeployed, artist.Hex())
	}
	return d, nil
}

// Deployments returns the number of creator contracts deployed so far.
func (f *Factory) Deployments() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deployments)
}

// configSalt hashes a royalty configuration into a CREATE2 salt.
func configSalt(cfg royalty.Config) [32]byte {
	buf := make([]byte, 0, len(cfg.Payees)*24)
	for _, p := range cfg.Payees {
		buf = append(buf, p.Account[:]...)
		buf = binary.BigEndian.AppendUint32(buf, p.BPS)
	}
	return crypto.Keccak256Hash(buf)
}
