package factory

import (
	"testing"

	"github.com/asyncart/blueprints-go/blueprint"
	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/asyncart/blueprints-go/royalty"
	"github.com/asyncart/blueprints-go/sale"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	deployerAddr = common.HexToAddress("0x1000000000000000000000000000000000000001")
	artist1Addr  = common.HexToAddress("0x2000000000000000000000000000000000000001")
	artist2Addr  = common.HexToAddress("0x2000000000000000000000000000000000000002")
)

func baseOptions() blueprint.Options {
	return blueprint.Options{
		Treasury: blueprint.NewMemTreasury(),
		Tokens:   blueprint.NewMemTokenLedger(),
		Platform: deployerAddr,
	}
}

func royaltyConfig(artist common.Address) royalty.Config {
	return royalty.Config{Payees: []royalty.Payee{
		{Account: artist, BPS: 9000},
		{Account: deployerAddr, BPS: 1000},
	}}
}

func TestNewFactory(t *testing.T) {
	_, err := NewFactory(common.Address{}, baseOptions())
	assert.ErrorIs(t, err, ErrZeroAddress)

	f, err := NewFactory(deployerAddr, baseOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, f.Deployments())
}

func TestPredictSplitterAddress(t *testing.T) {
	cfg := royaltyConfig(artist1Addr)

	addr, err := PredictSplitterAddress(deployerAddr, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, common.Address{}, addr)

	// Deterministic for the same deployer and configuration.
	again, err := PredictSplitterAddress(deployerAddr, cfg)
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	// Any change to the configuration or deployer moves the address.
	other, err := PredictSplitterAddress(deployerAddr, royaltyConfig(artist2Addr))
	require.NoError(t, err)
	assert.NotEqual(t, addr, other)

	other, err = PredictSplitterAddress(artist1Addr, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, addr, other)

	_, err = PredictSplitterAddress(deployerAddr, royalty.Config{})
	assert.ErrorIs(t, err, royalty.ErrNoPayees)
}

func TestDeployCreatorBlueprints(t *testing.T) {
	f, err := NewFactory(deployerAddr, baseOptions())
	require.NoError(t, err)

	cfg := royaltyConfig(artist1Addr)
	predicted, err := PredictSplitterAddress(deployerAddr, cfg)
	require.NoError(t, err)

	profile := blueprint.Profile{Name: "Creator One", Symbol: "ONE", Artist: artist1Addr}
	d, err := f.DeployCreatorBlueprints(profile, &cfg)
	require.NoError(t, err)
	require.NotNil(t, d.Contract)
	require.NotNil(t, d.Splitter)

	// The splitter lands at exactly the predicted address and is attached.
	assert.Equal(t, predicted, d.SplitterAddress)
	assert.Equal(t, predicted, d.Contract.RoyaltySplitter())
	assert.Equal(t, cfg.Payees, d.Splitter.Payees())

	// One deployment per artist.
	_, err = f.DeployCreatorBlueprints(profile, &cfg)
	assert.ErrorIs(t, err, ErrAlreadyDeployed)

	got, err := f.Deployment(artist1Addr)
	require.NoError(t, err)
	assert.Same(t, d, got)
	_, err = f.Deployment(artist2Addr)
	assert.ErrorIs(t, err, ErrNotDeployed)
}

func TestDeployWithoutRoyalties(t *testing.T) {
	f, err := NewFactory(deployerAddr, baseOptions())
	require.NoError(t, err)

	profile := blueprint.Profile{Name: "Creator Two", Symbol: "TWO", Artist: artist2Addr}
	d, err := f.DeployCreatorBlueprints(profile, nil)
	require.NoError(t, err)
	assert.Nil(t, d.Splitter)
	assert.Equal(t, common.Address{}, d.Contract.RoyaltySplitter())
}

func TestDeployedContractsAreIndependent(t *testing.T) {
	f, err := NewFactory(deployerAddr, baseOptions())
	require.NoError(t, err)

	d1, err := f.DeployCreatorBlueprints(blueprint.Profile{Name: "A", Symbol: "A", Artist: artist1Addr}, nil)
	require.NoError(t, err)
	d2, err := f.DeployCreatorBlueprints(blueprint.Profile{Name: "B", Symbol: "B", Artist: artist2Addr}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Deployments())

	// Preparing one contract leaves the other untouched.
	cfg := sale.PrepareConfig{Artist: artist1Addr, Capacity: 10, Price: 1}
	require.NoError(t, d1.Contract.PrepareBlueprint(deployerAddr, cfg, feesplit.Config{}))

	_, err = d1.Contract.Blueprint()
	assert.NoError(t, err)
	_, err = d2.Contract.Blueprint()
	assert.ErrorIs(t, err, sale.ErrRecordNotFound)
}
