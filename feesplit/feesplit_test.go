package feesplit

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addr(seed byte) common.Address {
	var a common.Address
	for i := range a {
		a[i] = seed
	}
	return a
}

// --- Validate tests ---

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"empty config", Config{}, nil},
		{"single full share", Config{
			Recipients: []common.Address{addr(0x01)},
			BPS:        []uint32{10000},
		}, nil},
		{"sum below total", Config{
			Recipients: []common.Address{addr(0x01), addr(0x02)},
			BPS:        []uint32{1000, 2000},
		}, nil},
		{"length mismatch", Config{
			Recipients: []common.Address{addr(0x01)},
			BPS:        []uint32{1000, 9000},
		}, ErrLengthMismatch},
		{"sum exceeds 10000", Config{
			Recipients: []common.Address{addr(0x01), addr(0x02)},
			BPS:        []uint32{5000, 6000},
		}, ErrBPSExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// --- ComputeShares tests ---

func TestComputeShares_NoRemainder(t *testing.T) {
	platform := addr(0xFF)
	cfg := Config{
		Recipients: []common.Address{addr(0x0A), addr(0x0B)},
		BPS:        []uint32{1000, 9000},
	}

	payments, err := ComputeShares(10, cfg, platform)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	assert.Equal(t, Payment{To: addr(0x0A), Amount: 1}, payments[0])
	assert.Equal(t, Payment{To: addr(0x0B), Amount: 9}, payments[1])
}

func TestComputeShares_RemainderToPlatform(t *testing.T) {
	platform := addr(0xFF)
	cfg := Config{
		Recipients: []common.Address{addr(0x0A), addr(0x0B)},
		BPS:        []uint32{2500, 2500},
	}

	payments, err := ComputeShares(1000, cfg, platform)
	require.NoError(t, err)
	require.Len(t, payments, 3)

	assert.Equal(t, uint64(250), payments[0].Amount)
	assert.Equal(t, uint64(250), payments[1].Amount)
	assert.Equal(t, Payment{To: platform, Amount: 500}, payments[2])
}

func TestComputeShares_TruncationDust(t *testing.T) {
	platform := addr(0xFF)
	cfg := Config{
		Recipients: []common.Address{addr(0x0A), addr(0x0B), addr(0x0C)},
		BPS:        []uint32{3333, 3333, 3334},
	}

	// 100 * 3333 / 10000 = 33 (truncated), 100 * 3334 / 10000 = 33.
	payments, err := ComputeShares(100, cfg, platform)
	require.NoError(t, err)
	require.Len(t, payments, 4)

	var total uint64
	for _, p := range payments {
		total += p.Amount
	}
	assert.Equal(t, uint64(100), total, "value must be conserved exactly")
	assert.Equal(t, platform, payments[3].To)
	assert.Equal(t, uint64(1), payments[3].Amount)
}

func TestComputeShares_EmptyConfigAllToPlatform(t *testing.T) {
	platform := addr(0xFF)
	payments, err := ComputeShares(777, Config{}, platform)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, Payment{To: platform, Amount: 777}, payments[0])
}

func TestComputeShares_ZeroSharesOmitted(t *testing.T) {
	platform := addr(0xFF)
	cfg := Config{
		Recipients: []common.Address{addr(0x0A), addr(0x0B)},
		BPS:        []uint32{1, 9999},
	}

	// 5 * 1 / 10000 truncates to zero; that recipient is omitted.
	payments, err := ComputeShares(5, cfg, platform)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, addr(0x0B), payments[0].To)
	assert.Equal(t, uint64(4), payments[0].Amount)
	assert.Equal(t, Payment{To: platform, Amount: 1}, payments[1])
}

func TestComputeShares_ZeroPayment(t *testing.T) {
	_, err := ComputeShares(0, Config{}, addr(0xFF))
	assert.ErrorIs(t, err, ErrZeroPayment)
}

func TestComputeShares_InvalidConfig(t *testing.T) {
	cfg := Config{
		Recipients: []common.Address{addr(0x0A)},
		BPS:        []uint32{10001},
	}
	_, err := ComputeShares(100, cfg, addr(0xFF))
	assert.ErrorIs(t, err, ErrBPSExceeded)
}

// Conservation across a spread of totals and configurations.
func TestComputeShares_Conservation(t *testing.T) {
	platform := addr(0xFF)
	cfgs := []Config{
		{},
		{Recipients: []common.Address{addr(1)}, BPS: []uint32{10000}},
		{Recipients: []common.Address{addr(1), addr(2)}, BPS: []uint32{1000, 9000}},
		{Recipients: []common.Address{addr(1), addr(2), addr(3)}, BPS: []uint32{1, 2, 3}},
		{Recipients: []common.Address{addr(1), addr(2)}, BPS: []uint32{3333, 6666}},
	}
	totals := []uint64{1, 7, 99, 10000, 123456789, 1 << 62}

	for _, cfg := range cfgs {
		for _, total := range totals {
			payments, err := ComputeShares(total, cfg, platform)
			require.NoError(t, err)
			var sum uint64
			for _, p := range payments {
				require.NotZero(t, p.Amount)
				sum += p.Amount
			}
			require.Equal(t, total, sum, "total=%d cfg=%v", total, cfg.BPS)
		}
	}
}
