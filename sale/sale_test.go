package sale

import (
	"testing"

	"github.com/asyncart/blueprints-go/feesplit"
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

func preparedRecord(t *testing.T, now uint64) *Record {
	t.Helper()
	r := &Record{}
	err := r.Prepare(PrepareConfig{
		Artist:       addr(0xA1),
		Capacity:     1000,
		Price:        1,
		MetadataHash: "fbejgnvnveorjgnt",
		BaseTokenURI: "https://randomUri/",
	}, now)
	require.NoError(t, err)
	r.TokenIndexEnd = r.TokenIndex + 1000
	return r
}

// --- Prepare ---

func TestPrepare(t *testing.T) {
	const now = 100

	t.Run("from unprepared", func(t *testing.T) {
		r := preparedRecord(t, now)
		assert.Equal(t, StatePrepared, r.State)
		assert.Equal(t, uint64(1000), r.Capacity)
	})

	t.Run("re-prepare while prepared", func(t *testing.T) {
		r := preparedRecord(t, now)
		err := r.Prepare(PrepareConfig{Artist: addr(0xA2), Capacity: 50, Price: 3}, now)
		require.NoError(t, err)
		assert.Equal(t, addr(0xA2), r.Artist)
		assert.Equal(t, uint64(50), r.Capacity)
	})

	t.Run("zero capacity", func(t *testing.T) {
		r := &Record{}
		err := r.Prepare(PrepareConfig{Capacity: 0}, now)
		assert.ErrorIs(t, err, ErrZeroCapacity)
	})

	t.Run("deadline in the past", func(t *testing.T) {
		r := &Record{}
		err := r.Prepare(PrepareConfig{Capacity: 10, SaleEndTimestamp: now - 1}, now)
		assert.ErrorIs(t, err, ErrSaleEnded)
	})

	t.Run("re-prepare while started", func(t *testing.T) {
		r := preparedRecord(t, now)
		require.NoError(t, r.BeginSale(now))
		err := r.Prepare(PrepareConfig{Capacity: 10}, now)
		assert.ErrorIs(t, err, ErrAlreadyStarted)
	})

	t.Run("re-prepare while paused", func(t *testing.T) {
		r := preparedRecord(t, now)
		require.NoError(t, r.BeginSale(now))
		require.NoError(t, r.PauseSale(now))
		err := r.Prepare(PrepareConfig{Capacity: 10}, now)
		assert.ErrorIs(t, err, ErrAlreadyStarted)
	})
}

// --- Transitions ---

func TestTransitions(t *testing.T) {
	const now = 100

	t.Run("begin only from prepared", func(t *testing.T) {
		r := &Record{}
		assert.ErrorIs(t, r.BeginSale(now), ErrNotPrepared)

		r = preparedRecord(t, now)
		require.NoError(t, r.BeginSale(now))
		assert.Equal(t, StateStarted, r.State)
		assert.ErrorIs(t, r.BeginSale(now), ErrNotPrepared)
	})

	t.Run("pause only from started", func(t *testing.T) {
		r := preparedRecord(t, now)
		assert.ErrorIs(t, r.PauseSale(now), ErrSaleNotStarted)

		require.NoError(t, r.BeginSale(now))
		require.NoError(t, r.PauseSale(now))
		assert.Equal(t, StatePaused, r.State)
		assert.ErrorIs(t, r.PauseSale(now), ErrSaleNotStarted)
	})

	t.Run("unpause only from paused", func(t *testing.T) {
		r := preparedRecord(t, now)
		require.NoError(t, r.BeginSale(now))
		assert.ErrorIs(t, r.UnpauseSale(now), ErrSaleNotPaused)

		require.NoError(t, r.PauseSale(now))
		require.NoError(t, r.UnpauseSale(now))
		assert.Equal(t, StateStarted, r.State)
	})

	t.Run("deadline gates transitions", func(t *testing.T) {
		r := &Record{}
		require.NoError(t, r.Prepare(PrepareConfig{Capacity: 10, SaleEndTimestamp: now + 50}, now))
		require.NoError(t, r.BeginSale(now))

		assert.ErrorIs(t, r.PauseSale(now+51), ErrSaleEnded)

		require.NoError(t, r.PauseSale(now+10))
		assert.ErrorIs(t, r.UnpauseSale(now+51), ErrSaleEnded)
	})
}

func TestPurchasable(t *testing.T) {
	const now = 100
	r := preparedRecord(t, now)
	assert.ErrorIs(t, r.Purchasable(now), ErrSaleNotStarted)

	require.NoError(t, r.BeginSale(now))
	assert.NoError(t, r.Purchasable(now))

	require.NoError(t, r.PauseSale(now))
	assert.ErrorIs(t, r.Purchasable(now), ErrSaleNotStarted)

	require.NoError(t, r.UnpauseSale(now))
	r.SaleEndTimestamp = now + 5
	assert.NoError(t, r.Purchasable(now+5))
	assert.ErrorIs(t, r.Purchasable(now+6), ErrSaleEnded)
}

func TestReservedMintable(t *testing.T) {
	const now = 100
	r := preparedRecord(t, now)

	// Presale (prepared) and public sale (started) are both eligible.
	assert.NoError(t, r.ReservedMintable(now))
	require.NoError(t, r.BeginSale(now))
	assert.NoError(t, r.ReservedMintable(now))

	// Paused is not.
	require.NoError(t, r.PauseSale(now))
	assert.ErrorIs(t, r.ReservedMintable(now), ErrNotMintable)

	require.NoError(t, r.UnpauseSale(now))
	r.SaleEndTimestamp = now + 5
	assert.ErrorIs(t, r.ReservedMintable(now+6), ErrSaleEnded)
}

// --- Consume ---

func TestConsume(t *testing.T) {
	const now = 100
	r := preparedRecord(t, now)
	require.NoError(t, r.BeginSale(now))

	first, err := r.Consume(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), first)
	assert.Equal(t, uint64(10), r.TokenIndex)
	assert.Equal(t, uint64(990), r.Capacity)

	first, err = r.Consume(990)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), first)
	assert.Zero(t, r.Capacity)

	_, err = r.Consume(1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = r.Consume(0)
	assert.ErrorIs(t, err, ErrZeroQuantity)
}

func TestConsume_RangeBound(t *testing.T) {
	r := &Record{Capacity: 100, TokenIndex: 40, TokenIndexEnd: 50}
	_, err := r.Consume(11)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	first, err := r.Consume(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), first)
	assert.Equal(t, uint64(50), r.TokenIndex)
}

// --- Codec ---

func codecRecord() *Record {
	return &Record{
		Artist:        addr(0xA1),
		Capacity:      12345,
		Price:         1_000_000,
		CurrencyToken: addr(0xC0),
		AllowlistRoot: common.Hash{0x01, 0x02},
		TokenIndex:    77,
		TokenIndexEnd: 10077,

		ArtistMintAllocation:   17,
		PlatformMintAllocation: 15,
		MaxPurchaseAmount:      20,
		SaleEndTimestamp:       1_900_000_000,

		State: StateStarted,
		Fees: feesplit.Config{
			Recipients: []common.Address{addr(0x0A), addr(0x0B)},
			BPS:        []uint32{1000, 9000},
		},

		BaseTokenURI: "https://randomUri/",
		URILocked:    true,
		MetadataHash: "fbejgnvnveorjgnt",
		Seed:         "randomSeedHash",
	}
}

func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  *Record
	}{
		{"full record", codecRecord()},
		{"zero record", &Record{}},
		{"no fees", &Record{Artist: addr(0x01), Capacity: 5, State: StatePrepared}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeRecord(tt.rec)
			require.NoError(t, err)
			decoded, err := DecodeRecord(data)
			require.NoError(t, err)
			assert.Equal(t, tt.rec, decoded)
		})
	}
}

func TestDecodeRecord_Truncated(t *testing.T) {
	data, err := EncodeRecord(codecRecord())
	require.NoError(t, err)

	for _, cut := range []int{1, recordFixedSize, len(data) - 1} {
		_, err := DecodeRecord(data[:cut])
		assert.ErrorIs(t, err, ErrInvalidRecordData, "cut=%d", cut)
	}
}

func TestEncodeRecord_Nil(t *testing.T) {
	_, err := EncodeRecord(nil)
	assert.ErrorIs(t, err, ErrNilRecord)
}

// --- Stores ---

func testStore(t *testing.T, s Store) {
	t.Helper()

	_, err := s.Get(0)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	rec := codecRecord()
	require.NoError(t, s.Put(0, rec))
	require.NoError(t, s.Put(7, &Record{Artist: addr(0x02), Capacity: 3}))

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	// Get hands out a copy: mutating it must not leak into the store.
	got.Capacity = 1
	again, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), again.Capacity)

	has, err := s.Has(7)
	require.NoError(t, err)
	assert.True(t, has)
	has, err = s.Has(99)
	require.NoError(t, err)
	assert.False(t, has)

	ids, err := s.Editions()
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{0, 7}, ids)
}

func TestMemStore(t *testing.T) {
	testStore(t, NewMemStore())
}

func TestBoltStore(t *testing.T) {
	s, err := OpenBoltStore(t.TempDir() + "/sale.db")
	require.NoError(t, err)
	defer s.Close()
	testStore(t, s)
}
