package sale

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/ethereum/go-ethereum/common"
)

const (
	recordFixedSize = 20 + 8 + 8 + 20 + 32 + 8 + 8 + 8 + 8 + 8 + 8 + 1 + 1
	feeEntrySize    = 20 + 4 // recipient(20) + bps(4)
)

// EncodeRecord serializes a record to its binary storage format: the fixed
// fields in order, the fee entry list, then the three length-prefixed strings
// (metadata hash, base token URI, seed).
func EncodeRecord(r *Record) ([]byte, error) {
	if r == nil {
		return nil, ErrNilRecord
	}
	if len(r.Fees.Recipients) != len(r.Fees.BPS) {
		return nil, fmt.Errorf("%w: %d recipients, %d bps", feesplit.ErrLengthMismatch,
			len(r.Fees.Recipients), len(r.Fees.BPS))
	}
	for _, s := range []string{r.MetadataHash, r.BaseTokenURI, r.Seed} {
		if len(s) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: string field too long (%d bytes)", ErrInvalidRecordData, len(s))
		}
	}

	size := recordFixedSize + 4 + feeEntrySize*len(r.Fees.Recipients) +
		2 + len(r.MetadataHash) + 2 + len(r.BaseTokenURI) + 2 + len(r.Seed)
	buf := make([]byte, size)
	offset := 0

	copy(buf[offset:], r.Artist[:])
	offset += 20
	binary.BigEndian.PutUint64(buf[offset:], r.Capacity)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], r.Price)
	offset += 8
	copy(buf[offset:], r.CurrencyToken[:])
	offset += 20
	copy(buf[offset:], r.AllowlistRoot[:])
	offset += 32
	binary.BigEndian.PutUint64(buf[offset:], r.TokenIndex)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], r.TokenIndexEnd)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], r.ArtistMintAllocation)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], r.PlatformMintAllocation)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], r.MaxPurchaseAmount)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], r.SaleEndTimestamp)
	offset += 8
	buf[offset] = byte(r.State)
	offset++
	if r.URILocked {
		buf[offset] = 1
	}
	offset++

	binary.BigEndian.PutUint32(buf[offset:], uint32(len(r.Fees.Recipients)))
	offset += 4
	for i, recipient := range r.Fees.Recipients {
		copy(buf[offset:], recipient[:])
		offset += 20
		binary.BigEndian.PutUint32(buf[offset:], r.Fees.BPS[i])
		offset += 4
	}

	for _, s := range []string{r.MetadataHash, r.BaseTokenURI, r.Seed} {
		binary.BigEndian.PutUint16(buf[offset:], uint16(len(s)))
		offset += 2
		copy(buf[offset:], s)
		offset += len(s)
	}
	return buf, nil
}

// DecodeRecord deserializes a record from its binary storage format.
func DecodeRecord(data []byte) (*Record, error) {
	if len(data) < recordFixedSize+4 {
		return nil, fmt.Errorf("%w: too short (%d bytes)", ErrInvalidRecordData, len(data))
	}
	r := &Record{}
	offset := 0

	copy(r.Artist[:], data[offset:])
	offset += 20
	r.Capacity = binary.BigEndian.Uint64(data[offset:])
	offset += 8
	r.Price = binary.BigEndian.Uint64(data[offset:])
	offset += 8
	copy(r.CurrencyToken[:], data[offset:])
	offset += 20
	copy(r.AllowlistRoot[:], data[offset:])
	offset += 32
	r.TokenIndex = binary.BigEndian.Uint64(data[offset:])
	offset += 8
	r.TokenIndexEnd = binary.BigEndian.Uint64(data[offset:])
	offset += 8
	r.ArtistMintAllocation = binary.BigEndian.Uint64(data[offset:])
	offset += 8
	r.PlatformMintAllocation = binary.BigEndian.Uint64(data[offset:])
	offset += 8
	r.MaxPurchaseAmount = binary.BigEndian.Uint64(data[offset:])
	offset += 8
	r.SaleEndTimestamp = binary.BigEndian.Uint64(data[offset:])
	offset += 8
	r.State = State(data[offset])
	offset++
	r.URILocked = data[offset] == 1
	offset++

	numFees := int(binary.BigEndian.Uint32(data[offset:]))
	offset += 4
	if len(data) < offset+feeEntrySize*numFees {
		return nil, fmt.Errorf("%w: truncated fee entries (%d declared)", ErrInvalidRecordData, numFees)
	}
	if numFees > 0 {
		r.Fees.Recipients = make([]common.Address, numFees)
		r.Fees.BPS = make([]uint32, numFees)
		for i := 0; i < numFees; i++ {
			copy(r.Fees.Recipients[i][:], data[offset:])
			offset += 20
			r.Fees.BPS[i] = binary.BigEndian.Uint32(data[offset:])
			offset += 4
		}
	}

	for _, dst := range []*string{&r.MetadataHash, &r.BaseTokenURI, &r.Seed} {
		if len(data) < offset+2 {
			return nil, fmt.Errorf("%w: truncated string length", ErrInvalidRecordData)
		}
		n := int(binary.BigEndian.Uint16(data[offset:]))
		offset += 2
		if len(data) < offset+n {
			return nil, fmt.Errorf("%w: truncated string (%d declared)", ErrInvalidRecordData, n)
		}
		*dst = string(data[offset : offset+n])
		offset += n
	}
	return r, nil
}
