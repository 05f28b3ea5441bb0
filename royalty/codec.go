package royalty

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	splitterHeaderSize = 12 // total_received(8) + num_payees(4)
	splitterPayeeSize  = 40 // address(20) + bps(4) + pending(8) + released(8)
)

// SerializeSplitter encodes a splitter's full state to binary format.
func SerializeSplitter(s *Splitter) ([]byte, error) {
	if len(s.payees) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d payees", ErrTooManyPayees, len(s.payees))
	}
	buf := make([]byte, splitterHeaderSize+splitterPayeeSize*len(s.payees))
	offset := 0

	binary.BigEndian.PutUint64(buf[offset:offset+8], s.totalReceived)
	offset += 8

	binary.BigEndian.PutUint32(buf[offset:offset+4], uint32(len(s.payees)))
	offset += 4

	for _, p := range s.payees {
		copy(buf[offset:offset+20], p.Account[:])
		offset += 20
		binary.BigEndian.PutUint32(buf[offset:offset+4], p.BPS)
		offset += 4
		binary.BigEndian.PutUint64(buf[offset:offset+8], s.pending[p.Account])
		offset += 8
		binary.BigEndian.PutUint64(buf[offset:offset+8], s.released[p.Account])
		offset += 8
	}
	return buf, nil
}

// DeserializeSplitter decodes binary data into a splitter. The payee list is
// re-validated, so corrupt data cannot yield a splitter whose shares do not
// cover the whole payment.
func DeserializeSplitter(data []byte) (*Splitter, error) {
	if len(data) < splitterHeaderSize {
		return nil, fmt.Errorf("%w: too short (%d bytes)", ErrInvalidSplitterData, len(data))
	}
	offset := 0

	totalReceived := binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8

	numPayees := int(binary.BigEndian.Uint32(data[offset : offset+4]))
	offset += 4

	expectedSize := splitterHeaderSize + splitterPayeeSize*numPayees
	if len(data) != expectedSize {
		return nil, fmt.Errorf("%w: expected %d bytes for %d payees, got %d",
			ErrInvalidSplitterData, expectedSize, numPayees, len(data))
	}

	payees := make([]Payee, numPayees)
	pending := make([]uint64, numPayees)
	released := make([]uint64, numPayees)
	for i := 0; i < numPayees; i++ {
		copy(payees[i].Account[:], data[offset:offset+20])
		offset += 20
		payees[i].BPS = binary.BigEndian.Uint32(data[offset : offset+4])
		offset += 4
		pending[i] = binary.BigEndian.Uint64(data[offset : offset+8])
		offset += 8
		released[i] = binary.BigEndian.Uint64(data[offset : offset+8])
		offset += 8
	}

	s, err := NewSplitter(Config{Payees: payees})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSplitterData, err)
	}
	s.totalReceived = totalReceived
	for i, p := range payees {
		s.pending[p.Account] = pending[i]
		s.released[p.Account] = released[i]
	}
	return s, nil
}
