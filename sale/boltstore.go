package sale

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketRecords = []byte("sale_records")

// BoltStore persists sale records in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("sale: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("sale: open bolt db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRecords)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sale: create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// editionKey encodes an edition id as an 8-byte big-endian key for sorted
// storage.
func editionKey(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}

// Put stores or replaces the record for an edition.
func (s *BoltStore) Put(editionID uint64, rec *Record) error {
	data, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketRecords).Put(editionKey(editionID), data); err != nil {
			return fmt.Errorf("boltstore: put record: %w", err)
		}
		return nil
	})
}

// Get retrieves a copy of the record for an edition.
func (s *BoltStore) Get(editionID uint64) (*Record, error) {
	var rec *Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRecords).Get(editionKey(editionID))
		if data == nil {
			return ErrRecordNotFound
		}
		var err error
		rec, err = DecodeRecord(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Has reports whether a record exists for an edition.
func (s *BoltStore) Has(editionID uint64) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketRecords).Get(editionKey(editionID)) != nil
		return nil
	})
	return found, err
}

// Editions returns all edition ids with a stored record, in ascending order.
func (s *BoltStore) Editions() ([]uint64, error) {
	var ids []uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).ForEach(func(k, _ []byte) error {
			if len(k) != 8 {
				return fmt.Errorf("%w: malformed edition key", ErrInvalidRecordData)
			}
			ids = append(ids, binary.BigEndian.Uint64(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
