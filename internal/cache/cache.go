// Package cache persists compiled instruction listings keyed by a hash
// of their source text, so re-compiling an unchanged file can skip the
// pipeline entirely. Backed by a single-file bbolt database.
package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/tauclang/tauc/internal/vm"
)

var bucketName = []byte("compile-cache")

// Cache wraps a bbolt database holding sourceHash -> gob-encoded
// instruction listing entries.
type Cache struct {
	db *bolt.DB
}

// Open creates or opens the database at path, ensuring the cache bucket
// exists.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: opening %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: initializing bucket: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database file.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Hash returns the cache key for a given source text.
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached listing for hash, if present.
func (c *Cache) Get(hash string) ([]vm.Insn, bool, error) {
	var raw []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(hash))
		if v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if raw == nil {
		return nil, false, nil
	}

	var insns []vm.Insn
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&insns); err != nil {
		return nil, false, fmt.Errorf("cache: decoding entry: %w", err)
	}
	return insns, true, nil
}

// Put stores insns under hash, overwriting any existing entry.
func (c *Cache) Put(hash string, insns []vm.Insn) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(insns); err != nil {
		return fmt.Errorf("cache: encoding entry: %w", err)
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(hash), buf.Bytes())
	})
}
