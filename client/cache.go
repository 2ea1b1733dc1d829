package client

import (
	"time"

	"github.com/dgraph-io/badger/v4"
)

// QueryCache is the keyed store behind the data-fetching queries. Entries
// are written with a TTL: expiry is the staleness window, deletion is
// explicit invalidation. It is backed by an in-memory Badger instance and
// safe for concurrent use.
type QueryCache struct {
	db *badger.DB
}

// NewQueryCache opens an in-memory cache.
func NewQueryCache() (*QueryCache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &QueryCache{db: db}, nil
}

// Get returns the cached value for key, or false when the key is absent
// or its staleness window has passed.
func (qc *QueryCache) Get(key string) ([]byte, bool) {
	var value []byte
	err := qc.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set stores value under key for the given staleness window.
func (qc *QueryCache) Set(key string, value []byte, ttl time.Duration) error {
	return qc.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

// Invalidate removes the entry for key so the next read refetches.
func (qc *QueryCache) Invalidate(key string) error {
	return qc.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close releases the cache.
func (qc *QueryCache) Close() error {
	return qc.db.Close()
}
