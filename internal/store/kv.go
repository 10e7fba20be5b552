package store

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	pserrors "github.com/zhubert/switchboard/internal/errors"
)

// KV is a flat string-keyed byte store.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// bucketName holds every key; the store has no other buckets.
var bucketName = []byte("local")

// BoltKV is a KV backed by a single bucket in a bbolt file.
type BoltKV struct {
	db *bolt.DB
}

// OpenBolt opens or creates the bbolt file at path. It fails after one second
// if another process holds the file lock.
func OpenBolt(path string) (*BoltKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, pserrors.StoreOpenFailed(path, err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, pserrors.StoreOpenFailed(path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists(bucketName)
		return e
	})
	if err != nil {
		_ = db.Close()
		return nil, pserrors.StoreOpenFailed(path, err)
	}
	return &BoltKV{db: db}, nil
}

func (b *BoltKV) Get(key string) ([]byte, bool, error) {
	var out []byte
	found := false
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketName)
		if bkt == nil {
			return nil
		}
		v := bkt.Get([]byte(key))
		if v == nil {
			return nil
		}
		// v is only valid for the life of the transaction
		out = append([]byte(nil), v...)
		found = true
		return nil
	})
	if err != nil {
		return nil, false, pserrors.E(pserrors.Op("store.Get"), pserrors.KindStorage, err)
	}
	return out, found, nil
}

func (b *BoltKV) Set(key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bkt, e := tx.CreateBucketIfNotExists(bucketName)
		if e != nil {
			return e
		}
		return bkt.Put([]byte(key), value)
	})
	if err != nil {
		return pserrors.StoreWriteFailed(key, err)
	}
	return nil
}

func (b *BoltKV) Delete(key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketName)
		if bkt == nil {
			return nil
		}
		return bkt.Delete([]byte(key))
	})
	if err != nil {
		return pserrors.StoreWriteFailed(key, err)
	}
	return nil
}

func (b *BoltKV) Close() error {
	return b.db.Close()
}

// MemoryKV is an in-process KV. Nothing survives Close.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	return nil
}
