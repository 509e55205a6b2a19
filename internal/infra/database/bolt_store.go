package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var sessionBucket = []byte("Session")

// BoltTokenStore is the default durable storage: a single bbolt file in the
// console data directory.
type BoltTokenStore struct {
	db *bbolt.DB
}

func OpenBoltTokenStore(dataDir string) (*BoltTokenStore, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := bbolt.Open(filepath.Join(dataDir, "farmareach.db"), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create session bucket: %w", err)
	}

	return &BoltTokenStore{db: db}, nil
}

func (s *BoltTokenStore) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(sessionBucket).Get([]byte(TokenKey)); v != nil {
			token = string(v)
		}
		return nil
	})
	return token, err
}

func (s *BoltTokenStore) Set(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionBucket).Put([]byte(TokenKey), []byte(token))
	})
}

func (s *BoltTokenStore) Delete(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete([]byte(TokenKey))
	})
}

func (s *BoltTokenStore) Close() error {
	return s.db.Close()
}
