package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"
	"go.uber.org/zap"
)

type boltSessionVault struct {
	logger *zap.Logger
	client *bolt.DB
	config *VaultConfig
}

// GetBoltDBClient setup the database and the bucket then provides a ready to use client.
func GetBoltDBClient(config *Config) (*bolt.DB, error) {
	db, err := bolt.Open(config.Vault.FilePath, 0o600, &bolt.Options{Timeout: config.Vault.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open the database, %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, errB := tx.CreateBucketIfNotExists([]byte(config.Vault.BucketName)); errB != nil {
			return fmt.Errorf("failed to create %s bucket: %v", config.Vault.BucketName, errB)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up bucket: %v", err)
	}
	return db, nil
}

// NewBoltSessionVault provides an instance of bolt-based session vault.
func NewBoltSessionVault(logger *zap.Logger, vaultConfig *VaultConfig, client *bolt.DB) SessionVault {
	return &boltSessionVault{
		logger: logger,
		client: client,
		config: vaultConfig,
	}
}

// Close shuts down the bolt-based session vault.
func (bv *boltSessionVault) Close() error {
	return bv.client.Close()
}

// Save persists the session record and the legacy token entry.
func (bv *boltSessionVault) Save(_ context.Context, session Session) error {
	sessionBytes, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return bv.client.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bv.config.BucketName))
		if err := bucket.Put([]byte(SessionRecordKey), sessionBytes); err != nil {
			return err
		}
		return bucket.Put([]byte(LegacyTokenKey), []byte(session.AccessToken))
	})
}

// Load retrieves the persisted session record if any.
func (bv *boltSessionVault) Load(_ context.Context) (Session, error) {
	var session Session
	// initialize a readable transaction.
	tx, err := bv.client.Begin(false)
	if err != nil {
		return session, err
	}
	defer tx.Rollback()

	result := tx.Bucket([]byte(bv.config.BucketName)).Get([]byte(SessionRecordKey))
	if result == nil {
		return session, ErrNoStoredSession
	}
	err = json.Unmarshal(result, &session)
	return session, err
}

// Delete removes the session record and the legacy token entry together.
func (bv *boltSessionVault) Delete(_ context.Context) error {
	return bv.client.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bv.config.BucketName))
		if err := bucket.Delete([]byte(SessionRecordKey)); err != nil {
			return err
		}
		return bucket.Delete([]byte(LegacyTokenKey))
	})
}
