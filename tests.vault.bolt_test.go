package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/boltdb/bolt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestBoltVault returns a new instance of the bolt vault backed by
// a temporary file.
func newTestBoltVault() (*boltSessionVault, error) {
	f, err := os.CreateTemp("", "tmp.bolt.db-")
	if err != nil {
		return nil, err
	}
	f.Close()
	testConfig := &Config{
		Vault: VaultConfig{
			Kind:       VaultKindBolt,
			FilePath:   f.Name(),
			Timeout:    5 * time.Second,
			BucketName: "test.session",
		},
	}

	client, err := GetBoltDBClient(testConfig)

	return &boltSessionVault{
		logger: zap.NewNop(),
		client: client,
		config: &testConfig.Vault,
	}, err
}

// closeTestBoltVault closes the temporary vault and removes the underlying data file.
func (bv *boltSessionVault) closeTestBoltVault() error {
	defer os.Remove(bv.config.FilePath)
	return bv.Close()
}

// Ensure bolt vault can persist and restore a session.
func TestBoltVault_SaveLoad(t *testing.T) {
	bv, err := newTestBoltVault()
	require.NoError(t, err, "failed in creating a test bolt vault")
	defer bv.closeTestBoltVault()

	session := Session{
		ID:          7,
		Username:    "alice",
		Email:       "alice@bookshop.io",
		Roles:       []string{"USER"},
		AccessToken: "jwt.header.payload",
	}
	err = bv.Save(context.TODO(), session)
	assert.NoError(t, err)

	restored, err := bv.Load(context.TODO())
	assert.NoError(t, err)
	assert.Equal(t, session, restored)
}

// Ensure the legacy token entry is written alongside the session record.
func TestBoltVault_LegacyTokenEntry(t *testing.T) {
	bv, err := newTestBoltVault()
	require.NoError(t, err, "failed in creating a test bolt vault")
	defer bv.closeTestBoltVault()

	err = bv.Save(context.TODO(), Session{Username: "alice", AccessToken: "legacy-jwt"})
	require.NoError(t, err)

	err = bv.client.View(func(tx *bolt.Tx) error {
		token := tx.Bucket([]byte(bv.config.BucketName)).Get([]byte(LegacyTokenKey))
		assert.Equal(t, "legacy-jwt", string(token))
		return nil
	})
	assert.NoError(t, err)
}

// Ensure loading from an empty vault reports no stored session.
func TestBoltVault_LoadMissing(t *testing.T) {
	bv, err := newTestBoltVault()
	require.NoError(t, err, "failed in creating a test bolt vault")
	defer bv.closeTestBoltVault()

	_, err = bv.Load(context.TODO())
	assert.Equal(t, ErrNoStoredSession, err)
}

// Ensure delete clears both the session record and the legacy token entry.
func TestBoltVault_Delete(t *testing.T) {
	bv, err := newTestBoltVault()
	require.NoError(t, err, "failed in creating a test bolt vault")
	defer bv.closeTestBoltVault()

	err = bv.Save(context.TODO(), Session{Username: "alice", AccessToken: "jwt"})
	require.NoError(t, err)

	err = bv.Delete(context.TODO())
	assert.NoError(t, err)

	_, err = bv.Load(context.TODO())
	assert.Equal(t, ErrNoStoredSession, err)

	err = bv.client.View(func(tx *bolt.Tx) error {
		token := tx.Bucket([]byte(bv.config.BucketName)).Get([]byte(LegacyTokenKey))
		assert.Nil(t, token)
		return nil
	})
	assert.NoError(t, err)
}
