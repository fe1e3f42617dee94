package main

import (
	"context"
	"net"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func startRedisDockerContainer(t *testing.T) (string, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Failed to start Dockertest: %+v", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("Could not connect to Docker: %+v", err)
	}

	resource, err := pool.Run("redis", "7.0.10-alpine", nil)
	if err != nil {
		t.Fatalf("Failed to start redis: %+v", err)
	}

	// build address the container is listening on
	addr := net.JoinHostPort("localhost", resource.GetPort("6379/tcp"))

	// ensure to wait for the container to be ready
	err = pool.Retry(func() error {
		var e error
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()

		e = client.Ping(context.Background()).Err()
		return e
	})

	if err != nil {
		t.Fatalf("Failed to ping Redis: %+v", err)
	}

	destroyFunc := func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Failed to purge resource: %+v", err)
		}
	}

	return addr, destroyFunc
}

func TestRedisVault(t *testing.T) {
	addr, destroyFunc := startRedisDockerContainer(t)
	defer destroyFunc()
	rv := NewRedisSessionVault(zap.NewNop(), redis.NewClient(&redis.Options{Addr: addr}))

	testSession := Session{
		ID:          12,
		Username:    "bob",
		Email:       "bob@bookshop.io",
		Roles:       []string{"USER", "ADMIN"},
		AccessToken: "jwt.redis.test",
	}

	t.Run("Load Missing Session", func(t *testing.T) {
		// ensures restoring from an empty vault fails.
		session, err := rv.Load(context.Background())
		assert.Equal(t, ErrNoStoredSession, err)
		assert.Equal(t, Session{}, session)
	})

	t.Run("Save Session", func(t *testing.T) {
		// ensures we can persist a session record.
		err := rv.Save(context.Background(), testSession)
		assert.NoError(t, err)
	})

	t.Run("Load Session", func(t *testing.T) {
		// ensures we can restore the persisted session.
		session, err := rv.Load(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, testSession, session)
	})

	t.Run("Delete Session", func(t *testing.T) {
		// ensures purging clears the record and the legacy token.
		err := rv.Delete(context.Background())
		assert.NoError(t, err)
		_, err = rv.Load(context.Background())
		assert.Equal(t, ErrNoStoredSession, err)
	})
}
