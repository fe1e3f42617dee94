package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// HSessionVault is the redis hash holding the persisted session entries.
const HSessionVault string = "storefront.session"

type redisSessionVault struct {
	logger *zap.Logger
	client *redis.Client
}

// NewRedisSessionVault provides an instance of redis-based session vault.
func NewRedisSessionVault(logger *zap.Logger, client *redis.Client) SessionVault {
	return &redisSessionVault{
		logger: logger,
		client: client,
	}
}

// GetRedisClient provides a ready to use redis client.
func GetRedisClient(config *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", config.Redis.Host, config.Redis.Port),
		DialTimeout:  config.Redis.DialTimeout,
		ReadTimeout:  config.Redis.ReadTimeout,
		WriteTimeout: config.Redis.WriteTimeout,
		PoolSize:     config.Redis.PoolSize,
		PoolTimeout:  config.Redis.PoolTimeout,
		Password:     config.Redis.Password,
		Username:     config.Redis.Username,
		DB:           config.Redis.DatabaseIndex,
	})

	// test connection.
	if pong, err := client.Ping(context.Background()).Result(); pong != "PONG" || err != nil {
		return client, fmt.Errorf("test connection failed: %v", err)
	}
	return client, nil
}

// Save persists the session record and the legacy token entry.
func (rv *redisSessionVault) Save(ctx context.Context, session Session) error {
	sessionBytes, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return rv.client.HSet(ctx, HSessionVault,
		SessionRecordKey, sessionBytes,
		LegacyTokenKey, session.AccessToken,
	).Err()
}

// Load retrieves the persisted session record if any.
func (rv *redisSessionVault) Load(ctx context.Context) (Session, error) {
	var session Session
	sessionJSONString, err := rv.client.HGet(ctx, HSessionVault, SessionRecordKey).Result()
	if err == redis.Nil {
		return session, ErrNoStoredSession
	}
	if err != nil {
		return session, err
	}
	err = json.Unmarshal([]byte(sessionJSONString), &session)
	return session, err
}

// Delete removes the session record and the legacy token entry together.
func (rv *redisSessionVault) Delete(ctx context.Context) error {
	return rv.client.HDel(ctx, HSessionVault, SessionRecordKey, LegacyTokenKey).Err()
}
