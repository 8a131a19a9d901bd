// Package redisstore publishes game log snapshots to Redis and loads them
// back as a gamelog.Source, so the API can start from a table built by a
// separate ingest run.
package redisstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/albapepper/futurehoops/internal/gamelog"
)

// ErrNoSnapshot is returned when the snapshot key does not exist.
var ErrNoSnapshot = errors.New("no snapshot published")

// Client is the subset of redis.Cmdable the store needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Store reads and writes one snapshot key.
type Store struct {
	client Client
	key    string
	ttl    time.Duration
}

// New creates a snapshot store. A zero ttl keeps the key forever.
func New(client Client, key string, ttl time.Duration) *Store {
	return &Store{client: client, key: key, ttl: ttl}
}

// Connect parses a redis:// URL and verifies the server is reachable.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Publish writes the store's snapshot and returns its size in bytes.
func (s *Store) Publish(ctx context.Context, logs *gamelog.Store) (int, error) {
	var buf bytes.Buffer
	if err := logs.Encode(&buf); err != nil {
		return 0, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, buf.Bytes(), s.ttl).Err(); err != nil {
		return 0, fmt.Errorf("write snapshot %s: %w", s.key, err)
	}
	return buf.Len(), nil
}

// Load implements gamelog.Source.
func (s *Store) Load(ctx context.Context) ([]gamelog.Player, []gamelog.Entry, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil, fmt.Errorf("%s: %w", s.key, ErrNoSnapshot)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read snapshot %s: %w", s.key, err)
	}

	snap, err := gamelog.DecodeSnapshot(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	return snap.Load(ctx)
}
