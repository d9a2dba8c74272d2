// Package query is the keyed async cache between the UI and the API
// client: per-key cached responses with staleness, de-duplication of
// concurrent fetches, and forced reloads for the refresh control.
package query

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL is how long a cached response is served without
	// refetching.
	DefaultTTL = time.Minute

	defaultMaxEntries = 64
)

// FetchFunc produces the value for a key.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	data      any
	fetchedAt time.Time
}

// Store caches fetch results by key. Errors are never cached, so a
// failed section retries on its next load.
type Store struct {
	ttl time.Duration

	mu      sync.Mutex
	entries *lru.Cache[string, entry]
	group   singleflight.Group
}

// NewStore builds a store. Non-positive ttl or maxEntries fall back to
// the defaults.
func NewStore(ttl time.Duration, maxEntries int) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	entries, _ := lru.New[string, entry](maxEntries)
	return &Store{ttl: ttl, entries: entries}
}

// Load returns the cached value for key when it is still fresh,
// otherwise fetches. Concurrent loads of the same key collapse into a
// single fetch.
func (s *Store) Load(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries.Get(key); ok && time.Since(e.fetchedAt) < s.ttl {
		s.mu.Unlock()
		return e.data, nil
	}
	s.mu.Unlock()

	return s.fetch(ctx, key, fetch)
}

// Reload fetches regardless of freshness and replaces the cached
// value. The manual refresh control goes through here.
func (s *Store) Reload(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	return s.fetch(ctx, key, fetch)
}

// Invalidate drops the cached value for key.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries.Remove(key)
}

func (s *Store) fetch(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	// The winning caller's context drives the request for everyone
	// collapsed onto this key.
	data, err, _ := s.group.Do(key, func() (any, error) {
		data, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.entries.Add(key, entry{data: data, fetchedAt: time.Now()})
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Load is the typed wrapper over Store.Load.
func Load[T any](s *Store, ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	return typed[T](s.Load(ctx, key, wrap(fetch)))
}

// Reload is the typed wrapper over Store.Reload.
func Reload[T any](s *Store, ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	return typed[T](s.Reload(ctx, key, wrap(fetch)))
}

func wrap[T any](fetch func(ctx context.Context) (T, error)) FetchFunc {
	return func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}
}

func typed[T any](v any, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
