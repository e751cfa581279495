// Package cache is the export core's content-addressed record store: key =
// (specification, entity-id, upstream-last-updated); body = generated
// bytes; at-most-once regeneration per key. Concurrent misses on the same
// key coalesce through a singleflight.Group exactly as the Controller in
// the teacher pack's book-metadata caching service coalesces lookups for
// the same key.
package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Key identifies one cached record. A changed UpstreamLastUpdated yields a
// different key; the old entry is simply never looked up again and is
// reclaimed by the store's own eviction policy.
type Key struct {
	SpecificationID     string
	EntityID            string
	UpstreamLastUpdated string
}

func (k Key) string() string {
	return fmt.Sprintf("%s\x00%s\x00%s", k.SpecificationID, k.EntityID, k.UpstreamLastUpdated)
}

// QueryFunc fetches the Work(s) for key and runs the relevant generator,
// returning the generated bytes. It is the caller's responsibility to make
// QueryFunc deterministic for a fixed Work snapshot — the cache trusts
// this and never re-derives or double-checks the bytes it stores.
type QueryFunc func(ctx context.Context) ([]byte, error)

// Cache is the export cache's public contract. The in-process Memory
// type is the only implementation in this tree.
type Cache interface {
	// LoadOrGenerate probes the cache; on hit it returns the stored bytes;
	// on miss it invokes query at most once per key across all concurrent
	// callers sharing that key, stores the result on success, and returns
	// it — or surfaces query's error to every waiter without storing
	// anything.
	LoadOrGenerate(ctx context.Context, key Key, query QueryFunc) ([]byte, error)
}

// Memory is an in-process Cache backed by a bounded LRU of generated
// bytes and a singleflight.Group that coalesces concurrent misses for the
// same key. The serve command always uses it (CACHE_URL is not
// consulted), and it is the implementation exercised by the test suite.
type Memory struct {
	body  *lru.Cache[string, []byte]
	group singleflight.Group // coalesce lookups for the same key
}

// NewMemory builds a Memory cache bounded to capacity entries.
func NewMemory(capacity int) (*Memory, error) {
	body, err := lru.New[string, []byte](capacity)
	if err != nil {
		return nil, err
	}
	return &Memory{body: body}, nil
}

func (m *Memory) LoadOrGenerate(ctx context.Context, key Key, query QueryFunc) ([]byte, error) {
	k := key.string()
	if body, ok := m.body.Get(k); ok {
		return body, nil
	}

	v, err, _ := m.group.Do(k, func() (any, error) {
		body, err := query(ctx)
		if err != nil {
			return nil, err
		}
		m.body.Add(k, body)
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
