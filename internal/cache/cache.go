package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Key identifies one cached result set: what is cached and for whom.
type Key struct {
	Entity string
	UserID string
}

func (k Key) String() string {
	return k.Entity + ":" + k.UserID
}

// FetchFunc loads the value for a key from the backing store.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value      any
	stale      bool
	fetch      FetchFunc
	lastAccess time.Time
}

// Store is a per-(entity, user) read cache. A value is reused until its key
// is invalidated, and keys that are still being read are re-fetched in the
// background every refresh interval so server-side changes show up without a
// mutation. Concurrent fetches for the same key share one in-flight call.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	gen     map[Key]uint64
	group   singleflight.Group
	refresh time.Duration
	log     *zap.Logger

	done      chan struct{}
	closeOnce sync.Once
}

func New(refresh time.Duration, log *zap.Logger) *Store {
	s := &Store{
		entries: make(map[Key]*entry),
		gen:     make(map[Key]uint64),
		refresh: refresh,
		log:     log,
		done:    make(chan struct{}),
	}
	go s.refreshLoop()
	return s
}

// GetOrFetch returns the cached value for key, loading it with fetch when the
// entry is missing or invalidated. fetch also becomes the loader the
// background refresher uses for this key.
func (s *Store) GetOrFetch(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		e.lastAccess = time.Now()
		e.fetch = fetch
		if !e.stale {
			v := e.value
			s.mu.Unlock()
			return v, nil
		}
	}
	gen := s.gen[key]
	s.mu.Unlock()

	v, err, _ := s.group.Do(key.String(), func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	e := &entry{value: v, fetch: fetch, lastAccess: time.Now()}
	// An invalidation that raced the fetch wins: the value we just loaded may
	// predate the write, so it stays marked stale.
	if s.gen[key] != gen {
		e.stale = true
	}
	s.entries[key] = e
	s.mu.Unlock()

	return v, nil
}

// Invalidate marks the key stale so the next read re-fetches. Invalidating a
// key that is already stale (or absent) is a no-op.
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen[key]++
	if e, ok := s.entries[key]; ok {
		e.stale = true
	}
}

func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Store) refreshLoop() {
	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.refreshActive()
		}
	}
}

// refreshActive re-runs the stored fetch for every key read since the
// previous two ticks and drops the rest. A failed refresh keeps the previous
// value; the next explicit read retries.
func (s *Store) refreshActive() {
	type job struct {
		key   Key
		fetch FetchFunc
		gen   uint64
	}

	s.mu.Lock()
	cutoff := time.Now().Add(-2 * s.refresh)
	jobs := make([]job, 0, len(s.entries))
	for k, e := range s.entries {
		if e.lastAccess.Before(cutoff) {
			delete(s.entries, k)
			delete(s.gen, k)
			continue
		}
		jobs = append(jobs, job{key: k, fetch: e.fetch, gen: s.gen[k]})
	}
	s.mu.Unlock()

	for _, j := range jobs {
		ctx, cancel := context.WithTimeout(context.Background(), s.refresh)
		v, err := j.fetch(ctx)
		cancel()

		if err != nil {
			s.log.Warn("cache refresh failed",
				zap.String("key", j.key.String()),
				zap.Error(err))
			continue
		}

		s.mu.Lock()
		if e, ok := s.entries[j.key]; ok && s.gen[j.key] == j.gen {
			e.value = v
			e.stale = false
		}
		s.mu.Unlock()
	}
}
