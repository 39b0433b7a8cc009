package client

import (
	"context"
	"sync"
	"time"
)

// FetchFunc loads a fresh copy of a resource.
type FetchFunc func(ctx context.Context) (interface{}, error)

// Resource caches one fetched value with two staleness windows. Within
// FreshFor the cached value is served as-is. Between FreshFor and MaxAge
// the cached value is still served, but a background refresh is kicked
// off. Past MaxAge the caller blocks on a new fetch.
//
// Every accepted fetch bumps an internal generation counter; a refresh
// that finishes after Invalidate (or after a newer fetch started) is
// discarded so the cache never moves backwards.
type Resource struct {
	FreshFor time.Duration
	MaxAge   time.Duration

	fetch FetchFunc
	now   func() time.Time

	mu        sync.Mutex
	value     interface{}
	fetchedAt time.Time
	loaded    bool
	gen       uint64
	inflight  bool
}

// NewResource builds a resource around fetch. A zero FreshFor means every
// Get revalidates in the background; a zero MaxAge means the cached value
// never blocks a caller once loaded.
func NewResource(fetch FetchFunc, freshFor, maxAge time.Duration) *Resource {
	return &Resource{
		FreshFor: freshFor,
		MaxAge:   maxAge,
		fetch:    fetch,
		now:      time.Now,
	}
}

// Get returns the resource value, fetching or revalidating as the
// staleness windows dictate.
func (r *Resource) Get(ctx context.Context) (interface{}, error) {
	r.mu.Lock()
	if r.loaded {
		age := r.now().Sub(r.fetchedAt)
		if r.MaxAge <= 0 || age < r.MaxAge {
			v := r.value
			if age >= r.FreshFor && !r.inflight {
				r.inflight = true
				gen := r.gen
				go r.revalidate(gen)
			}
			r.mu.Unlock()
			return v, nil
		}
	}
	gen := r.gen
	r.mu.Unlock()

	v, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}
	r.store(gen, v)
	return v, nil
}

// Invalidate drops the cached value. In-flight refreshes started before
// the call are discarded when they land.
func (r *Resource) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	r.value = nil
	r.gen++
}

// Peek returns the cached value without triggering any fetch.
func (r *Resource) Peek() (interface{}, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, r.loaded
}

func (r *Resource) revalidate(gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	v, err := r.fetch(ctx)

	r.mu.Lock()
	r.inflight = false
	r.mu.Unlock()

	if err != nil {
		return // keep serving the stale value
	}
	r.store(gen, v)
}

// store installs v unless a newer generation superseded the fetch.
func (r *Resource) store(gen uint64, v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return
	}
	r.value = v
	r.fetchedAt = r.now()
	r.loaded = true
}
