// Package cache provides the byte cache behind the risk-monitor batch
// endpoint: an in-process TTL map by default, Redis when configured, both
// behind one interface so handlers never care which is wired.
package cache

import "time"

// BytesCache stores opaque payloads under string keys with a TTL.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
