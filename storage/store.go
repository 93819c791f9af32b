// Package storage provides the durable key/value slots that sessions and
// wishlists persist into. Every slot expires on its own.
package storage

import "time"

// Store reads never fail: a missing, expired or unreadable slot is
// simply absent.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
	Remove(key string)
}
