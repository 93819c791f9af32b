package controllers

import (
	"net/http"
	"time"

	"github.com/dcode-github/nestora/backend/identity"
	"github.com/dcode-github/nestora/backend/search"
	"github.com/dcode-github/nestora/backend/session"
	"github.com/dcode-github/nestora/backend/storage"
	"github.com/dcode-github/nestora/backend/wishlist"
	"github.com/redis/go-redis/v9"
)

type ContextKey string

const ClaimsKey = ContextKey("claims")

// Env carries the process-wide dependencies handlers close over.
type Env struct {
	Engine     *search.Engine
	Provider   identity.Provider
	SessionTTL time.Duration

	// SlotRedis, when set, keeps session and wishlist slots in redis
	// instead of cookies.
	SlotRedis *redis.Client
}

// client is one visitor's view of the stores for a single request.
type client struct {
	session  *session.Store
	wishlist *wishlist.Store
}

func (e *Env) slotsFor(w http.ResponseWriter, r *http.Request) storage.Store {
	if e.SlotRedis != nil {
		return storage.RedisStoreForRequest(w, r, e.SlotRedis)
	}
	return storage.NewCookieStore(w, r)
}

// clientFor wires the visitor's session and wishlist to their slots and
// restores whatever was persisted.
func (e *Env) clientFor(w http.ResponseWriter, r *http.Request) *client {
	slots := e.slotsFor(w, r)

	s := session.New(e.Provider, slots, e.SessionTTL)
	wl := wishlist.New(slots, e.SessionTTL)
	wl.Attach(s)
	s.Restore()

	return &client{session: s, wishlist: wl}
}
