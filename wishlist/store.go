// Package wishlist keeps the signed-in visitor's saved listings. It is
// empty and read-only while the session is anonymous.
package wishlist

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/session"
	"github.com/dcode-github/nestora/backend/storage"
	"github.com/dcode-github/nestora/backend/utils"
)

// SlotName is shared by every identity using the same storage. Signing
// in as someone else reloads whatever the slot holds.
const SlotName = "real_Nestora_wishlist"

var ErrAuthRequired = errors.New("authentication required")

type Store struct {
	slots storage.Store
	ttl   time.Duration

	mu            sync.RWMutex
	authenticated bool
	items         []models.Property
}

// New builds an empty, anonymous store. A non-positive ttl uses the
// session default.
func New(slots storage.Store, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	return &Store{slots: slots, ttl: ttl}
}

// Attach follows s: Authenticated reloads from storage, Anonymous clears
// the working set without touching storage. It also applies s's current
// state right away.
func (w *Store) Attach(s *session.Store) (detach func()) {
	detach = s.Subscribe(w.onSessionEvent)
	if id, ok := s.Identity(); ok {
		w.onSessionEvent(session.Event{State: session.Authenticated, Identity: &id})
	}
	return detach
}

func (w *Store) onSessionEvent(e session.Event) {
	switch e.State {
	case session.Authenticated:
		w.reload()
	case session.Anonymous:
		w.mu.Lock()
		w.authenticated = false
		w.items = nil
		w.mu.Unlock()
	}
}

func (w *Store) reload() {
	items := w.load()

	w.mu.Lock()
	w.authenticated = true
	w.items = items
	w.mu.Unlock()
}

func (w *Store) load() []models.Property {
	raw, ok := w.slots.Get(SlotName)
	if !ok {
		return nil
	}

	var items []models.Property
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		utils.Logger.WithError(err).Warn("Error parsing persisted wishlist, starting empty")
		return nil
	}
	return dedupe(items)
}

// Add saves a copy of p. Adding an id that is already saved is a no-op.
func (w *Store) Add(p models.Property) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.authenticated {
		return ErrAuthRequired
	}
	if indexOf(w.items, p.ID) >= 0 {
		return nil
	}
	w.items = append(w.items, p)
	w.persistLocked()
	return nil
}

// Remove drops id if present. It does nothing while anonymous.
func (w *Store) Remove(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.authenticated {
		return
	}
	i := indexOf(w.items, id)
	if i < 0 {
		return
	}
	w.items = append(w.items[:i:i], w.items[i+1:]...)
	w.persistLocked()
}

func (w *Store) Contains(id int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.authenticated && indexOf(w.items, id) >= 0
}

// Items returns the saved listings in the order they were added.
func (w *Store) Items() []models.Property {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]models.Property, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Store) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

func (w *Store) persistLocked() {
	items := w.items
	if items == nil {
		items = []models.Property{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		utils.Logger.WithError(err).Error("Error serializing wishlist")
		return
	}
	w.slots.Set(SlotName, string(raw), w.ttl)
}

func indexOf(items []models.Property, id int) int {
	for i, p := range items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func dedupe(items []models.Property) []models.Property {
	seen := make(map[int]bool, len(items))
	out := items[:0]
	for _, p := range items {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}
