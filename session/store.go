// Package session tracks who is signed in and persists that identity to
// a durable slot. Dependents subscribe to state changes instead of
// polling.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dcode-github/nestora/backend/identity"
	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/storage"
	"github.com/dcode-github/nestora/backend/utils"
)

const (
	// SlotName is the storage key holding the persisted identity.
	SlotName   = "real_Nestora_user"
	DefaultTTL = 30 * 24 * time.Hour
)

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Event is published on every transition. Identity is nil unless State
// is Authenticated.
type Event struct {
	State    State
	Identity *models.Identity
}

type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

type Store struct {
	provider identity.Provider
	slots    storage.Store
	ttl      time.Duration

	mu        sync.Mutex
	state     State
	identity  *models.Identity
	listeners []subscription
	nextSubID int
}

// New builds an anonymous store. A non-positive ttl uses DefaultTTL.
func New(provider identity.Provider, slots storage.Store, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{provider: provider, slots: slots, ttl: ttl}
}

// Subscribe registers fn for every later transition. Listeners run
// synchronously, in subscription order, before the triggering call
// returns.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns the signed-in identity, if any.
func (s *Store) Identity() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == Authenticated
}

// Login authenticates against the provider. On failure the prior state
// is restored and the provider's error is returned.
func (s *Store) Login(ctx context.Context, email, password string) error {
	prev := s.begin()

	id, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		s.revert(prev)
		return err
	}

	s.signIn(id)
	utils.Logger.Infof("Session started for %s", id.ID)
	return nil
}

// Register creates an identity and signs it in.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	prev := s.begin()

	id, err := s.provider.Register(ctx, name, email, password)
	if err != nil {
		s.revert(prev)
		return err
	}

	s.signIn(id)
	return nil
}

// Logout forgets the identity and removes the persisted slot.
func (s *Store) Logout() {
	s.slots.Remove(SlotName)
	s.transition(Anonymous, nil)
}

// Restore loads the persisted identity. A missing slot leaves the store
// anonymous; an unreadable one is logged, removed and treated the same.
func (s *Store) Restore() {
	raw, ok := s.slots.Get(SlotName)
	if !ok {
		s.transition(Anonymous, nil)
		return
	}

	var id models.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil || id.ID == "" {
		if err == nil {
			utils.Logger.Warn("Persisted session has no identity id, discarding")
		} else {
			utils.Logger.WithError(err).Warn("Error parsing persisted session, discarding")
		}
		s.slots.Remove(SlotName)
		s.transition(Anonymous, nil)
		return
	}

	s.transition(Authenticated, &id)
}

type snapshot struct {
	state    State
	identity *models.Identity
}

func (s *Store) begin() snapshot {
	s.mu.Lock()
	prev := snapshot{state: s.state, identity: s.identity}
	s.mu.Unlock()

	s.transition(Authenticating, nil)
	return prev
}

func (s *Store) revert(prev snapshot) {
	s.transition(prev.state, prev.identity)
}

func (s *Store) signIn(id models.Identity) {
	raw, err := json.Marshal(id)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to serialize identity")
	} else {
		s.slots.Set(SlotName, string(raw), s.ttl)
	}
	s.transition(Authenticated, &id)
}

func (s *Store) transition(state State, id *models.Identity) {
	s.mu.Lock()
	s.state = state
	s.identity = id
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	utils.Logger.Debugf("Session is now %s", state)

	var published *models.Identity
	if id != nil {
		c := *id
		published = &c
	}
	for _, sub := range listeners {
		sub.fn(Event{State: state, Identity: published})
	}
}
