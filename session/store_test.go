package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dcode-github/nestora/backend/identity"
	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/storage"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	users   map[string]string
	calls   int
	failErr error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{users: map[string]string{}}
}

func (f *fakeProvider) Authenticate(_ context.Context, email, password string) (models.Identity, error) {
	f.calls++
	if f.failErr != nil {
		return models.Identity{}, f.failErr
	}
	if pw, ok := f.users[email]; ok && pw == password {
		return models.Identity{ID: "id-" + email, Email: email, Name: "User"}, nil
	}
	return models.Identity{}, identity.ErrInvalidCredentials
}

func (f *fakeProvider) Register(_ context.Context, name, email, password string) (models.Identity, error) {
	f.calls++
	if _, ok := f.users[email]; ok {
		return models.Identity{}, identity.ErrEmailExists
	}
	f.users[email] = password
	return models.Identity{ID: "id-" + email, Email: email, Name: name}, nil
}

func recordEvents(s *Store) *[]Event {
	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })
	return &events
}

func states(events []Event) []State {
	out := make([]State, 0, len(events))
	for _, e := range events {
		out = append(out, e.State)
	}
	return out
}

func TestStore_RegisterPersistsIdentity(t *testing.T) {
	slots := storage.NewMemoryStore()
	s := New(newFakeProvider(), slots, 0)
	events := recordEvents(s)

	require.Equal(t, Anonymous, s.State())
	require.NoError(t, s.Register(context.Background(), "Asha", "asha@example.com", "secret1"))

	require.Equal(t, Authenticated, s.State())
	id, ok := s.Identity()
	require.True(t, ok)
	require.Equal(t, "Asha", id.Name)

	raw, ok := slots.Get(SlotName)
	require.True(t, ok)
	var persisted map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Equal(t, map[string]string{"id": "id-asha@example.com", "email": "asha@example.com", "name": "Asha"}, persisted)

	require.Equal(t, []State{Authenticating, Authenticated}, states(*events))
	require.NotNil(t, (*events)[1].Identity)
}

func TestStore_LoginFailureKeepsAnonymous(t *testing.T) {
	slots := storage.NewMemoryStore()
	s := New(newFakeProvider(), slots, 0)
	events := recordEvents(s)

	err := s.Login(context.Background(), "nobody@example.com", "secret1")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)
	require.Equal(t, Anonymous, s.State())

	_, ok := slots.Get(SlotName)
	require.False(t, ok)
	require.Equal(t, []State{Authenticating, Anonymous}, states(*events))
}

func TestStore_FailedLoginKeepsExistingIdentity(t *testing.T) {
	p := newFakeProvider()
	s := New(p, storage.NewMemoryStore(), 0)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "secret1"))

	p.failErr = errors.New("backend down")
	require.Error(t, s.Login(ctx, "asha@example.com", "secret1"))

	id, ok := s.Identity()
	require.True(t, ok)
	require.Equal(t, "asha@example.com", id.Email)
	require.Equal(t, Authenticated, s.State())
}

func TestStore_RegisterDuplicateEmail(t *testing.T) {
	s := New(newFakeProvider(), storage.NewMemoryStore(), 0)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "secret1"))
	s.Logout()

	err := s.Register(ctx, "Other", "asha@example.com", "secret2")
	require.ErrorIs(t, err, identity.ErrEmailExists)
	require.Equal(t, Anonymous, s.State())
}

func TestStore_LoginAfterRegister(t *testing.T) {
	s := New(newFakeProvider(), storage.NewMemoryStore(), 0)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "secret1"))
	s.Logout()
	require.NoError(t, s.Login(ctx, "asha@example.com", "secret1"))
	require.True(t, s.IsAuthenticated())
}

func TestStore_LogoutThenRestoreIsAnonymous(t *testing.T) {
	slots := storage.NewMemoryStore()
	ctx := context.Background()

	s := New(newFakeProvider(), slots, 0)
	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "secret1"))
	s.Logout()

	fresh := New(newFakeProvider(), slots, 0)
	fresh.Restore()
	require.Equal(t, Anonymous, fresh.State())
	_, ok := fresh.Identity()
	require.False(t, ok)
}

func TestStore_RestoreAuthenticated(t *testing.T) {
	slots := storage.NewMemoryStore()
	slots.Set(SlotName, `{"id":"42","email":"ravi@example.com","name":"Ravi"}`, time.Hour)

	s := New(newFakeProvider(), slots, 0)
	events := recordEvents(s)
	s.Restore()

	require.Equal(t, Authenticated, s.State())
	id, _ := s.Identity()
	require.Equal(t, models.Identity{ID: "42", Email: "ravi@example.com", Name: "Ravi"}, id)
	require.Equal(t, []State{Authenticated}, states(*events))
}

func TestStore_RestoreCorruptSlot(t *testing.T) {
	for _, raw := range []string{"{not json", `{"email":"x@example.com"}`, `[1,2]`} {
		slots := storage.NewMemoryStore()
		slots.Set(SlotName, raw, time.Hour)

		s := New(newFakeProvider(), slots, 0)
		s.Restore()

		require.Equal(t, Anonymous, s.State(), raw)
		_, ok := slots.Get(SlotName)
		require.False(t, ok, "corrupt slot %q should be removed", raw)
	}
}

func TestStore_SessionExpires(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	slots := storage.NewMemoryStore()
	slots.Now = func() time.Time { return now }

	s := New(newFakeProvider(), slots, 0)
	require.NoError(t, s.Register(context.Background(), "Asha", "asha@example.com", "secret1"))

	now = now.Add(DefaultTTL + time.Second)
	fresh := New(newFakeProvider(), slots, 0)
	fresh.Restore()
	require.Equal(t, Anonymous, fresh.State())
}

func TestStore_Unsubscribe(t *testing.T) {
	s := New(newFakeProvider(), storage.NewMemoryStore(), 0)
	calls := 0
	unsubscribe := s.Subscribe(func(Event) { calls++ })

	s.Logout()
	unsubscribe()
	s.Logout()

	require.Equal(t, 1, calls)
}

func TestStore_WithMockProvider(t *testing.T) {
	repo := identity.NewMemoryRepository()
	s := New(identity.NewMockProvider(repo, 0), storage.NewMemoryStore(), 0)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "secret1"))
	s.Logout()
	require.ErrorIs(t, s.Login(ctx, "asha@example.com", "nope123"), identity.ErrInvalidCredentials)
	require.NoError(t, s.Login(ctx, "asha@example.com", "secret1"))
	require.Equal(t, 1, repo.Len())
}

func TestState_String(t *testing.T) {
	require.Equal(t, "anonymous", Anonymous.String())
	require.Equal(t, "authenticating", Authenticating.String())
	require.Equal(t, "authenticated", Authenticated.String())
}
