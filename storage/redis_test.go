package storage

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func clientCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == ClientCookieName {
			return c
		}
	}
	return nil
}

func TestRedisStoreForRequest_MintsClientID(t *testing.T) {
	_, client := newTestRedis(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	s := RedisStoreForRequest(rec, req, client)

	_, err := uuid.Parse(s.ClientID())
	require.NoError(t, err)

	cookie := clientCookie(t, rec)
	require.NotNil(t, cookie)
	require.Equal(t, s.ClientID(), cookie.Value)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.Greater(t, cookie.MaxAge, 0)
}

func TestRedisStoreForRequest_ReusesClientID(t *testing.T) {
	_, client := newTestRedis(t)
	id := uuid.NewString()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: id})

	s := RedisStoreForRequest(rec, req, client)

	require.Equal(t, id, s.ClientID())
	require.Nil(t, clientCookie(t, rec))
}

func TestRedisStoreForRequest_ReplacesMalformedClientID(t *testing.T) {
	_, client := newTestRedis(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: "nestora:other:real_Nestora_user"})

	s := RedisStoreForRequest(rec, req, client)

	require.NotEqual(t, "nestora:other:real_Nestora_user", s.ClientID())
	_, err := uuid.Parse(s.ClientID())
	require.NoError(t, err)
	require.NotNil(t, clientCookie(t, rec))
}

func TestRedisStore_SetGetRemove(t *testing.T) {
	mr, client := newTestRedis(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s := NewRedisStore(req.Context(), client, "c1")

	_, ok := s.Get("slot")
	require.False(t, ok)

	s.Set("slot", `{"id":"u1"}`, time.Hour)
	v, ok := s.Get("slot")
	require.True(t, ok)
	require.Equal(t, `{"id":"u1"}`, v)

	raw, err := mr.Get("nestora:c1:slot")
	require.NoError(t, err)
	require.Equal(t, `{"id":"u1"}`, raw)
	require.Equal(t, time.Hour, mr.TTL("nestora:c1:slot"))

	s.Remove("slot")
	_, ok = s.Get("slot")
	require.False(t, ok)
	require.False(t, mr.Exists("nestora:c1:slot"))
}

func TestRedisStore_NonPositiveTTLRemoves(t *testing.T) {
	mr, client := newTestRedis(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s := NewRedisStore(req.Context(), client, "c1")

	s.Set("slot", "v", time.Hour)
	s.Set("slot", "v", 0)
	require.False(t, mr.Exists("nestora:c1:slot"))
}

func TestRedisStore_Expiry(t *testing.T) {
	mr, client := newTestRedis(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s := NewRedisStore(req.Context(), client, "c1")

	s.Set("slot", "v", time.Hour)
	mr.FastForward(2 * time.Hour)

	_, ok := s.Get("slot")
	require.False(t, ok)
}

func TestRedisStore_ClientsAreIsolated(t *testing.T) {
	_, client := newTestRedis(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	a := NewRedisStore(req.Context(), client, "a")
	b := NewRedisStore(req.Context(), client, "b")

	a.Set("slot", "mine", time.Hour)
	_, ok := b.Get("slot")
	require.False(t, ok)
}
