package storage

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dcode-github/nestora/backend/utils"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestCookieStore_SetWritesStrictCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s := NewCookieStore(rec, req)

	s.Set("real_Nestora_user", `{"id":"1","email":"a@b.co","name":"Asha"}`, 30*24*time.Hour)

	c := responseCookie(t, rec, "real_Nestora_user")
	require.Equal(t, "/", c.Path)
	require.Equal(t, 30*24*60*60, c.MaxAge)
	require.Equal(t, http.SameSiteStrictMode, c.SameSite)
	require.False(t, c.Secure)

	decoded, err := url.QueryUnescape(c.Value)
	require.NoError(t, err)
	require.Equal(t, `{"id":"1","email":"a@b.co","name":"Asha"}`, decoded)

	v, ok := s.Get("real_Nestora_user")
	require.True(t, ok)
	require.Equal(t, decoded, v)
}

func TestCookieStore_SecureOverTLS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	req.TLS = &tls.ConnectionState{}
	rec := httptest.NewRecorder()

	NewCookieStore(rec, req).Set("k", "v", time.Hour)
	require.True(t, responseCookie(t, rec, "k").Secure)
}

func TestCookieStore_SecureBehindProxy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()

	NewCookieStore(rec, req).Set("k", "v", time.Hour)
	require.True(t, responseCookie(t, rec, "k").Secure)
}

func TestCookieStore_ReadsRequestCookies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "real_Nestora_wishlist", Value: url.QueryEscape(`[{"id":3}]`)})
	s := NewCookieStore(httptest.NewRecorder(), req)

	v, ok := s.Get("real_Nestora_wishlist")
	require.True(t, ok)
	require.Equal(t, `[{"id":3}]`, v)

	_, ok = s.Get("missing")
	require.False(t, ok)
}

func TestCookieStore_RemoveExpiresCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "real_Nestora_user", Value: "x"})
	rec := httptest.NewRecorder()
	s := NewCookieStore(rec, req)

	s.Remove("real_Nestora_user")

	_, ok := s.Get("real_Nestora_user")
	require.False(t, ok)
	require.Less(t, responseCookie(t, rec, "real_Nestora_user").MaxAge, 0)
}

func TestCookieStore_WarnsWhenCookieTooLarge(t *testing.T) {
	previous := utils.Logger.ReplaceHooks(make(logrus.LevelHooks))
	defer utils.Logger.ReplaceHooks(previous)
	hook := logtest.NewLocal(utils.Logger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s := NewCookieStore(rec, req)

	s.Set("real_Nestora_wishlist", `[{"id":1}]`, time.Hour)
	require.Empty(t, hook.AllEntries())

	large := `[{"title":"` + strings.Repeat("x", cookieSizeLimit) + `"}]`
	s.Set("real_Nestora_wishlist", large, time.Hour)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, "real_Nestora_wishlist", entry.Data["cookie"])
	require.Greater(t, entry.Data["bytes"], cookieSizeLimit)

	// The write still goes out.
	v, ok := s.Get("real_Nestora_wishlist")
	require.True(t, ok)
	require.Equal(t, large, v)
}
