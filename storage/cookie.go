package storage

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dcode-github/nestora/backend/utils"
	"github.com/sirupsen/logrus"
)

// cookieSizeLimit is the name plus value size past which browsers
// commonly drop a cookie without telling the server.
const cookieSizeLimit = 4000

// CookieStore keeps slots in the browser's cookie jar. Reads come from
// the request; writes go out as Set-Cookie headers and are visible to
// later reads in the same request.
type CookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool

	mu      sync.Mutex
	written map[string]*string
}

func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{
		w:       w,
		r:       r,
		secure:  utils.IsSecureRequest(r),
		written: make(map[string]*string),
	}
}

func (s *CookieStore) Get(key string) (string, bool) {
	s.mu.Lock()
	v, touched := s.written[key]
	s.mu.Unlock()
	if touched {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	cookie, err := s.r.Cookie(key)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Cookie %s is not valid escaped text", key)
		return "", false
	}
	return value, true
}

func (s *CookieStore) Set(key, value string, ttl time.Duration) {
	if ttl <= 0 {
		s.Remove(key)
		return
	}
	s.mu.Lock()
	s.written[key] = &value
	s.mu.Unlock()

	escaped := url.QueryEscape(value)
	if size := len(key) + len(escaped); size > cookieSizeLimit {
		utils.Logger.WithFields(logrus.Fields{
			"cookie": key,
			"bytes":  size,
		}).Warn("Cookie exceeds the browser size limit and may be discarded")
	}
	utils.WriteCookie(s.w, key, escaped, ttl, s.secure)
}

func (s *CookieStore) Remove(key string) {
	s.mu.Lock()
	s.written[key] = nil
	s.mu.Unlock()

	utils.ClearCookie(s.w, key, s.secure)
}
