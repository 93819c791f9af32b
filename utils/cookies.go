package utils

import (
	"net/http"
	"strings"
	"time"
)

// IsSecureRequest reports whether the client reached us over TLS, either
// directly or through a proxy that terminated it.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// WriteCookie sets a strict same-site cookie on the root path. A zero
// ttl deletes the cookie.
func WriteCookie(w http.ResponseWriter, name, value string, ttl time.Duration, secure bool) {
	maxAge := int(ttl.Seconds())
	if ttl <= 0 {
		maxAge = -1
		value = ""
	}

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
	if maxAge > 0 {
		cookie.Expires = time.Now().Add(ttl).UTC()
	}

	Logger.Debugf("[cookies] write %s: maxAge=%d secure=%t", name, maxAge, secure)
	http.SetCookie(w, cookie)
}

func ClearCookie(w http.ResponseWriter, name string, secure bool) {
	WriteCookie(w, name, "", 0, secure)
}
