// Package csrf issues and verifies the anti-forgery token pair used by the
// browser-facing forms: an HMAC-SHA256 signature in an HttpOnly cookie and a
// "<millis>.<nonce>" payload embedded in the rendered form.
//
// The nonce is not tracked for single use, so a captured payload+cookie pair
// remains replayable until the TTL expires. Known residual risk.
package csrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CookieName is the signature cookie set alongside every issued payload.
const CookieName = "csrf_sig"

// MaxAge bounds the validity of an issued token pair.
const MaxAge = 10 * time.Minute

type Service struct {
	secret []byte
	secure bool
	now    func() time.Time
}

// New builds a token service around the process-wide signing secret. An
// empty secret leaves the service in a degraded mode where Issue returns a
// sentinel payload and Verify always fails closed.
func New(secret string, secure bool) *Service {
	var key []byte
	if secret != "" {
		key = []byte(secret)
	}
	return &Service{secret: key, secure: secure, now: time.Now}
}

// Issue generates a fresh payload, sets the signature cookie on w, and
// returns the payload for embedding in a hidden form field.
func (s *Service) Issue(w http.ResponseWriter) string {
	if len(s.secret) == 0 {
		return "undefined"
	}

	nonce := make([]byte, 12)
	if _, err := rand.Read(nonce); err != nil {
		return "undefined"
	}
	payload := strconv.FormatInt(s.now().UnixMilli(), 10) + "." + base64.RawURLEncoding.EncodeToString(nonce)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.sign(payload),
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return payload
}

// Verify checks a submitted payload against the signature cookie and maxAge.
// Every failure path returns false; it never panics or reports a cause.
func (s *Service) Verify(cookie, payload string, maxAge time.Duration) bool {
	if len(s.secret) == 0 || cookie == "" || payload == "" {
		return false
	}

	tsPart, _, _ := strings.Cut(payload, ".")
	ts, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil {
		return false
	}
	if s.now().UnixMilli()-ts > maxAge.Milliseconds() {
		return false
	}

	expected := s.sign(payload)
	if len(expected) != len(cookie) {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(cookie))
}

func (s *Service) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
