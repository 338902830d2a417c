package gate

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/semperfinish/intake/internal/csrf"
)

func issuePair(t *testing.T, s *csrf.Service) (cookie, payload string) {
	t.Helper()
	rec := httptest.NewRecorder()
	payload = s.Issue(rec)
	for _, c := range rec.Result().Cookies() {
		if c.Name == csrf.CookieName {
			cookie = c.Value
		}
	}
	return cookie, payload
}

func formRequest(t *testing.T, values url.Values, cookie string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "http://example.com/booking", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		r.AddCookie(&http.Cookie{Name: csrf.CookieName, Value: cookie})
	}
	if err := r.ParseForm(); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return r
}

func validForm(t *testing.T, s *csrf.Service, age time.Duration) (url.Values, string) {
	t.Helper()
	cookie, payload := issuePair(t, s)
	v := url.Values{}
	v.Set(TimestampField, strconv.FormatInt(time.Now().Add(-age).UnixMilli(), 10))
	v.Set(TokenField, payload)
	return v, cookie
}

func TestAdmitPasses(t *testing.T) {
	s := csrf.New("test-secret", false)
	g := New(s)

	v, cookie := validForm(t, s, 4*time.Second)
	r := formRequest(t, v, cookie)
	r.Header.Set("Origin", "http://example.com")
	if !g.Admit(r) {
		t.Fatal("valid submission rejected")
	}
}

func TestAdmitHoneypot(t *testing.T) {
	s := csrf.New("test-secret", false)
	g := New(s)

	v, cookie := validForm(t, s, 4*time.Second)
	v.Set(HoneypotField, "http://spam.example")
	if g.Admit(formRequest(t, v, cookie)) {
		t.Fatal("honeypot submission admitted")
	}
}

func TestAdmitTooFast(t *testing.T) {
	s := csrf.New("test-secret", false)
	g := New(s)

	v, cookie := validForm(t, s, time.Second)
	if g.Admit(formRequest(t, v, cookie)) {
		t.Fatal("1s-old submission admitted")
	}
}

func TestAdmitBadTimestamp(t *testing.T) {
	s := csrf.New("test-secret", false)
	g := New(s)

	v, cookie := validForm(t, s, 4*time.Second)
	v.Set(TimestampField, "not-a-number")
	if g.Admit(formRequest(t, v, cookie)) {
		t.Fatal("non-numeric timestamp admitted")
	}

	v.Del(TimestampField)
	if g.Admit(formRequest(t, v, cookie)) {
		t.Fatal("missing timestamp admitted")
	}
}

func TestAdmitOriginMismatch(t *testing.T) {
	s := csrf.New("test-secret", false)
	g := New(s)

	v, cookie := validForm(t, s, 4*time.Second)
	r := formRequest(t, v, cookie)
	r.Header.Set("Origin", "http://evil.example")
	if g.Admit(r) {
		t.Fatal("mismatched origin admitted")
	}

	r = formRequest(t, v, cookie)
	r.Header.Set("Referer", "http://evil.example/page")
	if g.Admit(r) {
		t.Fatal("mismatched referer admitted")
	}
}

func TestAdmitBadCSRF(t *testing.T) {
	s := csrf.New("test-secret", false)
	g := New(s)

	v, _ := validForm(t, s, 4*time.Second)
	if g.Admit(formRequest(t, v, "")) {
		t.Fatal("missing cookie admitted")
	}

	v2, cookie := validForm(t, s, 4*time.Second)
	v2.Set(TokenField, "0.bogus")
	if g.Admit(formRequest(t, v2, cookie)) {
		t.Fatal("forged token admitted")
	}
}
