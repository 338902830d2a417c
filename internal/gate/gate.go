// Package gate screens browser form submissions before any business logic
// runs. All five checks are cheap, side-effect free, and collapse into a
// single pass/fail so callers reveal nothing about which defense triggered.
package gate

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/semperfinish/intake/internal/csrf"
)

// Form field names shared with the rendered templates.
const (
	HoneypotField  = "referrer"
	TimestampField = "form_ts"
	TokenField     = "csrf_token"
)

// MinFillTime is the minimum believable delay between form render and
// submission. Anything faster is treated as a scripted submission.
const MinFillTime = 3 * time.Second

type Gate struct {
	csrf *csrf.Service
	now  func() time.Time
}

func New(csrfSvc *csrf.Service) *Gate {
	return &Gate{csrf: csrfSvc, now: time.Now}
}

// Admit runs the ordered admission checks against an already-parsed form
// request and reports whether the submission may proceed.
func (g *Gate) Admit(r *http.Request) bool {
	host := r.Host

	// Origin and Referer, when present, must name the effective host.
	if origin := r.Header.Get("Origin"); origin != "" && !strings.Contains(origin, host) {
		return false
	}
	if referer := r.Header.Get("Referer"); referer != "" && !strings.Contains(referer, host) {
		return false
	}

	// Honeypot: invisible to humans, any value means a bot filled it.
	if strings.TrimSpace(r.PostFormValue(HoneypotField)) != "" {
		return false
	}

	// Time-trap: the render timestamp must be numeric and old enough.
	ts, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue(TimestampField)), 10, 64)
	if err != nil {
		return false
	}
	if g.now().UnixMilli()-ts < MinFillTime.Milliseconds() {
		return false
	}

	var cookie string
	if c, err := r.Cookie(csrf.CookieName); err == nil {
		cookie = c.Value
	}
	return g.csrf.Verify(cookie, r.PostFormValue(TokenField), csrf.MaxAge)
}
