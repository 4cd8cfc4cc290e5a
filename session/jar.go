package session

import (
	"net/http"
	"strings"
	"time"
)

// Jar is where the session cookie lives.
type Jar interface {
	// Cookies as a raw "name=value; name2=value2" string, in store order.
	Cookies() string
	SetCookie(c *http.Cookie)
	// Encrypted reports whether the page is currently served over an encrypted transport.
	Encrypted() bool
}

// cookiePair keeps the raw segment as it was received, so a segment without "=" reads back unchanged.
type cookiePair struct {
	name, raw string
}

// RequestJar is a [Jar] over a single HTTP request and its response, behaving like a browser cookie store:
// written cookies are sent to the browser and are visible to reads later in the same request,
// and writing a cookie with an expiry in the past removes it.
type RequestJar struct {
	cookies []cookiePair
	r       *http.Request
	w       http.ResponseWriter
}

func NewRequestJar(w http.ResponseWriter, r *http.Request) *RequestJar {
	j := &RequestJar{r: r, w: w}

	for _, header := range r.Header.Values("Cookie") {
		for _, c := range strings.Split(header, ";") {
			c = strings.TrimLeft(c, " ")
			if c == "" {
				continue
			}
			name, _, _ := strings.Cut(c, "=")
			j.cookies = append(j.cookies, cookiePair{name: name, raw: c})
		}
	}

	return j
}

// Cookies satisfies [Jar].
func (j *RequestJar) Cookies() string {
	parts := make([]string, 0, len(j.cookies))
	for _, c := range j.cookies {
		parts = append(parts, c.raw)
	}
	return strings.Join(parts, "; ")
}

// SetCookie satisfies [Jar].
func (j *RequestJar) SetCookie(c *http.Cookie) {
	http.SetCookie(j.w, c)

	expired := c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now()))

	var cookies []cookiePair
	var replaced bool
	for _, existing := range j.cookies {
		if existing.name != c.Name {
			cookies = append(cookies, existing)
			continue
		}
		if !expired && !replaced {
			cookies = append(cookies, cookiePair{name: c.Name, raw: c.Name + "=" + c.Value})
			replaced = true
		}
	}
	if !expired && !replaced {
		cookies = append(cookies, cookiePair{name: c.Name, raw: c.Name + "=" + c.Value})
	}
	j.cookies = cookies
}

// Encrypted satisfies [Jar].
// Behind a TLS-terminating proxy, the X-Forwarded-Proto header is trusted.
func (j *RequestJar) Encrypted() bool {
	return j.r.TLS != nil || strings.EqualFold(j.r.Header.Get("X-Forwarded-Proto"), "https")
}

var _ Jar = (*RequestJar)(nil)
