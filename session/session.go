// Package session keeps track of whether the user holds a session token, backed by a cookie.
package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pricenotifier/web/model"
	"github.com/pricenotifier/web/state"
)

const (
	CookieName     = "jwt_token"
	CookiePath     = "/"
	CookieLifetime = 24 * time.Hour
	LoginPath      = "/login"
)

// Navigator sends the user somewhere else.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to [Navigator].
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

type authenticator interface {
	Authenticate(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
}

// State is the only writer of the session cookie.
type State struct {
	auth          authenticator
	authenticated *state.Value[bool]
	jar           Jar
	nav           Navigator
}

type NewStateOptions struct {
	Auth      authenticator
	Jar       Jar
	Navigator Navigator
}

// NewState derives the authenticated flag from the cookie in the jar.
func NewState(opts NewStateOptions) *State {
	if opts.Navigator == nil {
		opts.Navigator = NavigatorFunc(func(string) {})
	}

	s := &State{
		auth: opts.Auth,
		jar:  opts.Jar,
		nav:  opts.Navigator,
	}
	token, _ := s.Token()
	s.authenticated = state.NewValue(token != "")

	return s
}

// IsAuthenticated is true when a non-empty token was present on creation or after a successful login or registration,
// and false after logout.
func (s *State) IsAuthenticated() bool {
	return s.authenticated.Get()
}

// SubscribeAuthenticated to changes of the flag.
func (s *State) SubscribeAuthenticated(f func(bool)) func() {
	return s.authenticated.Subscribe(f)
}

// Login with the backend, and store the returned token on success.
// On failure, nothing is stored and the error is returned unchanged.
func (s *State) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	res, err := s.auth.Authenticate(ctx, req)
	if err != nil {
		return "", err
	}
	s.setToken(res.AccessToken)
	return res.AccessToken, nil
}

// Register with the backend. It works like [State.Login].
func (s *State) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	res, err := s.auth.Register(ctx, req)
	if err != nil {
		return "", err
	}
	s.setToken(res.AccessToken)
	return res.AccessToken, nil
}

// Logout deletes the token and navigates to the login page.
func (s *State) Logout() {
	s.deleteToken()
	s.nav.Navigate(LoginPath)
}

// Token currently in the cookie jar, if any.
func (s *State) Token() (string, bool) {
	return getCookie(s.jar.Cookies(), CookieName)
}

// Email of the logged in user, from the token subject. The token is not verified, so only use this for display.
func (s *State) Email() string {
	token, ok := s.Token()
	if !ok || token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func (s *State) setToken(token string) {
	s.jar.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     CookiePath,
		Expires:  time.Now().Add(CookieLifetime),
		SameSite: http.SameSiteLaxMode,
		Secure:   s.jar.Encrypted(),
	})
	s.authenticated.Set(true)
}

// deleteToken by overwriting the cookie with one that has already expired.
func (s *State) deleteToken() {
	s.jar.SetCookie(&http.Cookie{
		Name:    CookieName,
		Value:   "",
		Path:    CookiePath,
		Expires: time.Unix(1, 0).UTC(),
	})
	s.authenticated.Set(false)
}

// getCookie from a raw cookie string. The first match wins.
func getCookie(raw, name string) (string, bool) {
	prefix := name + "="
	for _, c := range strings.Split(raw, ";") {
		c = strings.TrimLeft(c, " ")
		if strings.HasPrefix(c, prefix) {
			return c[len(prefix):], true
		}
	}
	return "", false
}
