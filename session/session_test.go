package session_test

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"maragu.dev/is"

	"github.com/pricenotifier/web/model"
	"github.com/pricenotifier/web/session"
)

type mockAuthenticator struct {
	err         error
	loginReq    model.LoginRequest
	registerReq model.RegisterRequest
	token       string
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	m.loginReq = req
	if m.err != nil {
		return model.AuthResponse{}, m.err
	}
	return model.AuthResponse{AccessToken: m.token}, nil
}

func (m *mockAuthenticator) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	m.registerReq = req
	if m.err != nil {
		return model.AuthResponse{}, m.err
	}
	return model.AuthResponse{AccessToken: m.token}, nil
}

func TestNewState(t *testing.T) {
	tests := []struct {
		name                string
		cookie              string
		expectAuthenticated bool
		expectToken         string
		expectTokenOK       bool
	}{
		{name: "no cookie", cookie: "", expectAuthenticated: false},
		{name: "token cookie", cookie: "jwt_token=abc", expectAuthenticated: true, expectToken: "abc", expectTokenOK: true},
		{name: "token among other cookies", cookie: "session=s1;  jwt_token=abc; theme=dark", expectAuthenticated: true, expectToken: "abc", expectTokenOK: true},
		{name: "empty token", cookie: "jwt_token=", expectAuthenticated: false, expectToken: "", expectTokenOK: true},
		{name: "first token wins", cookie: "jwt_token=first; jwt_token=second", expectAuthenticated: true, expectToken: "first", expectTokenOK: true},
		{name: "similar name", cookie: "my_jwt_token=abc", expectAuthenticated: false},
		{name: "bare name without value", cookie: "jwt_token", expectAuthenticated: false},
		{name: "bare name before token", cookie: "jwt_token; jwt_token=abc", expectAuthenticated: true, expectToken: "abc", expectTokenOK: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if test.cookie != "" {
				r.Header.Set("Cookie", test.cookie)
			}
			s := session.NewState(session.NewStateOptions{
				Auth: &mockAuthenticator{},
				Jar:  session.NewRequestJar(httptest.NewRecorder(), r),
			})

			is.Equal(t, test.expectAuthenticated, s.IsAuthenticated())
			token, ok := s.Token()
			is.Equal(t, test.expectTokenOK, ok)
			is.Equal(t, test.expectToken, token)
		})
	}
}

func TestRequestJar_Cookies(t *testing.T) {
	t.Run("should keep segments as received", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Cookie", "jwt_token;  theme=dark; a=b=c")

		j := session.NewRequestJar(httptest.NewRecorder(), r)
		is.Equal(t, "jwt_token; theme=dark; a=b=c", j.Cookies())
	})

	t.Run("should replace a bare segment when the cookie is written", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Cookie", "jwt_token; theme=dark")

		j := session.NewRequestJar(httptest.NewRecorder(), r)
		j.SetCookie(&http.Cookie{Name: "jwt_token", Value: "abc"})
		is.Equal(t, "jwt_token=abc; theme=dark", j.Cookies())
	})
}

func TestState_Login(t *testing.T) {
	t.Run("should store the token and set the flag on success", func(t *testing.T) {
		auth := &mockAuthenticator{token: "T"}
		s, rec := newState(t, auth, httptest.NewRequest(http.MethodPost, "/login", nil))

		var changes []bool
		s.SubscribeAuthenticated(func(v bool) {
			changes = append(changes, v)
		})

		token, err := s.Login(t.Context(), model.LoginRequest{Email: "me@example.com", Password: "123456"})
		is.NotError(t, err)
		is.Equal(t, "T", token)
		is.Equal(t, model.EmailAddress("me@example.com"), auth.loginReq.Email)

		stored, ok := s.Token()
		is.True(t, ok)
		is.Equal(t, "T", stored)
		is.True(t, s.IsAuthenticated())
		is.EqualSlice(t, []bool{true}, changes)

		setCookie := rec.Header().Get("Set-Cookie")
		is.True(t, strings.HasPrefix(setCookie, "jwt_token=T;"))
		is.True(t, strings.Contains(setCookie, "Path=/"))
		is.True(t, strings.Contains(setCookie, "SameSite=Lax"))
		is.True(t, strings.Contains(setCookie, "Expires="))
		is.True(t, !strings.Contains(setCookie, "Secure"))
	})

	t.Run("should mark the cookie secure over TLS", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.TLS = &tls.ConnectionState{}
		s, rec := newState(t, &mockAuthenticator{token: "T"}, r)

		_, err := s.Login(t.Context(), model.LoginRequest{})
		is.NotError(t, err)
		is.True(t, strings.Contains(rec.Header().Get("Set-Cookie"), "Secure"))
	})

	t.Run("should mark the cookie secure behind a TLS-terminating proxy", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.Header.Set("X-Forwarded-Proto", "https")
		s, rec := newState(t, &mockAuthenticator{token: "T"}, r)

		_, err := s.Login(t.Context(), model.LoginRequest{})
		is.NotError(t, err)
		is.True(t, strings.Contains(rec.Header().Get("Set-Cookie"), "Secure"))
	})

	t.Run("should not store anything and return the error unchanged on failure", func(t *testing.T) {
		expectedErr := errors.New("oh no")
		s, rec := newState(t, &mockAuthenticator{err: expectedErr}, httptest.NewRequest(http.MethodPost, "/login", nil))

		token, err := s.Login(t.Context(), model.LoginRequest{})
		is.Error(t, expectedErr, err)
		is.Equal(t, "", token)

		_, ok := s.Token()
		is.True(t, !ok)
		is.True(t, !s.IsAuthenticated())
		is.Equal(t, "", rec.Header().Get("Set-Cookie"))
	})
}

func TestState_Register(t *testing.T) {
	t.Run("should store the token and set the flag on success", func(t *testing.T) {
		auth := &mockAuthenticator{token: "R"}
		s, _ := newState(t, auth, httptest.NewRequest(http.MethodPost, "/register", nil))

		token, err := s.Register(t.Context(), model.RegisterRequest{FirstName: "Anna", Email: "anna@example.com", Password: "123456"})
		is.NotError(t, err)
		is.Equal(t, "R", token)
		is.Equal(t, "Anna", auth.registerReq.FirstName)

		stored, _ := s.Token()
		is.Equal(t, "R", stored)
		is.True(t, s.IsAuthenticated())
	})

	t.Run("should not store anything on failure", func(t *testing.T) {
		s, _ := newState(t, &mockAuthenticator{err: errors.New("taken")}, httptest.NewRequest(http.MethodPost, "/register", nil))

		_, err := s.Register(t.Context(), model.RegisterRequest{})
		is.True(t, err != nil)
		is.True(t, !s.IsAuthenticated())
	})
}

func TestState_Logout(t *testing.T) {
	t.Run("should delete the token, clear the flag, and navigate to login once", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/logout", nil)
		r.Header.Set("Cookie", "jwt_token=T; theme=dark")
		rec := httptest.NewRecorder()

		var navigations []string
		s := session.NewState(session.NewStateOptions{
			Auth: &mockAuthenticator{},
			Jar:  session.NewRequestJar(rec, r),
			Navigator: session.NavigatorFunc(func(path string) {
				navigations = append(navigations, path)
			}),
		})
		is.True(t, s.IsAuthenticated())

		s.Logout()

		_, ok := s.Token()
		is.True(t, !ok)
		is.True(t, !s.IsAuthenticated())
		is.EqualSlice(t, []string{"/login"}, navigations)

		setCookie := rec.Header().Get("Set-Cookie")
		is.True(t, strings.HasPrefix(setCookie, "jwt_token=;"))
		is.True(t, strings.Contains(setCookie, "Expires=Thu, 01 Jan 1970 00:00:01 GMT"))
	})
}

func TestState_Email(t *testing.T) {
	t.Run("should return the token subject", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "me@example.com"}).SignedString([]byte("secret"))
		is.NotError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Cookie", "jwt_token="+token)
		s, _ := newState(t, &mockAuthenticator{}, r)

		is.Equal(t, "me@example.com", s.Email())
	})

	t.Run("should return empty for a token that isn't a JWT", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Cookie", "jwt_token=opaque")
		s, _ := newState(t, &mockAuthenticator{}, r)

		is.Equal(t, "", s.Email())
	})
}

func newState(t *testing.T, auth *mockAuthenticator, r *http.Request) (*session.State, *httptest.ResponseRecorder) {
	t.Helper()

	rec := httptest.NewRecorder()
	return session.NewState(session.NewStateOptions{
		Auth: auth,
		Jar:  session.NewRequestJar(rec, r),
	}), rec
}
