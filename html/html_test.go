package html_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "maragu.dev/gomponents"
	"maragu.dev/is"

	"github.com/pricenotifier/web/html"
	"github.com/pricenotifier/web/model"
)

func TestPage(t *testing.T) {
	t.Run("should show the email and logout button when authenticated", func(t *testing.T) {
		out := render(t, html.Page(html.PageProps{Authenticated: true, Email: "me@example.com"}))
		is.True(t, strings.Contains(out, "me@example.com"))
		is.True(t, strings.Contains(out, `action="/logout"`))
	})

	t.Run("should not show the logout button when not authenticated", func(t *testing.T) {
		out := render(t, html.Page(html.PageProps{}))
		is.True(t, !strings.Contains(out, `action="/logout"`))
	})

	t.Run("should show the notification with a dismiss form back to the current page", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/products/1?x=y", nil)
		out := render(t, html.Page(html.PageProps{R: r, Notification: message("Wystąpił błąd serwera. Spróbuj ponownie później.")}))
		is.True(t, strings.Contains(out, `id="notification"`))
		is.True(t, strings.Contains(out, "Wystąpił błąd serwera. Spróbuj ponownie później."))
		is.True(t, strings.Contains(out, `action="/notification/clear"`))
		is.True(t, strings.Contains(out, `value="/products/1?x=y"`))
	})

	t.Run("should not show a notification without a message", func(t *testing.T) {
		out := render(t, html.Page(html.PageProps{}))
		is.True(t, !strings.Contains(out, `id="notification"`))

		out = render(t, html.Page(html.PageProps{Notification: message("")}))
		is.True(t, !strings.Contains(out, `id="notification"`))
	})
}

func TestLoginPage(t *testing.T) {
	t.Run("should show the inline error and keep the email", func(t *testing.T) {
		out := render(t, html.LoginPage(html.PageProps{}, "me@example.com", html.LoginFailedMessage))
		is.True(t, strings.Contains(out, "Nieprawidłowy email lub hasło"))
		is.True(t, strings.Contains(out, `value="me@example.com"`))
	})
}

func TestRegisterPage(t *testing.T) {
	t.Run("should show the inline error", func(t *testing.T) {
		out := render(t, html.RegisterPage(html.PageProps{}, model.RegisterRequest{FirstName: "Anna"}, html.RegisterFailedMessage))
		is.True(t, strings.Contains(out, "Rejestracja nieudana. Możliwe, że email jest już zajęty."))
		is.True(t, strings.Contains(out, `value="Anna"`))
	})
}

func TestDashboardPage(t *testing.T) {
	t.Run("should show the empty state without products", func(t *testing.T) {
		out := render(t, html.DashboardPage(html.PageProps{}, nil, 0, 10, 0))
		is.True(t, strings.Contains(out, "Brak produktów. Dodaj coś powyżej!"))
	})

	t.Run("should list products with links and delete forms", func(t *testing.T) {
		id := model.ProductID(3)
		products := []model.Product{{ID: &id, Name: "Kettle", CurrentPrice: 99.5}}
		out := render(t, html.DashboardPage(html.PageProps{}, products, 1, 10, 0))
		is.True(t, strings.Contains(out, `href="/products/3"`))
		is.True(t, strings.Contains(out, `action="/products/3/delete"`))
		is.True(t, strings.Contains(out, "99.50 PLN"))
		is.True(t, !strings.Contains(out, "Brak produktów"))
	})
}

func TestProductPage(t *testing.T) {
	t.Run("should show current and lowest price and the chart", func(t *testing.T) {
		t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		t2 := time.Date(2025, 1, 2, 11, 30, 0, 0, time.UTC)
		p := &model.ProductDetails{
			Name:         "Kettle",
			CurrentPrice: 180,
			PriceHistory: []model.PricePoint{
				{Price: 200, CheckedAt: model.Time{T: t2}},
				{Price: 150, CheckedAt: model.Time{T: t1}},
			},
		}
		out := render(t, html.ProductPage(html.PageProps{}, p))
		is.True(t, strings.Contains(out, "180.00 PLN"))
		is.True(t, strings.Contains(out, "150.00 PLN"))
		is.True(t, strings.Contains(out, "2025-01-02 11:30"))
		is.True(t, strings.Contains(out, "<polyline"))
		is.True(t, strings.Contains(out, "01.01 10:00"))
	})
}

func TestPriceChart(t *testing.T) {
	t.Run("should draw points oldest first", func(t *testing.T) {
		out := render(t, html.PriceChart(model.ChartSeries{Labels: []string{"a", "b"}, Prices: []float64{150, 200}}))
		is.True(t, strings.Contains(out, `points="48.0,252.0 752.0,48.0"`))
	})

	t.Run("should draw a single point in the middle", func(t *testing.T) {
		out := render(t, html.PriceChart(model.ChartSeries{Labels: []string{"a"}, Prices: []float64{150}}))
		is.True(t, strings.Contains(out, `points="400.0,150.0"`))
	})

	t.Run("should show a message without history", func(t *testing.T) {
		out := render(t, html.PriceChart(model.ChartSeries{}))
		is.True(t, strings.Contains(out, "Brak historii cen."))
	})
}

type message string

func (m message) Message() (string, bool) {
	return string(m), m != ""
}

func render(t *testing.T, n Node) string {
	t.Helper()

	var b strings.Builder
	is.NotError(t, n.Render(&b))
	return b.String()
}
