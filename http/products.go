package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	. "maragu.dev/gomponents"
	"maragu.dev/httph"

	"github.com/pricenotifier/web/client"
	"github.com/pricenotifier/web/html"
	"github.com/pricenotifier/web/model"
)

const (
	defaultPageLimit = 12
	maxPageLimit     = 100
)

func Dashboard(r *Router, log *slog.Logger, b backend) {
	r.Get("/dashboard", func(props html.PageProps) (Node, error) {
		products, err := b.GetProducts(props.Ctx)
		if err != nil {
			if handled := handleBackendError(props, err); handled {
				return nil, nil
			}
			log.Info("Error getting products", "error", err)
			// The notification explains the failure, so show the page without products
			products = nil
		}

		limit := parseIntOrDefault(props.R.URL.Query().Get("limit"), defaultPageLimit)
		limit = min(max(limit, 1), maxPageLimit)
		offset := max(parseIntOrDefault(props.R.URL.Query().Get("offset"), 0), 0)
		if offset >= len(products) {
			offset = 0
		}
		end := min(offset+limit, len(products))

		return html.DashboardPage(props, products[offset:end], len(products), limit, offset), nil
	})
}

func AddProduct(r *Router, log *slog.Logger, b backend) {
	r.Post("/products/search", func(props html.PageProps) (Node, error) {
		name := SanitizeQuery(props.R.PostFormValue("productName"))
		if name != "" {
			if _, err := b.AddProductByName(props.Ctx, name); err != nil {
				if handled := handleBackendError(props, err); handled {
					return nil, nil
				}
				log.Info("Error adding product by name", "error", err)
			}
		}

		http.Redirect(props.W, props.R, "/dashboard", http.StatusSeeOther)
		return nil, nil
	})

	r.Post("/products/url", func(props html.PageProps) (Node, error) {
		u := SanitizeQuery(props.R.PostFormValue("productUrl"))
		if u != "" {
			if _, err := b.AddProductByURL(props.Ctx, u); err != nil {
				if handled := handleBackendError(props, err); handled {
					return nil, nil
				}
				log.Info("Error adding product by url", "error", err)
			}
		}

		http.Redirect(props.W, props.R, "/dashboard", http.StatusSeeOther)
		return nil, nil
	})
}

func Product(r *Router, log *slog.Logger, b backend) {
	r.Get("/products/{id}", func(props html.PageProps) (Node, error) {
		id := chi.URLParam(props.R, "id")

		p, err := b.GetProduct(props.Ctx, id)
		if err != nil {
			if handled := handleBackendError(props, err); handled {
				return nil, nil
			}

			var apiErr *client.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
				return html.NotFoundPage(props), httph.HTTPError{Code: http.StatusNotFound}
			}

			log.Info("Error getting product", "error", err, "id", id)
			return html.ErrorPage(props), httph.HTTPError{Code: http.StatusBadGateway}
		}

		return html.ProductPage(props, p), nil
	})

	r.Post("/products/{id}/delete", func(props html.PageProps) (Node, error) {
		id, err := model.ParseProductID(chi.URLParam(props.R, "id"))
		if err != nil {
			return html.NotFoundPage(props), httph.HTTPError{Code: http.StatusNotFound}
		}

		if err := b.DeleteProduct(props.Ctx, id); err != nil {
			if handled := handleBackendError(props, err); handled {
				return nil, nil
			}
			log.Info("Error deleting product", "error", err, "id", id)
		}

		http.Redirect(props.W, props.R, "/dashboard", http.StatusSeeOther)
		return nil, nil
	})
}

// handleBackendError logs out if the backend no longer accepts the token, and reports whether it did.
// The user has already been shown the message for the error.
func handleBackendError(props html.PageProps, err error) bool {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		return false
	}

	s := GetSessionFromContext(props.Ctx)
	if s == nil {
		return false
	}
	s.Logout()
	return true
}

func parseIntOrDefault(v string, d int) int {
	i, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return i
}
