package http

import (
	"net/http"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/http"
	"maragu.dev/httph"

	"github.com/pricenotifier/web/html"
)

func NotFound(r *Router) {
	r.NotFound(Adapt(func(w http.ResponseWriter, req *http.Request) (Node, error) {
		return html.NotFoundPage(r.getProps(w, req)), httph.HTTPError{Code: http.StatusNotFound}
	}))
}
