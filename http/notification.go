package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pricenotifier/web/notify"
)

type notificationResponse struct {
	Message string `json:"message,omitempty"`
}

// Notification returns the current message for the browser as JSON, and clears it on request.
func Notification(mux chi.Router, hub *notify.Hub) {
	mux.Get("/notification", func(w http.ResponseWriter, r *http.Request) {
		var res notificationResponse
		if s := hub.FromContext(r.Context()); s != nil {
			res.Message, _ = s.Message()
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(res)
	})

	mux.Post("/notification/clear", func(w http.ResponseWriter, r *http.Request) {
		if s := hub.FromContext(r.Context()); s != nil {
			s.Clear()
		}

		redirect := r.PostFormValue("redirect")
		if !isLocalPath(redirect) {
			redirect = "/"
		}
		http.Redirect(w, r, redirect, http.StatusSeeOther)
	})
}
