package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pricenotifier/web/model"
)

type NormalizeErrorsOptions struct {
	Log        *slog.Logger
	Notifier   errorShower
	Registerer prometheus.Registerer
}

type errorNormalizer struct {
	errors   *prometheus.CounterVec
	log      *slog.Logger
	next     http.RoundTripper
	notifier errorShower
}

// NormalizeErrors wraps next so that every failed request results in exactly one user-facing message
// from the error catalog, sent to the notifier.
// A request fails if the transport returns an error, or the response status is 400 or above.
// The response or error is returned unchanged, and requests are never modified or retried.
func NormalizeErrors(next http.RoundTripper, opts NormalizeErrorsOptions) http.RoundTripper {
	return newErrorNormalizer(next, opts)
}

func newErrorNormalizer(next http.RoundTripper, opts NormalizeErrorsOptions) *errorNormalizer {
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}

	if opts.Notifier == nil {
		opts.Notifier = noopNotifier{}
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricenotifier_backend_errors_total",
		Help: "Failed backend requests, by error code shown to the user.",
	}, []string{"code"})

	if opts.Registerer != nil {
		if err := opts.Registerer.Register(counter); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				panic("error registering backend errors counter: " + err.Error())
			}
			counter = are.ExistingCollector.(*prometheus.CounterVec)
		}
	}

	return &errorNormalizer{
		errors:   counter,
		log:      opts.Log,
		next:     next,
		notifier: opts.Notifier,
	}
}

// RoundTrip satisfies [http.RoundTripper].
func (n *errorNormalizer) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := n.next.RoundTrip(req)
	if err != nil {
		n.log.Info("Error making backend request", "method", req.Method, "path", req.URL.Path, "error", err)
		n.report(req.Context(), "")
		return res, err
	}

	if res.StatusCode < http.StatusBadRequest {
		return res, nil
	}

	// Read the body so the code can be inspected, then put it back for the caller
	body, err := io.ReadAll(res.Body)
	_ = res.Body.Close()
	if err != nil {
		n.log.Info("Error reading backend error response body", "method", req.Method, "path", req.URL.Path, "error", err)
		n.report(req.Context(), "")
		return nil, err
	}
	res.Body = io.NopCloser(bytes.NewReader(body))

	code := codeFromBody(body)
	n.log.Info("Backend request failed", "method", req.Method, "path", req.URL.Path, "status", res.StatusCode, "code", code)
	n.report(req.Context(), code)

	return res, nil
}

// report the message for code to the notifier. An empty code gets the fallback message.
func (n *errorNormalizer) report(ctx context.Context, code model.ErrorCode) {
	label := string(code)
	if label == "" {
		label = "UNKNOWN"
	}
	n.errors.WithLabelValues(label).Inc()

	n.notifier.ShowError(ctx, code.Message())
}

// codeFromBody returns the error code if body is a JSON object with a code from the catalog, and empty otherwise.
func codeFromBody(body []byte) model.ErrorCode {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	var code model.ErrorCode
	if err := json.Unmarshal(fields["code"], &code); err != nil {
		return ""
	}

	if !code.Known() {
		return ""
	}
	return code
}

type noopNotifier struct{}

func (noopNotifier) ShowError(context.Context, string) {}
