// Package client talks to the price tracking backend.
// Every request goes through the same pipeline, set up once in [NewClient]:
// error normalization, then the bearer token, then tracing.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"maragu.dev/errors"
)

type errorShower interface {
	ShowError(ctx context.Context, message string)
}

// Client for the backend REST API.
type Client struct {
	baseURL    string
	client     *http.Client
	log        *slog.Logger
	normalizer *errorNormalizer
}

type NewClientOptions struct {
	BaseURL string
	Log     *slog.Logger
	// Notifier receives a user-facing message for every failed request.
	Notifier   errorShower
	Registerer prometheus.Registerer
	Timeout    time.Duration
	Transport  http.RoundTripper
}

// NewClient with the given options.
// If no logger is provided, logs are discarded.
func NewClient(opts NewClientOptions) *Client {
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}

	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}

	var rt http.RoundTripper = otelhttp.NewTransport(opts.Transport)
	rt = &bearerTransport{next: rt}
	normalizer := newErrorNormalizer(rt, NormalizeErrorsOptions{
		Log:        opts.Log,
		Notifier:   opts.Notifier,
		Registerer: opts.Registerer,
	})

	return &Client{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: normalizer,
		},
		log:        opts.Log,
		normalizer: normalizer,
	}
}

// do a request with an optional JSON body, decoding the JSON response into resBody if it's not nil.
// Responses outside the 2xx range are returned as [*APIError].
// A response body that can't be read or decoded is a failed request too, and is reported like one.
func (c *Client) do(ctx context.Context, method, path string, reqBody, resBody any) error {
	var body io.Reader
	if reqBody != nil {
		bodyAsBytes, err := json.Marshal(reqBody)
		if err != nil {
			return errors.Wrap(err, "error marshalling request body to json")
		}
		body = bytes.NewReader(bodyAsBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "error creating request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "error making request")
	}
	defer func() {
		_ = res.Body.Close()
	}()

	bodyAsBytes, err := io.ReadAll(res.Body)
	if err != nil {
		c.log.Info("Error reading backend response body", "method", method, "path", path, "error", err)
		c.normalizer.report(ctx, "")
		return errors.Wrap(err, "error reading response body")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(res.StatusCode, bodyAsBytes)
	}

	if resBody == nil || len(bodyAsBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyAsBytes, resBody); err != nil {
		c.log.Info("Error decoding backend response body", "method", method, "path", path, "error", err)
		c.normalizer.report(ctx, "")
		return errors.Wrap(err, "error unmarshalling response body from json")
	}

	return nil
}
