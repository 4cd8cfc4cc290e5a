package client

import (
	"encoding/json"
	"fmt"

	"github.com/pricenotifier/web/model"
)

// APIError is a response from the backend outside the 2xx range.
type APIError struct {
	StatusCode int
	// Response is the decoded error body, or the zero value if the body wasn't a JSON object.
	Response model.ErrorResponse
	Body     []byte
}

func newAPIError(statusCode int, body []byte) *APIError {
	e := &APIError{StatusCode: statusCode, Body: body}
	_ = json.Unmarshal(body, &e.Response)
	return e
}

// Error satisfies [error].
func (e *APIError) Error() string {
	if e.Response.Code != "" {
		return fmt.Sprintf("backend responded with http status code %v and error code %v", e.StatusCode, e.Response.Code)
	}
	return fmt.Sprintf("backend responded with http status code %v", e.StatusCode)
}

// Code from the error body, which may be empty or outside the catalog.
func (e *APIError) Code() model.ErrorCode {
	return e.Response.Code
}

var _ error = (*APIError)(nil)
