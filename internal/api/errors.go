package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnauthorized marks 401 responses. The auth session treats it as "the
// token is no longer good" and demotes to anonymous.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx backend response.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Message is the backend's error detail, or the status text when the
	// body carried none.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401s.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// errorBody matches the backend's error envelope. FastAPI-style backends use
// "detail"; others use "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(raw) > 0 {
		var body errorBody
		if json.Unmarshal(raw, &body) == nil {
			if body.Detail != "" {
				apiErr.Message = body.Detail
			} else if body.Message != "" {
				apiErr.Message = body.Message
			}
		}
	}
	return apiErr
}
