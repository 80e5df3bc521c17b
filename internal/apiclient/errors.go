package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const networkErrorMessage = "Network error. Please check your connection."

// APIError is the normalized failure returned by every request helper.
// Status is the HTTP status code, or 0 when no response was received.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" && e.Details != e.Message {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNetworkError reports whether err is an APIError for a request that
// never received a response.
func IsNetworkError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 0
}

// StatusCode returns the HTTP status carried by err, or -1 when err is not
// an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}

func newNetworkError(err error) *APIError {
	return &APIError{
		Message: networkErrorMessage,
		Status:  0,
		Details: err.Error(),
	}
}

// newResponseError builds the error for a non-2xx response. Details come
// from the "message" field of a JSON body, the whole JSON body when it has
// no message, or the status text when the body is not JSON.
func newResponseError(status int, body []byte) *APIError {
	text := http.StatusText(status)
	apiErr := &APIError{
		Message: text,
		Status:  status,
		Details: text,
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	if obj, ok := parsed.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			apiErr.Details = msg
			return apiErr
		}
	}

	if raw, err := json.Marshal(parsed); err == nil {
		apiErr.Details = string(raw)
	}
	return apiErr
}
