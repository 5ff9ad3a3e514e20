package api

import "fmt"

// APIError is a structured error response from the backend. The sentinels
// in internal/common cover the classes the screens branch on; anything else
// surfaces as an APIError with the backend's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}
