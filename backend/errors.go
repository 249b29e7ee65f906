package backend

import "fmt"

// StatusError reports a non-2xx reply from an endpoint whose status matters.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// ParseError reports a reply body that is not JSON.
type ParseError struct {
	StatusCode int
	Body       string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in response (status %d): %q", e.StatusCode, e.Body)
}
