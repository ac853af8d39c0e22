package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrHTMLResponse indicates the server answered with an HTML page where
	// JSON was expected, which usually means the backend is down or a proxy
	// is misrouting the request.
	ErrHTMLResponse = errors.New("apiclient.html_response")

	// ErrInvalidResponse indicates the response body could not be decoded.
	ErrInvalidResponse = errors.New("apiclient.invalid_response")
)

// APIError is a non-2xx response from the platform API.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("apiclient: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("apiclient: unexpected status %d: %s", e.Status, e.Detail)
}

// IsUnauthorized reports whether err is an API rejection of the credential.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 401
}
