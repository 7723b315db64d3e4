package supervisor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ErrUnauthorized is returned when the Supervisor rejects the bearer token.
// Callers can match it with [errors.Is].
var ErrUnauthorized = errors.New("supervisor rejected the access token")

// APIError is returned for any other non-2xx Supervisor response. Message is
// taken from the error envelope when the host sent one, otherwise from the
// HTTP status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supervisor returned %d: %s", e.StatusCode, e.Message)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	message := http.StatusText(resp.StatusCode())
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err == nil && env.Message != "" {
		message = env.Message
	}

	return &APIError{StatusCode: resp.StatusCode(), Message: message}
}
