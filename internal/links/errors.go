package links

import (
	"errors"
	"fmt"
	"strings"
)

// fallbackAPIMessage is shown when the envelope reports failure without a message.
const fallbackAPIMessage = "Failed to load links"

// HTTPStatusError reports a non-2xx response from the endpoint.
type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// ParseError reports a response body that is not a valid envelope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError reports a well-formed envelope whose success flag is false.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fallbackAPIMessage
	}
	return e.Message
}

// Message converts a load error into the text shown in the error state.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return "Unexpected response from the links service"
	}
	return err.Error()
}
