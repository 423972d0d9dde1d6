package llm

import "fmt"

// ModelEndpointError reports a failed exchange with the chat-completions
// endpoint: the transport failed, the endpoint answered with a non-2xx
// status, or the payload could not be decoded.
type ModelEndpointError struct {
	Endpoint   string
	StatusCode int // zero when the request never produced an HTTP response
	cause      error
}

func (e *ModelEndpointError) Error() string {
	if e.StatusCode != 0 {
		if e.cause != nil && e.cause.Error() != "" {
			return fmt.Sprintf("model endpoint %s returned status %d: %v", e.Endpoint, e.StatusCode, e.cause)
		}
		return fmt.Sprintf("model endpoint %s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("model endpoint %s: %v", e.Endpoint, e.cause)
}

func (e *ModelEndpointError) Unwrap() error { return e.cause }
