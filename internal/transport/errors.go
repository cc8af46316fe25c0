package transport

import "fmt"

// RestfulError is returned when the service answers with a non-success
// status and a recognizable error message in the body.
type RestfulError struct {
	Status    int
	Message   string
	RequestID string
	Body      []byte
}

func (e *RestfulError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("api error (%d): %s (request_id=%s)", e.Status, e.Message, e.RequestID)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// TransportError covers everything else that can go wrong on the wire:
// connection failures, timeouts, unreadable or undecodable bodies and error
// statuses without a message.
type TransportError struct {
	Op     string // "send", "read", "status" or "decode"
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
