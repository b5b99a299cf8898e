package schema

import (
	"errors"
	"fmt"
)

// ErrListenerClosed is returned by listener operations after Close.
var ErrListenerClosed = errors.New("websocket listener closed")

// TransportError reports an HTTP call that could not be completed.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a payload that is not valid JSON.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v (%d bytes)", e.Err, len(e.Body))
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ConnectionError reports a WebSocket that could not be opened.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("websocket connection failed: %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SendError reports a failed WebSocket write.
type SendError struct {
	Err error
}

func (e *SendError) Error() string { return "failed to send websocket message: " + e.Err.Error() }

func (e *SendError) Unwrap() error { return e.Err }

// ReceiveError reports a failed WebSocket read.
type ReceiveError struct {
	Err error
}

func (e *ReceiveError) Error() string { return "failed to receive websocket message: " + e.Err.Error() }

func (e *ReceiveError) Unwrap() error { return e.Err }

// APIError is an exchange-level error carried inside a well-formed envelope.
// The REST client never returns it on its own; see Envelope.Err.
type APIError struct {
	Status   int
	Messages []APIMessage
}

// APIMessage is one entry of the envelope's "messages" list.
type APIMessage struct {
	Code    string `json:"message_code"`
	Message string `json:"message_string"`
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("gmocoin api error: status %d", e.Status)
	}
	m := e.Messages[0]
	return fmt.Sprintf("gmocoin api error: status %d: %s %s", e.Status, m.Code, m.Message)
}
