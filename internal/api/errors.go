package api

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies why a request failed.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindTimeout
	KindHTTPStatus
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "TIMEOUT"
	case KindHTTPStatus:
		return "HTTP_STATUS"
	case KindDecode:
		return "DECODE"
	default:
		return "NETWORK"
	}
}

// TransportError is returned by every Client method on failure.
type TransportError struct {
	Kind       ErrorKind
	Endpoint   string
	StatusCode int // set for KindHTTPStatus
	Err        error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("GET %s: HTTP %d", e.Endpoint, e.StatusCode)
	case KindTimeout:
		return fmt.Sprintf("GET %s: timed out", e.Endpoint)
	default:
		if e.Err != nil {
			return fmt.Sprintf("GET %s: %s: %v", e.Endpoint, e.Kind, e.Err)
		}
		return fmt.Sprintf("GET %s: %s", e.Endpoint, e.Kind)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTimeout reports whether err is a TransportError of kind TIMEOUT.
func IsTimeout(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Kind == KindTimeout
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var te *TransportError
	if errors.As(err, &te) && te.Kind == KindHTTPStatus {
		return te.StatusCode
	}
	return 0
}

// classify wraps an error returned by http.Client.Do.
func classify(endpoint string, err error) *TransportError {
	kind := KindNetwork
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		kind = KindTimeout
	}
	return &TransportError{Kind: kind, Endpoint: endpoint, Err: err}
}
