package sdk

import "fmt"

// ErrAuthentication represents an error wherein the API server rejected the
// caller's credentials or no longer honors the caller's session. The Reason
// field carries the server's human-readable explanation when one was
// provided.
type ErrAuthentication struct {
	Reason string `json:"error"`
}

// NewErrAuthentication returns a new ErrAuthentication.
func NewErrAuthentication(reason string) *ErrAuthentication {
	return &ErrAuthentication{
		Reason: reason,
	}
}

func (e *ErrAuthentication) Error() string {
	if e.Reason == "" {
		return "Could not authenticate the request."
	}
	return fmt.Sprintf("Could not authenticate the request: %s", e.Reason)
}

// ErrAuthorization represents an error wherein the caller is authenticated,
// but not permitted to carry out the requested operation.
type ErrAuthorization struct {
	Reason string `json:"error"`
}

// NewErrAuthorization returns a new ErrAuthorization.
func NewErrAuthorization() *ErrAuthorization {
	return &ErrAuthorization{}
}

func (e *ErrAuthorization) Error() string {
	return "The request is not authorized."
}

// ErrBadRequest represents an error wherein the API server rejected a request
// as invalid.
type ErrBadRequest struct {
	Reason string `json:"error"`
}

// NewErrBadRequest returns a new ErrBadRequest.
func NewErrBadRequest(reason string) *ErrBadRequest {
	return &ErrBadRequest{
		Reason: reason,
	}
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("Bad request: %s", e.Reason)
}

// ErrNotFound represents an error wherein a requested resource was not found.
type ErrNotFound struct {
	Reason string `json:"error"`
}

// NewErrNotFound returns a new ErrNotFound.
func NewErrNotFound(reason string) *ErrNotFound {
	return &ErrNotFound{
		Reason: reason,
	}
}

func (e *ErrNotFound) Error() string {
	if e.Reason == "" {
		return "The requested resource was not found."
	}
	return e.Reason
}

// ErrInternalServer represents an unanticipated server-side error.
type ErrInternalServer struct {
	Reason string `json:"error"`
}

// NewErrInternalServer returns a new ErrInternalServer.
func NewErrInternalServer() *ErrInternalServer {
	return &ErrInternalServer{}
}

func (e *ErrInternalServer) Error() string {
	return "An internal server error occurred."
}

// ErrNetwork represents a transport-level failure-- the API server could not
// be reached at all. It is deliberately a distinct type so callers can never
// confuse an unreachable server with a rejected credential.
type ErrNetwork struct {
	Cause error
}

// NewErrNetwork returns a new ErrNetwork wrapping the underlying transport
// error.
func NewErrNetwork(cause error) *ErrNetwork {
	return &ErrNetwork{
		Cause: cause,
	}
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("error invoking API: %s", e.Cause)
}

func (e *ErrNetwork) Unwrap() error {
	return e.Cause
}
