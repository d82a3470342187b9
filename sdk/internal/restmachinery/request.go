package restmachinery

// OutboundRequest models of an outbound HTTP request to the TAPS API.
type OutboundRequest struct {
	Method      string
	Path        string
	QueryParams map[string]string
	Headers     map[string]string
	ReqBodyObj  interface{}
	SuccessCode int
	RespObj     interface{}
	// CredentialsEntry marks a request whose purpose is to establish a session
	// (login, doctor registration). An unauthorized response to such a request
	// is a credentials error, NOT a signal that an existing session has been
	// invalidated, so it must not be broadcast as one. The distinction is made
	// here, by endpoint identity, because both cases look identical on the
	// wire.
	CredentialsEntry bool
}
