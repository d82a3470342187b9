package sdk

// Phase represents where a Session is in its lifecycle.
type Phase string

const (
	// PhaseBootstrapping indicates the client has started but has not yet
	// determined whether a server-side session exists. It is entered exactly
	// once per process and never re-entered.
	PhaseBootstrapping Phase = "BOOTSTRAPPING"
	// PhaseAuthenticated indicates the server currently honors the session's
	// credential and User identifies the caller.
	PhaseAuthenticated Phase = "AUTHENTICATED"
	// PhaseAnonymous indicates no session exists. This is the expected steady
	// state for anonymous visitors, not an error.
	PhaseAnonymous Phase = "ANONYMOUS"
)

// Session is the in-memory record of the current identity and authentication
// phase. Credential may be empty even when authenticated-- a server that
// transports the session in a cookie never hands the client a bearer token.
type Session struct {
	User       *User
	Credential string
	Phase      Phase
}

// Authenticated returns true if the session is in PhaseAuthenticated.
func (s Session) Authenticated() bool {
	return s.Phase == PhaseAuthenticated
}
