package authn

import (
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
)

// Well-known navigation targets.
const (
	// LoginPath is where anonymous visitors are sent to establish a session.
	LoginPath = "/login"
	// RegisterDoctorPath is where new doctors sign up. Like LoginPath, it is a
	// place an anonymous visitor legitimately is.
	RegisterDoctorPath = "/register-doctor"
	// UnauthorizedPath is where authenticated visitors are sent when their
	// role does not permit a route.
	UnauthorizedPath = "/unauthorized"
)

// DecisionKind enumerates the possible outcomes of a route guard decision.
type DecisionKind string

const (
	// DecisionAllow permits the route to render.
	DecisionAllow DecisionKind = "ALLOW"
	// DecisionShowLoading instructs the caller to render a neutral loading
	// indicator while the session is still bootstrapping. It is deliberately
	// not a redirect: the session's fate is not yet known.
	DecisionShowLoading DecisionKind = "SHOW_LOADING"
	// DecisionRedirect instructs the caller to navigate to Decision.Path.
	DecisionRedirect DecisionKind = "REDIRECT"
)

// Decision is the outcome of evaluating a session against a route's
// requirements.
type Decision struct {
	Kind DecisionKind
	// Path is the navigation target when Kind is DecisionRedirect.
	Path string
}

// Allowed returns true if the decision permits the route to render.
func (d Decision) Allowed() bool {
	return d.Kind == DecisionAllow
}

// Decide evaluates a session against the set of roles a route requires and
// returns an allow, loading, or redirect decision. An empty requiredRoles
// means any authenticated user may proceed. Role matching is exact
// membership; no role implies another.
func Decide(session sdk.Session, requiredRoles []sdk.Role) Decision {
	if session.Phase == sdk.PhaseBootstrapping {
		return Decision{Kind: DecisionShowLoading}
	}
	if session.Phase != sdk.PhaseAuthenticated || session.User == nil {
		return Decision{Kind: DecisionRedirect, Path: LoginPath}
	}
	if len(requiredRoles) == 0 {
		return Decision{Kind: DecisionAllow}
	}
	for _, role := range requiredRoles {
		if session.User.Role == role {
			return Decision{Kind: DecisionAllow}
		}
	}
	return Decision{Kind: DecisionRedirect, Path: UnauthorizedPath}
}
