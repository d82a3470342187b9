package authn

import (
	"context"
	"strings"
	"sync"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/golang/glog"
	uuid "github.com/satori/go.uuid"
)

// Navigator abstracts the navigation surface the session controller steers
// when a session is invalidated out from under the user.
type Navigator interface {
	// CurrentPath returns the path the user is currently looking at.
	CurrentPath() string
	// NavigateTo sends the user to the given path.
	NavigateTo(path string)
}

// Result is the outcome of an operation that attempts to establish a
// session. Operations return a Result instead of an error so callers (forms)
// can render the message inline without classifying anything themselves.
type Result struct {
	// OK indicates the operation succeeded.
	OK bool
	// User is the authenticated user when OK is true.
	User sdk.User
	// Message is a human-readable explanation when OK is false.
	Message string
	// Cause is the underlying typed error for failures that reached the
	// network; nil for purely local validation failures.
	Cause error
}

// Controller owns the authoritative in-memory session state. It is the sole
// writer of its TokenStore, the sole reactor to session-invalidation events,
// and is constructed explicitly and passed by reference to whatever consumes
// it; there is no package-global session.
type Controller struct {
	mu      sync.Mutex
	session sdk.Session
	// epoch is bumped by every operation that tears the session down. An
	// in-flight operation records the epoch it started under and discards its
	// result if the epoch has moved on, so a stale response can never
	// resurrect a session the user has already left.
	epoch     uint64
	client    Client
	store     TokenStore
	navigator Navigator
	observers []*observer
	// unsubscribe releases the controller's event bus subscription.
	unsubscribe func()
}

type observer struct {
	id      string
	handler func(sdk.Session)
}

// NewController returns a Controller subscribed to the given event bus. The
// session starts in PhaseBootstrapping; the caller is expected to invoke
// Bootstrap once to resolve it. The navigator may be nil for consumers with
// no navigation surface.
func NewController(
	client Client,
	store TokenStore,
	bus *EventBus,
	navigator Navigator,
) *Controller {
	c := &Controller{
		session: sdk.Session{
			Phase: sdk.PhaseBootstrapping,
		},
		client:    client,
		store:     store,
		navigator: navigator,
	}
	c.unsubscribe = bus.Subscribe(c.handleInvalidated)
	return c
}

// CurrentSession returns a copy of the current session.
func (c *Controller) CurrentSession() sdk.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionCopyLocked()
}

// OnChange registers a handler invoked with a copy of the session after
// every transition. It returns a function that removes the handler.
func (c *Controller) OnChange(handler func(sdk.Session)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	obs := &observer{
		id:      uuid.NewV4().String(),
		handler: handler,
	}
	c.observers = append(c.observers, obs)
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, o := range c.observers {
			if o.id == obs.id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				break
			}
		}
	}
}

// Bootstrap probes the profile endpoint to resolve the initial
// PhaseBootstrapping into a terminal phase. It never surfaces an error: a
// failed probe, for any reason, resolves to PhaseAnonymous.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.FetchProfile(ctx)
}

// FetchProfile refreshes the session's user from the profile endpoint. On
// success the session is (or remains) authenticated; on any failure,
// including the server being unreachable, the session resolves to
// PhaseAnonymous. The absence of a session is the expected steady state for
// anonymous visitors, so no error is ever surfaced.
func (c *Controller) FetchProfile(ctx context.Context) {
	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	user, err := c.client.Profile(ctx)

	c.mu.Lock()
	if c.epoch != epoch {
		// The session was torn down while this probe was in flight; its
		// result is no longer authoritative.
		c.mu.Unlock()
		glog.V(2).Info("discarding stale profile result")
		return
	}
	var notify func()
	if err != nil {
		glog.V(2).Infof("no authenticated user: %s", err)
		notify = c.setSessionLocked(
			sdk.Session{
				Phase: sdk.PhaseAnonymous,
			},
		)
	} else {
		notify = c.setSessionLocked(
			sdk.Session{
				User:       &user,
				Credential: c.store.Load(),
				Phase:      sdk.PhaseAuthenticated,
			},
		)
	}
	c.mu.Unlock()
	notify()
}

// Login attempts to establish a session with the given credentials. The
// email is normalized (trimmed, lowercased) before transmission. Missing
// credentials fail fast with a local validation message and never reach the
// network. A failed login does not change the session's phase.
func (c *Controller) Login(
	ctx context.Context,
	email string,
	password string,
) Result {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Result{
			Message: "Email and password are required",
		}
	}

	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	user, token, err := c.client.Login(ctx, email, password)
	if err != nil {
		return Result{
			Message: failureMessage(err, "Login failed"),
			Cause:   err,
		}
	}
	c.establishSession(epoch, user, token)
	return Result{
		OK:   true,
		User: user,
	}
}

// RegisterDoctor registers a new doctor account and, on success, establishes
// a session for it. The resulting user's role is always RoleDoctor. The
// registration is validated locally first; an invalid one never reaches the
// network.
func (c *Controller) RegisterDoctor(
	ctx context.Context,
	registration DoctorRegistration,
) Result {
	registration.Email = strings.ToLower(strings.TrimSpace(registration.Email))
	problems, err := registration.Validate()
	if err != nil {
		return Result{
			Message: "Registration failed",
			Cause:   err,
		}
	}
	if len(problems) > 0 {
		return Result{
			Message: strings.Join(problems, "; "),
		}
	}

	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	user, token, err := c.client.RegisterDoctor(ctx, registration)
	if err != nil {
		return Result{
			Message: failureMessage(err, "Registration failed"),
			Cause:   err,
		}
	}
	c.establishSession(epoch, user, token)
	return Result{
		OK:   true,
		User: user,
	}
}

// Logout tears the session down. The server-side session is deleted on a
// best-effort basis; even if that fails, the local session always clears.
// Logout does not navigate.
func (c *Controller) Logout(ctx context.Context) {
	// Ignoring any error here because even if the session wasn't found and
	// deleted server-side, we still want to destroy the local session.
	if err := c.client.Logout(ctx); err != nil {
		glog.Warningf("error deleting server-side session: %s", err)
	}
	c.teardown(false)
}

// Close releases the controller's event bus subscription.
func (c *Controller) Close() {
	c.unsubscribe()
}

// establishSession applies a successful login or registration, unless the
// session was torn down while the request was in flight, in which case the
// result is discarded: it belongs to an auth attempt the user has abandoned.
func (c *Controller) establishSession(epoch uint64, user sdk.User, token string) {
	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		glog.V(2).Info("discarding login result superseded by logout")
		return
	}
	if token != "" {
		c.store.Save(token)
	}
	notify := c.setSessionLocked(
		sdk.Session{
			User:       &user,
			Credential: token,
			Phase:      sdk.PhaseAuthenticated,
		},
	)
	c.mu.Unlock()
	notify()
}

// handleInvalidated reacts to a session-invalidation event from the bus.
// Multiple concurrent requests can each fail with 401 and each publish, so
// the reaction must be idempotent: clearing an already-anonymous session is
// a no-op and navigation happens at most once per net transition, and never
// when the user is already on a login or registration screen.
func (c *Controller) handleInvalidated() {
	c.teardown(true)
}

func (c *Controller) teardown(navigate bool) {
	c.store.Clear()
	c.mu.Lock()
	c.epoch++
	if c.session.Phase == sdk.PhaseAnonymous {
		c.mu.Unlock()
		return
	}
	// A bootstrap probe failing is just an anonymous visitor being
	// recognized as one; only losing an established session warrants a
	// redirect.
	wasAuthenticated := c.session.Phase == sdk.PhaseAuthenticated
	notify := c.setSessionLocked(
		sdk.Session{
			Phase: sdk.PhaseAnonymous,
		},
	)
	c.mu.Unlock()
	notify()
	if navigate && wasAuthenticated && c.navigator != nil {
		if p := c.navigator.CurrentPath(); p != LoginPath &&
			p != RegisterDoctorPath {
			c.navigator.NavigateTo(LoginPath)
		}
	}
}

// setSessionLocked replaces the session and returns a function, to be called
// after the lock is released, that delivers the transition to every
// observer.
func (c *Controller) setSessionLocked(session sdk.Session) func() {
	c.session = session
	sessionCopy := c.sessionCopyLocked()
	handlers := make([]func(sdk.Session), len(c.observers))
	for i, o := range c.observers {
		handlers[i] = o.handler
	}
	return func() {
		for _, handler := range handlers {
			handler(sessionCopy)
		}
	}
}

func (c *Controller) sessionCopyLocked() sdk.Session {
	sessionCopy := c.session
	if c.session.User != nil {
		userCopy := *c.session.User
		sessionCopy.User = &userCopy
	}
	return sessionCopy
}

func failureMessage(err error, fallback string) string {
	switch e := err.(type) {
	case *sdk.ErrAuthentication:
		if e.Reason != "" {
			return e.Reason
		}
	case *sdk.ErrBadRequest:
		if e.Reason != "" {
			return e.Reason
		}
	case *sdk.ErrNetwork:
		return "Unable to reach the server. Please try again."
	}
	return fallback
}
