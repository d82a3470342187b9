package api

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/cookiejar"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/authn"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/core"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/internal/restmachinery"
	"github.com/pkg/errors"
)

// Client is the root of a tree of more specialized TAPS API clients, all
// sharing one session controller, one token store, and one underlying HTTP
// client (so a server-set session cookie authenticates every call, same as a
// bearer token would).
type Client interface {
	// Session returns the session controller, the single source of truth for
	// who is logged in.
	Session() *authn.Controller
	// Doctors returns the specialized client for doctor-facing endpoints.
	Doctors() core.DoctorsClient
	// Patients returns the specialized client for patient-facing endpoints.
	Patients() core.PatientsClient
	// CheckHealth confirms the API server is reachable.
	CheckHealth(context.Context) error
}

// ClientOptions configures a Client.
type ClientOptions struct {
	// APIAddress is the base address of the TAPS API.
	APIAddress string
	// AllowInsecure permits TLS connections with unverifiable certificates.
	AllowInsecure bool
	// TokenStore, when nil, defaults to the durable file-backed store under
	// the user's home directory.
	TokenStore authn.TokenStore
	// Navigator, when non-nil, is steered to the login screen when the
	// session is invalidated.
	Navigator authn.Navigator
}

type client struct {
	*restmachinery.BaseClient
	sessionController *authn.Controller
	doctorsClient     core.DoctorsClient
	patientsClient    core.PatientsClient
}

// NewClient returns a new Client.
func NewClient(opts ClientOptions) (Client, error) {
	store := opts.TokenStore
	if store == nil {
		var err error
		if store, err = authn.NewFileTokenStore(); err != nil {
			return nil, errors.Wrap(err, "error initializing token store")
		}
	}

	// The jar carries a server-set session cookie; the token source carries a
	// bearer token. Whichever transport the server uses works without any
	// branching here or anywhere downstream.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "error initializing cookie jar")
	}

	bus := authn.NewEventBus()
	baseClient := &restmachinery.BaseClient{
		APIAddress:  opts.APIAddress,
		TokenSource: store.Load,
		HTTPClient: &http.Client{
			Jar: jar,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: opts.AllowInsecure,
				},
			},
		},
		OnUnauthorized: bus.Publish,
	}

	return &client{
		BaseClient: baseClient,
		sessionController: authn.NewController(
			authn.NewClient(baseClient),
			store,
			bus,
			opts.Navigator,
		),
		doctorsClient:  core.NewDoctorsClient(baseClient),
		patientsClient: core.NewPatientsClient(baseClient),
	}, nil
}

func (c *client) Session() *authn.Controller {
	return c.sessionController
}

func (c *client) Doctors() core.DoctorsClient {
	return c.doctorsClient
}

func (c *client) Patients() core.PatientsClient {
	return c.patientsClient
}

func (c *client) CheckHealth(ctx context.Context) error {
	return c.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "health",
			SuccessCode: http.StatusOK,
		},
	)
}
