package authn

import (
	"context"
	"net/http"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/internal/restmachinery"
)

// Client is the specialized client for the TAPS API's authentication
// endpoints.
type Client interface {
	// Profile returns the user associated with the current session.
	Profile(context.Context) (sdk.User, error)
	// Login establishes a session with the given credentials. When the server
	// transports the session as a bearer token, the token is returned
	// alongside the user; a cookie-only server returns an empty token.
	Login(ctx context.Context, email, password string) (sdk.User, string, error)
	// RegisterDoctor registers a new doctor and establishes a session for the
	// new account, with the same token semantics as Login.
	RegisterDoctor(
		ctx context.Context,
		registration DoctorRegistration,
	) (sdk.User, string, error)
	// Logout destroys the server-side session.
	Logout(context.Context) error
}

type client struct {
	*restmachinery.BaseClient
}

// NewClient returns a specialized client for the TAPS API's authentication
// endpoints.
func NewClient(baseClient *restmachinery.BaseClient) Client {
	return &client{
		BaseClient: baseClient,
	}
}

// sessionResponse is the body returned by the endpoints that establish a
// session. AccessToken is absent when the server relies on a cookie instead.
type sessionResponse struct {
	User        sdk.User `json:"user"`
	AccessToken string   `json:"access_token"`
}

func (c *client) Profile(ctx context.Context) (sdk.User, error) {
	respObj := struct {
		User sdk.User `json:"user"`
	}{}
	return respObj.User, c.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "auth/profile",
			SuccessCode: http.StatusOK,
			RespObj:     &respObj,
		},
	)
}

func (c *client) Login(
	ctx context.Context,
	email string,
	password string,
) (sdk.User, string, error) {
	respObj := sessionResponse{}
	err := c.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   "auth/login",
			ReqBodyObj: struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}{
				Email:    email,
				Password: password,
			},
			SuccessCode:      http.StatusOK,
			RespObj:          &respObj,
			CredentialsEntry: true,
		},
	)
	return respObj.User, respObj.AccessToken, err
}

func (c *client) RegisterDoctor(
	ctx context.Context,
	registration DoctorRegistration,
) (sdk.User, string, error) {
	respObj := sessionResponse{}
	err := c.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:           http.MethodPost,
			Path:             "auth/register-doctor",
			ReqBodyObj:       registration,
			SuccessCode:      http.StatusCreated,
			RespObj:          &respObj,
			CredentialsEntry: true,
		},
	)
	return respObj.User, respObj.AccessToken, err
}

func (c *client) Logout(ctx context.Context) error {
	return c.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "auth/logout",
			ReqBodyObj:  struct{}{},
			SuccessCode: http.StatusOK,
		},
	)
}
