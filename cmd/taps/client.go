package main

import (
	"context"
	"fmt"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/api"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/authn"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// terminalNavigator is the CLI's stand-in for a navigation surface. There is
// no screen to redirect, so an invalidation-driven "redirect to login" turns
// into a message telling the user to log in again.
type terminalNavigator struct{}

func (t terminalNavigator) CurrentPath() string {
	return ""
}

func (t terminalNavigator) NavigateTo(path string) {
	if path == authn.LoginPath {
		fmt.Println("Your session is no longer valid. Please use `taps login`.")
	}
}

func getClient(c *cli.Context) (api.Client, error) {
	config, err := getConfig()
	if err != nil {
		return nil, errors.Wrap(err, "error retrieving configuration")
	}
	if c.String(flagServer) != "" {
		config.APIAddress = c.String(flagServer)
	}
	if c.Bool(flagInsecure) {
		config.AllowInsecure = true
	}
	return api.NewClient(
		api.ClientOptions{
			APIAddress:    config.APIAddress,
			AllowInsecure: config.AllowInsecure,
			Navigator:     terminalNavigator{},
		},
	)
}

// requireRole bootstraps the session and evaluates it the way a screen's
// route guard would, returning the session for commands that pass the check.
func requireRole(
	ctx context.Context,
	client api.Client,
	roles ...sdk.Role,
) (sdk.Session, error) {
	client.Session().Bootstrap(ctx)
	session := client.Session().CurrentSession()
	decision := authn.Decide(session, roles)
	if decision.Allowed() {
		return session, nil
	}
	if decision.Path == authn.UnauthorizedPath {
		return session, errors.Errorf(
			"this command requires one of the following roles: %v",
			roles,
		)
	}
	return session, errors.New(
		"you are not logged in; please use `taps login`",
	)
}
