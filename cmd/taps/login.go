package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func login(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"login requires one argument-- the email address to log in with",
		)
	}
	email := c.Args().Get(0)
	password := c.String(flagPassword)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting taps client")
	}

	result := client.Session().Login(c.Context, email, password)
	if !result.OK {
		return errors.New(result.Message)
	}

	// Remember which server we logged in to
	config, err := getConfig()
	if err != nil {
		return errors.Wrap(err, "error retrieving configuration")
	}
	if c.String(flagServer) != "" {
		config.APIAddress = c.String(flagServer)
	}
	if c.Bool(flagInsecure) {
		config.AllowInsecure = true
	}
	if err := saveConfig(config); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	fmt.Printf(
		"Login was successful. You are logged in as %s (%s).\n",
		result.User.Name,
		result.User.Role,
	)

	return nil
}
