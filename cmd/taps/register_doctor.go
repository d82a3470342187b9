package main

import (
	"fmt"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/authn"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func registerDoctor(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("register-doctor requires no arguments")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting taps client")
	}

	result := client.Session().RegisterDoctor(
		c.Context,
		authn.DoctorRegistration{
			Name:     c.String(flagName),
			Email:    c.String(flagEmail),
			Password: c.String(flagPassword),
			Hospital: c.String(flagHospital),
		},
	)
	if !result.OK {
		return errors.New(result.Message)
	}

	fmt.Printf(
		"Registration was successful. You are logged in as %s.\n",
		result.User.Name,
	)

	return nil
}
