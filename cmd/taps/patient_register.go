package main

import (
	"fmt"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func patientRegister(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("patient register requires no arguments")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting taps client")
	}
	if _, err = requireRole(c.Context, client, sdk.RoleDoctor); err != nil {
		return err
	}

	credentials, err := client.Doctors().RegisterPatient(
		c.Context,
		core.PatientRegistration{
			Name:   c.String(flagName),
			Email:  c.String(flagEmail),
			Age:    c.Int(flagAge),
			Gender: c.String(flagGender),
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf(
		"Patient %q registered with ID %d.\n",
		credentials.User.Name,
		credentials.User.ID,
	)
	// The generated password is shown exactly once; the server never returns
	// it again.
	fmt.Printf("Generated password: %s\n", credentials.GeneratedPassword)

	return nil
}
