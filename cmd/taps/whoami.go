package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func whoami(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("whoami requires no arguments")
	}

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting taps client")
	}

	client.Session().Bootstrap(c.Context)
	session := client.Session().CurrentSession()
	if session.Phase != sdk.PhaseAuthenticated {
		fmt.Println("You are not logged in.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("NAME", "EMAIL", "ROLE", "HOSPITAL")
		table.AddRow(
			session.User.Name,
			session.User.Email,
			session.User.Role,
			session.User.Hospital,
		)
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(session.User, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from whoami operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
