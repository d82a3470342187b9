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

func patientList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("patient list requires no arguments")
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
	if _, err = requireRole(c.Context, client, sdk.RoleDoctor); err != nil {
		return err
	}

	patients, err := client.Doctors().ListPatients(c.Context)
	if err != nil {
		return err
	}

	if len(patients) == 0 {
		fmt.Println("No patients found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "EMAIL")
		for _, patient := range patients {
			table.AddRow(
				patient.ID,
				patient.Name,
				patient.Email,
			)
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(patients, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list patients operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
