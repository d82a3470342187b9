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

func patientPredictions(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"patient predictions requires one argument-- a patient ID",
		)
	}
	patientID, err := parsePatientID(c.Args().Get(0))
	if err != nil {
		return err
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

	predictions, err := client.Doctors().ListPatientPredictions(
		c.Context,
		patientID,
	)
	if err != nil {
		return err
	}

	if len(predictions) == 0 {
		fmt.Println("No predictions found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "RESULT", "CONFIDENCE", "CREATED")
		for _, prediction := range predictions {
			table.AddRow(
				prediction.ID,
				prediction.Result,
				fmt.Sprintf("%.2f", prediction.Confidence),
				prediction.Created,
			)
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(predictions, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list predictions operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}

func patientExport(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"patient export requires one argument-- a patient ID",
		)
	}
	patientID, err := parsePatientID(c.Args().Get(0))
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting taps client")
	}
	if _, err = requireRole(c.Context, client, sdk.RoleDoctor); err != nil {
		return err
	}

	csvBytes, err := client.Doctors().ExportPredictions(c.Context, patientID)
	if err != nil {
		return err
	}
	fmt.Print(string(csvBytes))

	return nil
}
