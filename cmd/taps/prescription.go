package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/core"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func prescriptionCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"prescription create requires one argument-- a patient ID",
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

	prescription, err := client.Doctors().CreatePrescription(
		c.Context,
		patientID,
		core.PrescriptionSpec{
			Medication:   c.String(flagMedication),
			Dosage:       c.String(flagDosage),
			Instructions: c.String(flagInstructions),
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Created prescription %d.\n", prescription.ID)

	return nil
}

func prescriptionList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("prescription list requires no arguments")
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
	session, err := requireRole(c.Context, client, sdk.RolePatient)
	if err != nil {
		return err
	}

	prescriptions, err := client.Patients().ListPrescriptions(
		c.Context,
		session.User.ID,
	)
	if err != nil {
		return err
	}

	if len(prescriptions) == 0 {
		fmt.Println("No prescriptions found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "MEDICATION", "DOSAGE", "INSTRUCTIONS")
		for _, prescription := range prescriptions {
			table.AddRow(
				prescription.ID,
				prescription.Medication,
				prescription.Dosage,
				prescription.Instructions,
			)
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(prescriptions, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list prescriptions operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
