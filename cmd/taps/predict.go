package main

import (
	"fmt"
	"strconv"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/core"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func predict(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("predict requires no arguments")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting taps client")
	}
	if _, err = requireRole(c.Context, client, sdk.RolePatient); err != nil {
		return err
	}

	prediction, err := client.Patients().Predict(
		c.Context,
		core.PredictionInput{
			Gender:     c.String(flagGender),
			Hemoglobin: c.Float64(flagHemoglobin),
			MCH:        c.Float64(flagMCH),
			MCHC:       c.Float64(flagMCHC),
			MCV:        c.Float64(flagMCV),
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf(
		"Prediction: %s (confidence %.2f)\n",
		prediction.Result,
		prediction.Confidence,
	)

	return nil
}

func parsePatientID(raw string) (int, error) {
	patientID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Errorf("%q is not a valid patient ID", raw)
	}
	return patientID, nil
}
