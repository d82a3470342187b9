package main

import (
	"fmt"
	"os"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/internal/signals"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "taps"
	app.Usage = "Work with the Transparent Anemia Prediction System"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage:   "The address of the TAPS API server",
		},
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "health",
			Usage:  "Check whether the API server is up",
			Action: health,
		},
		{
			Name:      "login",
			Usage:     "Log in to TAPS",
			ArgsUsage: "EMAIL",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagPassword,
					Aliases: []string{"p"},
					Usage:   "Specify the password non-interactively",
				},
			},
			Action: login,
		},
		{
			Name:   "logout",
			Usage:  "Log out of TAPS",
			Action: logout,
		},
		{
			Name:  "register-doctor",
			Usage: "Register a new doctor account and log in with it",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagName,
					Usage: "The doctor's full name",
				},
				&cli.StringFlag{
					Name:  flagEmail,
					Usage: "The doctor's email address",
				},
				&cli.StringFlag{
					Name:    flagPassword,
					Aliases: []string{"p"},
					Usage:   "The new account's password",
				},
				&cli.StringFlag{
					Name:  flagHospital,
					Usage: "The hospital the doctor practices at",
				},
			},
			Action: registerDoctor,
		},
		{
			Name:  "whoami",
			Usage: "Show the identity of the current session",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: whoami,
		},
		{
			Name:  "patient",
			Usage: "Manage patients (doctors only)",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List patients under your care",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: patientList,
				},
				{
					Name:  "register",
					Usage: "Register a new patient",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  flagName,
							Usage: "The patient's full name",
						},
						&cli.StringFlag{
							Name:  flagEmail,
							Usage: "The patient's email address",
						},
						&cli.IntFlag{
							Name:  flagAge,
							Usage: "The patient's age",
						},
						&cli.StringFlag{
							Name:  flagGender,
							Usage: "The patient's gender",
						},
					},
					Action: patientRegister,
				},
				{
					Name:      "predictions",
					Usage:     "List a patient's predictions",
					ArgsUsage: "PATIENT_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: patientPredictions,
				},
				{
					Name:      "export",
					Usage:     "Export a patient's predictions as CSV",
					ArgsUsage: "PATIENT_ID",
					Action:    patientExport,
				},
			},
		},
		{
			Name:  "predict",
			Usage: "Submit blood panel values for a prediction (patients only)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagGender,
					Usage: "Gender",
				},
				&cli.Float64Flag{
					Name:  flagHemoglobin,
					Usage: "Hemoglobin (g/dL)",
				},
				&cli.Float64Flag{
					Name:  flagMCH,
					Usage: "Mean corpuscular hemoglobin (pg)",
				},
				&cli.Float64Flag{
					Name:  flagMCHC,
					Usage: "Mean corpuscular hemoglobin concentration (g/dL)",
				},
				&cli.Float64Flag{
					Name:  flagMCV,
					Usage: "Mean corpuscular volume (fL)",
				},
			},
			Action: predict,
		},
		{
			Name:  "prescription",
			Usage: "Manage prescriptions",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Issue a prescription for a patient (doctors only)",
					ArgsUsage: "PATIENT_ID",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  flagMedication,
							Usage: "The prescribed medication",
						},
						&cli.StringFlag{
							Name:  flagDosage,
							Usage: "The prescribed dosage",
						},
						&cli.StringFlag{
							Name:  flagInstructions,
							Usage: "Additional instructions",
						},
					},
					Action: prescriptionCreate,
				},
				{
					Name:  "list",
					Usage: "List your prescriptions (patients only)",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: prescriptionList,
				},
			},
		},
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
