package main

import "github.com/urfave/cli/v2"

const (
	flagAge          = "age"
	flagDosage       = "dosage"
	flagEmail        = "email"
	flagGender       = "gender"
	flagHemoglobin   = "hemoglobin"
	flagHospital     = "hospital"
	flagInsecure     = "insecure"
	flagInstructions = "instructions"
	flagMCH          = "mch"
	flagMCHC         = "mchc"
	flagMCV          = "mcv"
	flagMedication   = "medication"
	flagName         = "name"
	flagOutput       = "output"
	flagPassword     = "password"
	flagServer       = "server"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "Return output in another format. Supported formats: table, json",
		Value:   "table",
	}
)
