package authn

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// DoctorRegistration is the profile submitted to register a new doctor.
type DoctorRegistration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Hospital string `json:"hospital"`
}

var doctorRegistrationSchemaLoader = gojsonschema.NewStringLoader(`
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "doctor registration",
	"type": "object",
	"required": ["name", "email", "password", "hospital"],
	"properties": {
		"name": {
			"type": "string",
			"minLength": 1
		},
		"email": {
			"type": "string",
			"minLength": 3,
			"pattern": "^.+@.+$"
		},
		"password": {
			"type": "string",
			"minLength": 1
		},
		"hospital": {
			"type": "string",
			"minLength": 1
		}
	}
}
`)

// Validate checks the registration against the doctor registration schema.
// It returns the validation problems found, if any. A registration with
// problems never reaches the network.
func (d DoctorRegistration) Validate() ([]string, error) {
	registrationBytes, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling registration")
	}
	validationResult, err := gojsonschema.Validate(
		doctorRegistrationSchemaLoader,
		gojsonschema.NewBytesLoader(registrationBytes),
	)
	if err != nil {
		return nil, errors.Wrap(err, "error validating registration")
	}
	if validationResult.Valid() {
		return nil, nil
	}
	problems := make([]string, len(validationResult.Errors()))
	for i, verr := range validationResult.Errors() {
		problems[i] = verr.String()
	}
	return problems, nil
}
