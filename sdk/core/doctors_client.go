package core

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/internal/restmachinery"
	"github.com/pkg/errors"
)

// DoctorsClient is the specialized client for the TAPS API's doctor-facing
// endpoints. It holds no session state of its own; every call rides the
// shared choke point, so an invalidated session anywhere is detected here
// too.
type DoctorsClient interface {
	// ListPatients returns all patients under the calling doctor's care.
	ListPatients(context.Context) ([]Patient, error)
	// RegisterPatient registers a new patient and returns the generated
	// credentials.
	RegisterPatient(
		ctx context.Context,
		registration PatientRegistration,
	) (NewPatientCredentials, error)
	// ListPatientPredictions returns the given patient's predictions.
	ListPatientPredictions(
		ctx context.Context,
		patientID int,
	) ([]Prediction, error)
	// CreatePrescription issues a prescription for the given patient.
	CreatePrescription(
		ctx context.Context,
		patientID int,
		spec PrescriptionSpec,
	) (Prescription, error)
	// ExportPredictions returns the given patient's predictions as a CSV
	// document.
	ExportPredictions(ctx context.Context, patientID int) ([]byte, error)
}

type doctorsClient struct {
	*restmachinery.BaseClient
}

// NewDoctorsClient returns a specialized client for the TAPS API's
// doctor-facing endpoints.
func NewDoctorsClient(baseClient *restmachinery.BaseClient) DoctorsClient {
	return &doctorsClient{
		BaseClient: baseClient,
	}
}

func (d *doctorsClient) ListPatients(ctx context.Context) ([]Patient, error) {
	respObj := struct {
		Patients []Patient `json:"patients"`
	}{}
	return respObj.Patients, d.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "doctor/patients",
			SuccessCode: http.StatusOK,
			RespObj:     &respObj,
		},
	)
}

func (d *doctorsClient) RegisterPatient(
	ctx context.Context,
	registration PatientRegistration,
) (NewPatientCredentials, error) {
	credentials := NewPatientCredentials{}
	return credentials, d.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "doctor/register-patient",
			ReqBodyObj:  registration,
			SuccessCode: http.StatusCreated,
			RespObj:     &credentials,
		},
	)
}

func (d *doctorsClient) ListPatientPredictions(
	ctx context.Context,
	patientID int,
) ([]Prediction, error) {
	respObj := struct {
		Predictions []Prediction `json:"predictions"`
	}{}
	return respObj.Predictions, d.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("doctor/patients/%d/predictions", patientID),
			SuccessCode: http.StatusOK,
			RespObj:     &respObj,
		},
	)
}

func (d *doctorsClient) CreatePrescription(
	ctx context.Context,
	patientID int,
	spec PrescriptionSpec,
) (Prescription, error) {
	prescription := Prescription{}
	return prescription, d.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        fmt.Sprintf("doctor/patients/%d/prescriptions", patientID),
			ReqBodyObj:  spec,
			SuccessCode: http.StatusCreated,
			RespObj:     &prescription,
		},
	)
}

func (d *doctorsClient) ExportPredictions(
	ctx context.Context,
	patientID int,
) ([]byte, error) {
	resp, err := d.SubmitRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodGet,
			Path: fmt.Sprintf(
				"doctor/patients/%d/predictions/export",
				patientID,
			),
			SuccessCode: http.StatusOK,
		},
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	csvBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading exported predictions")
	}
	return csvBytes, nil
}
