package core

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/internal/restmachinery"
)

// PatientsClient is the specialized client for the TAPS API's patient-facing
// endpoints.
type PatientsClient interface {
	// Predict submits blood panel values and returns the resulting
	// prediction.
	Predict(context.Context, PredictionInput) (Prediction, error)
	// ListPredictions returns the calling patient's own predictions.
	ListPredictions(context.Context) ([]Prediction, error)
	// ListPrescriptions returns the prescriptions issued to the given
	// patient.
	ListPrescriptions(
		ctx context.Context,
		patientID int,
	) ([]Prescription, error)
	// Dashboard returns a summary of the calling patient's record.
	Dashboard(context.Context) (Dashboard, error)
}

type patientsClient struct {
	*restmachinery.BaseClient
}

// NewPatientsClient returns a specialized client for the TAPS API's
// patient-facing endpoints.
func NewPatientsClient(baseClient *restmachinery.BaseClient) PatientsClient {
	return &patientsClient{
		BaseClient: baseClient,
	}
}

func (p *patientsClient) Predict(
	ctx context.Context,
	input PredictionInput,
) (Prediction, error) {
	respObj := struct {
		Prediction Prediction `json:"prediction"`
	}{}
	return respObj.Prediction, p.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "patients/predict",
			ReqBodyObj:  input,
			SuccessCode: http.StatusOK,
			RespObj:     &respObj,
		},
	)
}

func (p *patientsClient) ListPredictions(
	ctx context.Context,
) ([]Prediction, error) {
	respObj := struct {
		Predictions []Prediction `json:"predictions"`
	}{}
	return respObj.Predictions, p.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "patients/predictions",
			SuccessCode: http.StatusOK,
			RespObj:     &respObj,
		},
	)
}

func (p *patientsClient) ListPrescriptions(
	ctx context.Context,
	patientID int,
) ([]Prescription, error) {
	respObj := struct {
		Prescriptions []Prescription `json:"prescriptions"`
	}{}
	return respObj.Prescriptions, p.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("patients/%d/prescriptions", patientID),
			SuccessCode: http.StatusOK,
			RespObj:     &respObj,
		},
	)
}

func (p *patientsClient) Dashboard(ctx context.Context) (Dashboard, error) {
	dashboard := Dashboard{}
	return dashboard, p.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "patients/dashboard",
			SuccessCode: http.StatusOK,
			RespObj:     &dashboard,
		},
	)
}
