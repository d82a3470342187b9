package core

import (
	"time"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
)

// Patient represents a patient under a doctor's care.
type Patient struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// PatientRegistration is the profile a doctor submits to register a new
// patient. The server generates the patient's initial password.
type PatientRegistration struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// NewPatientCredentials is returned when a doctor registers a patient. It
// carries the server-generated password that the doctor hands to the
// patient; the server never stores or returns it again.
type NewPatientCredentials struct {
	User              sdk.User `json:"user"`
	GeneratedPassword string   `json:"generated_password"`
}

// PredictionInput is the set of blood panel values a prediction is made
// from. No clinical validation happens on the client; the server owns the
// value ranges.
type PredictionInput struct {
	Gender     string  `json:"gender"`
	Hemoglobin float64 `json:"hemoglobin"`
	MCH        float64 `json:"mch"`
	MCHC       float64 `json:"mchc"`
	MCV        float64 `json:"mcv"`
}

// Prediction is the outcome of one anemia prediction.
type Prediction struct {
	ID         int             `json:"id"`
	PatientID  int             `json:"patient_id"`
	Input      PredictionInput `json:"input"`
	Result     string          `json:"result"`
	Confidence float64         `json:"confidence"`
	Created    *time.Time      `json:"created_at,omitempty"`
}

// PrescriptionSpec is the writable portion of a prescription.
type PrescriptionSpec struct {
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions,omitempty"`
}

// Prescription represents a prescription issued by a doctor for a patient.
type Prescription struct {
	PrescriptionSpec `json:",inline"`
	ID               int        `json:"id"`
	PatientID        int        `json:"patient_id"`
	DoctorID         int        `json:"doctor_id"`
	Created          *time.Time `json:"created_at,omitempty"`
}

// Dashboard summarizes a patient's own record.
type Dashboard struct {
	User          sdk.User       `json:"user"`
	Predictions   []Prediction   `json:"predictions"`
	Prescriptions []Prescription `json:"prescriptions"`
}
