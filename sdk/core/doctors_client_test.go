package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/internal/restmachinery"
	"github.com/stretchr/testify/require"
)

func newTestDoctorsClient(serverURL string) DoctorsClient {
	return NewDoctorsClient(
		&restmachinery.BaseClient{
			APIAddress: serverURL,
			HTTPClient: http.DefaultClient,
		},
	)
}

func TestDoctorsClientListPatients(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/doctor/patients", r.URL.Path)
				fmt.Fprint(
					w,
					`{"patients":[`+
						`{"id":1,"name":"Alice","email":"alice@example.com"},`+
						`{"id":2,"name":"Bob","email":"bob@example.com"}]}`,
				)
			},
		),
	)
	defer server.Close()
	patients, err := newTestDoctorsClient(server.URL).ListPatients(
		context.Background(),
	)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	require.Equal(t, "Alice", patients[0].Name)
}

func TestDoctorsClientListPatientsUnauthorized(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprint(w, `{"error":"Doctor access required"}`)
			},
		),
	)
	defer server.Close()
	_, err := newTestDoctorsClient(server.URL).ListPatients(
		context.Background(),
	)
	require.Error(t, err)
	require.IsType(t, &sdk.ErrAuthorization{}, err)
}

func TestDoctorsClientRegisterPatient(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/doctor/register-patient", r.URL.Path)
				registration := PatientRegistration{}
				require.NoError(
					t,
					json.NewDecoder(r.Body).Decode(&registration),
				)
				require.Equal(t, "Alice", registration.Name)
				w.WriteHeader(http.StatusCreated)
				fmt.Fprint(
					w,
					`{"user":{"id":9,"name":"Alice","role":"patient"},`+
						`"generated_password":"xyzzy123"}`,
				)
			},
		),
	)
	defer server.Close()
	credentials, err := newTestDoctorsClient(server.URL).RegisterPatient(
		context.Background(),
		PatientRegistration{
			Name:  "Alice",
			Email: "alice@example.com",
		},
	)
	require.NoError(t, err)
	require.Equal(t, sdk.RolePatient, credentials.User.Role)
	require.Equal(t, "xyzzy123", credentials.GeneratedPassword)
}

func TestDoctorsClientListPatientPredictions(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/doctor/patients/9/predictions", r.URL.Path)
				fmt.Fprint(
					w,
					`{"predictions":[`+
						`{"id":1,"patient_id":9,"result":"anemic",`+
						`"confidence":0.9}]}`,
				)
			},
		),
	)
	defer server.Close()
	predictions, err := newTestDoctorsClient(
		server.URL,
	).ListPatientPredictions(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	require.Equal(t, "anemic", predictions[0].Result)
}

func TestDoctorsClientCreatePrescription(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(
					t,
					"/doctor/patients/9/prescriptions",
					r.URL.Path,
				)
				spec := PrescriptionSpec{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
				require.Equal(t, "Ferrous sulfate", spec.Medication)
				w.WriteHeader(http.StatusCreated)
				fmt.Fprint(
					w,
					`{"id":3,"patient_id":9,"doctor_id":7,`+
						`"medication":"Ferrous sulfate","dosage":"325mg"}`,
				)
			},
		),
	)
	defer server.Close()
	prescription, err := newTestDoctorsClient(server.URL).CreatePrescription(
		context.Background(),
		9,
		PrescriptionSpec{
			Medication: "Ferrous sulfate",
			Dosage:     "325mg",
		},
	)
	require.NoError(t, err)
	require.Equal(t, 3, prescription.ID)
	require.Equal(t, 9, prescription.PatientID)
}

func TestDoctorsClientExportPredictions(t *testing.T) {
	const csvDoc = "id,result,confidence\n1,anemic,0.9\n"
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(
					t,
					"/doctor/patients/9/predictions/export",
					r.URL.Path,
				)
				w.Header().Set("Content-Type", "text/csv")
				fmt.Fprint(w, csvDoc)
			},
		),
	)
	defer server.Close()
	csvBytes, err := newTestDoctorsClient(server.URL).ExportPredictions(
		context.Background(),
		9,
	)
	require.NoError(t, err)
	require.Equal(t, csvDoc, string(csvBytes))
}
