package api

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/authn"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/core"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/internal/fakeapi"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	path        string
	navigations []string
}

func (r *recordingNavigator) CurrentPath() string {
	return r.path
}

func (r *recordingNavigator) NavigateTo(path string) {
	r.navigations = append(r.navigations, path)
}

func newTestClient(
	t *testing.T,
	serverURL string,
) (Client, authn.TokenStore, *recordingNavigator) {
	store := authn.NewMemoryTokenStore()
	navigator := &recordingNavigator{
		path: "/dashboard",
	}
	client, err := NewClient(
		ClientOptions{
			APIAddress: serverURL,
			TokenStore: store,
			Navigator:  navigator,
		},
	)
	require.NoError(t, err)
	return client, store, navigator
}

func TestClientBearerTokenSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	fakeAPI := fakeapi.NewServer()
	fakeAPI.AddUser("Jane Doe", "jane@hospital.org", "opensesame", sdk.RoleDoctor)
	fakeAPI.AddUser("Alice", "alice@example.com", "xyzzy123", sdk.RolePatient)
	server := httptest.NewServer(fakeAPI)
	defer server.Close()

	client, store, navigator := newTestClient(t, server.URL)
	require.NoError(t, client.CheckHealth(ctx))

	// A fresh process with no stored token resolves to anonymous
	client.Session().Bootstrap(ctx)
	require.Equal(
		t,
		sdk.PhaseAnonymous,
		client.Session().CurrentSession().Phase,
	)

	result := client.Session().Login(ctx, "jane@hospital.org", "opensesame")
	require.True(t, result.OK)
	require.Equal(t, sdk.RoleDoctor, result.User.Role)
	require.NotEmpty(t, store.Load())

	patients, err := client.Doctors().ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	require.Equal(t, "Alice", patients[0].Name)

	// The server revokes the session out from under the client. The next
	// call's 401 must tear the local session down and redirect, not just
	// fail.
	fakeAPI.RevokeSessions()
	_, err = client.Doctors().ListPatients(ctx)
	require.Error(t, err)
	require.IsType(t, &sdk.ErrAuthentication{}, err)
	require.Equal(
		t,
		sdk.PhaseAnonymous,
		client.Session().CurrentSession().Phase,
	)
	require.Empty(t, store.Load())
	require.Equal(t, []string{authn.LoginPath}, navigator.navigations)
}

func TestClientCookieSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	fakeAPI := fakeapi.NewServer()
	fakeAPI.SetTransport(fakeapi.TransportCookie)
	fakeAPI.AddUser("Jane Doe", "jane@hospital.org", "opensesame", sdk.RoleDoctor)
	server := httptest.NewServer(fakeAPI)
	defer server.Close()

	client, store, _ := newTestClient(t, server.URL)

	result := client.Session().Login(ctx, "jane@hospital.org", "opensesame")
	require.True(t, result.OK)
	// The cookie jar carries the whole session; no token is ever stored
	require.Empty(t, store.Load())

	client.Session().FetchProfile(ctx)
	session := client.Session().CurrentSession()
	require.Equal(t, sdk.PhaseAuthenticated, session.Phase)
	require.Equal(t, "Jane Doe", session.User.Name)

	_, err := client.Doctors().ListPatients(ctx)
	require.NoError(t, err)

	client.Session().Logout(ctx)
	require.Equal(
		t,
		sdk.PhaseAnonymous,
		client.Session().CurrentSession().Phase,
	)
}

func TestClientFailedLoginDoesNotInvalidate(t *testing.T) {
	ctx := context.Background()
	fakeAPI := fakeapi.NewServer()
	fakeAPI.AddUser("Jane Doe", "jane@hospital.org", "opensesame", sdk.RoleDoctor)
	server := httptest.NewServer(fakeAPI)
	defer server.Close()

	client, store, navigator := newTestClient(t, server.URL)
	require.True(
		t,
		client.Session().Login(ctx, "jane@hospital.org", "opensesame").OK,
	)

	// A wrong-password 401 is a failed credential entry, not an invalidated
	// session; the established session must survive it untouched.
	result := client.Session().Login(ctx, "jane@hospital.org", "wrong")
	require.False(t, result.OK)
	require.Equal(t, "Invalid email or password", result.Message)
	require.Equal(
		t,
		sdk.PhaseAuthenticated,
		client.Session().CurrentSession().Phase,
	)
	require.NotEmpty(t, store.Load())
	require.Empty(t, navigator.navigations)
}

func TestClientDoctorAndPatientWorkflows(t *testing.T) {
	ctx := context.Background()
	fakeAPI := fakeapi.NewServer()
	fakeAPI.AddUser("Jane Doe", "jane@hospital.org", "opensesame", sdk.RoleDoctor)
	server := httptest.NewServer(fakeAPI)
	defer server.Close()

	doctor, _, _ := newTestClient(t, server.URL)
	require.True(
		t,
		doctor.Session().Login(ctx, "jane@hospital.org", "opensesame").OK,
	)

	credentials, err := doctor.Doctors().RegisterPatient(
		ctx,
		core.PatientRegistration{
			Name:  "Alice",
			Email: "alice@example.com",
		},
	)
	require.NoError(t, err)
	require.NotEmpty(t, credentials.GeneratedPassword)

	// The patient signs in with the handed-over generated password
	patient, _, _ := newTestClient(t, server.URL)
	require.True(
		t,
		patient.Session().Login(
			ctx,
			"alice@example.com",
			credentials.GeneratedPassword,
		).OK,
	)

	prediction, err := patient.Patients().Predict(
		ctx,
		core.PredictionInput{
			Gender:     "female",
			Hemoglobin: 10.5,
			MCH:        27.1,
			MCHC:       33.2,
			MCV:        88.4,
		},
	)
	require.NoError(t, err)
	require.Equal(t, "anemic", prediction.Result)

	// A patient cannot reach doctor-facing endpoints
	_, err = patient.Doctors().ListPatients(ctx)
	require.IsType(t, &sdk.ErrAuthorization{}, err)
	// A rejected role does not tear the patient's session down
	require.Equal(
		t,
		sdk.PhaseAuthenticated,
		patient.Session().CurrentSession().Phase,
	)

	// The doctor sees the patient's prediction and prescribes
	predictions, err := doctor.Doctors().ListPatientPredictions(
		ctx,
		credentials.User.ID,
	)
	require.NoError(t, err)
	require.Len(t, predictions, 1)

	prescription, err := doctor.Doctors().CreatePrescription(
		ctx,
		credentials.User.ID,
		core.PrescriptionSpec{
			Medication: "Ferrous sulfate",
			Dosage:     "325mg",
		},
	)
	require.NoError(t, err)
	require.Equal(t, credentials.User.ID, prescription.PatientID)

	// The patient's dashboard reflects both
	dashboard, err := patient.Patients().Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, dashboard.Predictions, 1)
	require.Len(t, dashboard.Prescriptions, 1)

	csvBytes, err := doctor.Doctors().ExportPredictions(
		ctx,
		credentials.User.ID,
	)
	require.NoError(t, err)
	require.Contains(t, string(csvBytes), "anemic")
}
