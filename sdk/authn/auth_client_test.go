package authn

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

const testAccessToken = "littlepiglittlepigletmecomein"

func newTestClient(serverURL string) Client {
	return NewClient(
		&restmachinery.BaseClient{
			APIAddress: serverURL,
			HTTPClient: http.DefaultClient,
		},
	)
}

func TestClientProfile(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/auth/profile", r.URL.Path)
				fmt.Fprint(
					w,
					`{"user":{"id":7,"name":"Jane Doe","role":"doctor"}}`,
				)
			},
		),
	)
	defer server.Close()
	user, err := newTestClient(server.URL).Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, user.ID)
	require.Equal(t, sdk.RoleDoctor, user.Role)
}

func TestClientLogin(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/auth/login", r.URL.Path)
				reqObj := struct {
					Email    string `json:"email"`
					Password string `json:"password"`
				}{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqObj))
				require.Equal(t, "jane@hospital.org", reqObj.Email)
				require.Equal(t, "opensesame", reqObj.Password)
				fmt.Fprintf(
					w,
					`{"user":{"id":7,"name":"Jane Doe","role":"doctor"},`+
						`"access_token":%q}`,
					testAccessToken,
				)
			},
		),
	)
	defer server.Close()
	user, token, err := newTestClient(server.URL).Login(
		context.Background(),
		"jane@hospital.org",
		"opensesame",
	)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", user.Name)
	require.Equal(t, testAccessToken, token)
}

func TestClientLoginCookieOnlyTransport(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				// No access_token in the response; the session rides a cookie
				fmt.Fprint(w, `{"user":{"id":7,"name":"Jane Doe"}}`)
			},
		),
	)
	defer server.Close()
	user, token, err := newTestClient(server.URL).Login(
		context.Background(),
		"jane@hospital.org",
		"opensesame",
	)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", user.Name)
	require.Empty(t, token)
}

func TestClientRegisterDoctor(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/auth/register-doctor", r.URL.Path)
				registration := DoctorRegistration{}
				require.NoError(
					t,
					json.NewDecoder(r.Body).Decode(&registration),
				)
				require.Equal(t, "General Hospital", registration.Hospital)
				w.WriteHeader(http.StatusCreated)
				fmt.Fprint(
					w,
					`{"user":{"id":8,"name":"Jane Doe","role":"doctor"}}`,
				)
			},
		),
	)
	defer server.Close()
	user, _, err := newTestClient(server.URL).RegisterDoctor(
		context.Background(),
		DoctorRegistration{
			Name:     "Jane Doe",
			Email:    "jane@hospital.org",
			Password: "opensesame",
			Hospital: "General Hospital",
		},
	)
	require.NoError(t, err)
	require.Equal(t, sdk.RoleDoctor, user.Role)
}

func TestClientLogout(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/auth/logout", r.URL.Path)
				fmt.Fprint(w, `{"message":"Logged out successfully"}`)
			},
		),
	)
	defer server.Close()
	require.NoError(t, newTestClient(server.URL).Logout(context.Background()))
}
