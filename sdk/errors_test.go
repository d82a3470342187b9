package sdk

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{
			name:            "authentication error without reason",
			err:             NewErrAuthentication(""),
			expectedMessage: "Could not authenticate the request.",
		},
		{
			name: "authentication error with reason",
			err:  NewErrAuthentication("Invalid email or password"),
			expectedMessage: "Could not authenticate the request: " +
				"Invalid email or password",
		},
		{
			name:            "authorization error",
			err:             NewErrAuthorization(),
			expectedMessage: "The request is not authorized.",
		},
		{
			name:            "bad request error",
			err:             NewErrBadRequest("hospital is required"),
			expectedMessage: "Bad request: hospital is required",
		},
		{
			name:            "not found error without reason",
			err:             NewErrNotFound(""),
			expectedMessage: "The requested resource was not found.",
		},
		{
			name:            "internal server error",
			err:             NewErrInternalServer(),
			expectedMessage: "An internal server error occurred.",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedMessage, testCase.err.Error())
		})
	}
}

func TestErrorsUnmarshalServerPayload(t *testing.T) {
	err := &ErrAuthentication{}
	require.NoError(
		t,
		json.Unmarshal([]byte(`{"error":"Invalid email or password"}`), err),
	)
	require.Equal(t, "Invalid email or password", err.Reason)
}

func TestErrNetworkWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewErrNetwork(cause)
	require.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)
}
