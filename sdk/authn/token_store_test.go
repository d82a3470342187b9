package authn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testStoredToken = "prettypleasewithsugarontop"

func TestTokenStores(t *testing.T) {
	testCases := []struct {
		name  string
		store TokenStore
	}{
		{
			name:  "memory",
			store: NewMemoryTokenStore(),
		},
		{
			name:  "file",
			store: NewFileTokenStoreAt(t.TempDir()),
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			store := testCase.store

			// Absence is a valid result
			require.Empty(t, store.Load())

			// Round trip
			store.Save(testStoredToken)
			require.Equal(t, testStoredToken, store.Load())

			// Save overwrites unconditionally
			store.Save("replacement")
			require.Equal(t, "replacement", store.Load())

			store.Clear()
			require.Empty(t, store.Load())

			// Clearing an empty store is a safe no-op
			store.Clear()
			require.Empty(t, store.Load())
		})
	}
}

func TestFileTokenStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	NewFileTokenStoreAt(dir).Save(testStoredToken)
	require.Equal(t, testStoredToken, NewFileTokenStoreAt(dir).Load())
}
