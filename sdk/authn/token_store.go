package authn

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// TokenStore is durable key/value persistence for a single opaque bearer
// credential. All three operations are synchronous and total: they never
// fail from the caller's point of view, and absence loads as the empty
// string.
type TokenStore interface {
	// Save persists the given token, overwriting unconditionally.
	Save(token string)
	// Load returns the persisted token, or the empty string if none is held.
	Load() string
	// Clear removes any persisted token.
	Clear()
}

// fileTokenStore is a TokenStore backed by a single file under the user's
// home directory. It survives process restarts and is shared by every
// process run by the same user, which is the closest native analog of
// origin-scoped browser storage.
type fileTokenStore struct {
	tokenFile string
}

// NewFileTokenStore returns a TokenStore that persists the token under
// ~/.taps.
func NewFileTokenStore() (TokenStore, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, errors.Wrap(err, "error locating user's home directory")
	}
	return NewFileTokenStoreAt(path.Join(homeDir, ".taps")), nil
}

// NewFileTokenStoreAt returns a TokenStore that persists the token in the
// given directory.
func NewFileTokenStoreAt(dir string) TokenStore {
	return &fileTokenStore{
		tokenFile: path.Join(dir, "token"),
	}
}

func (f *fileTokenStore) Save(token string) {
	if err := os.MkdirAll(path.Dir(f.tokenFile), 0755); err != nil {
		glog.Warningf("error creating token store directory: %s", err)
		return
	}
	if err :=
		ioutil.WriteFile(f.tokenFile, []byte(token), 0600); err != nil {
		glog.Warningf("error writing to token store: %s", err)
	}
}

func (f *fileTokenStore) Load() string {
	tokenBytes, err := ioutil.ReadFile(f.tokenFile)
	if err != nil {
		// Absence is a valid result, not an error
		return ""
	}
	return strings.TrimSpace(string(tokenBytes))
}

func (f *fileTokenStore) Clear() {
	if err := os.Remove(f.tokenFile); err != nil && !os.IsNotExist(err) {
		glog.Warningf("error clearing token store: %s", err)
	}
}

// memoryTokenStore is a TokenStore that holds the token in memory only. It
// exists so session logic can be exercised without a real persistence
// backend.
type memoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore returns a TokenStore backed by process memory.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (m *memoryTokenStore) Save(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *memoryTokenStore) Load() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memoryTokenStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}
