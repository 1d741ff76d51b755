// Package consent tracks whether the user wants to be asked before arcctl
// installs or updates azdata, and whether the EULA has been accepted.
package consent

import (
	"encoding/json"
	"os"
	"path/filepath"

	"arcctl/internal/config"
)

// Key names one independently-persisted decision.
type Key string

const (
	KeyInstall Key = "install"
	KeyUpdate  Key = "update"
	KeyEULA    Key = "eula"
)

// Policy is the stored answer for a key.
type Policy string

const (
	// PolicyPrompt means ask the user next time. This is the zero-state
	// default for every key.
	PolicyPrompt Policy = "prompt"
	// PolicyDontPrompt means the user chose "don't ask again".
	PolicyDontPrompt Policy = "dontPrompt"
)

// State is the persisted consent file. Keys are fully independent.
type State struct {
	Policies     map[Key]Policy `json:"policies"`
	EULAAccepted bool           `json:"eulaAccepted"`
}

// Store reads and writes consent state at a fixed path.
// Writes are last-writer-wins; no locking.
type Store struct {
	path string
}

// DefaultPath returns <config dir>/consent.json.
func DefaultPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "consent.json"), nil
}

// NewStore binds a store to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the state. A missing file yields the zero state (every key at
// PolicyPrompt, EULA not accepted) without error.
func (s *Store) Load() (State, error) {
	st := State{Policies: map[Key]Policy{}}
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, err
	}
	if err := json.Unmarshal(b, &st); err != nil {
		return State{Policies: map[Key]Policy{}}, err
	}
	if st.Policies == nil {
		st.Policies = map[Key]Policy{}
	}
	return st, nil
}

func (s *Store) save(st State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

// Policy returns the stored policy for key, defaulting to PolicyPrompt.
func (s *Store) Policy(key Key) Policy {
	st, err := s.Load()
	if err != nil {
		return PolicyPrompt
	}
	if p, ok := st.Policies[key]; ok {
		return p
	}
	return PolicyPrompt
}

// SetPolicy persists a policy for one key, leaving the others untouched.
func (s *Store) SetPolicy(key Key, p Policy) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	st.Policies[key] = p
	return s.save(st)
}

// EULAAccepted reports the persisted acceptance memento.
func (s *Store) EULAAccepted() bool {
	st, err := s.Load()
	if err != nil {
		return false
	}
	return st.EULAAccepted
}

// SetEULAAccepted records the acceptance memento.
func (s *Store) SetEULAAccepted(v bool) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	st.EULAAccepted = v
	return s.save(st)
}
