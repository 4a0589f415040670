package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists the learner-id → Profile mapping as a single JSON file.
// Every save overwrites the whole snapshot; the store is append-only by
// key in the sense that records are created, updated, and never removed.
type Store struct {
	path string

	// now is injectable for deterministic quarantine names in tests.
	now func() time.Time
}

// NewStore creates a Store writing to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted snapshot. A missing file yields an empty
// mapping. A file that fails to parse, fails schema validation, or
// violates a profile invariant is quarantined under a timestamp-suffixed
// name and an empty mapping is returned. Load never fails: corruption is
// reported on stderr and degrades to a fresh store.
func (s *Store) Load() map[string]*Profile {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: read %s: %v\n", s.path, err)
		}
		return map[string]*Profile{}
	}

	profiles, err := decodeSnapshot(raw)
	if err != nil {
		s.quarantine(err)
		return map[string]*Profile{}
	}
	return profiles
}

// Save writes the full snapshot of all profiles, replacing the previous
// file in its entirety.
func (s *Store) Save(profiles map[string]*Profile) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}
	if err := ensureDir(s.path); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// decodeSnapshot parses and validates raw snapshot bytes.
func decodeSnapshot(raw []byte) (map[string]*Profile, error) {
	if err := validateSnapshot(raw); err != nil {
		return nil, err
	}
	var profiles map[string]*Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("unmarshal profiles: %w", err)
	}
	for id, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", id, err)
		}
	}
	if profiles == nil {
		profiles = map[string]*Profile{}
	}
	return profiles, nil
}

// quarantine renames the corrupt file aside so the original bytes
// survive, then reports what happened.
func (s *Store) quarantine(cause error) {
	backup := fmt.Sprintf("%s.bak_%d", s.path, s.now().Unix())
	if err := os.Rename(s.path, backup); err != nil {
		fmt.Fprintf(os.Stderr, "warning: quarantine %s: %v\n", s.path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "warning: corrupt profile snapshot (%v); moved to %s, starting empty\n", cause, backup)
}

// DefaultPath resolves the snapshot file path in priority order:
// 1. GEOTUTOR_PROFILES environment variable
// 2. $XDG_DATA_HOME/geotutor/students_data.json
// 3. ~/.local/share/geotutor/students_data.json
func DefaultPath() (string, error) {
	if p := os.Getenv("GEOTUTOR_PROFILES"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "geotutor", "students_data.json")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
