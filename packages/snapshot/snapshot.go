// Package snapshot stores expected values on disk and compares actual values
// against them.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// DirName is the default directory for snapshot files.
	DirName = "__snapshots__"
	// Ext is the file extension for snapshot files.
	Ext = ".snap.json"
)

// Status is the outcome of a snapshot comparison.
type Status int

const (
	// Matched means the stored snapshot equals the actual value.
	Matched Status = iota
	// Created means no snapshot existed and one was written in update mode.
	Created
	// Updated means the stored snapshot differed and was rewritten in update mode.
	Updated
	// Mismatched means the stored snapshot differs from the actual value.
	Mismatched
	// Missing means no snapshot exists and update mode is off.
	Missing
	// Failed means the snapshot file could not be read or written.
	Failed
)

func (s Status) String() string {
	switch s {
	case Matched:
		return "matched"
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Mismatched:
		return "mismatched"
	case Missing:
		return "missing"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of Manager.Compare. Expected and Actual hold the
// JSON-normalized values that were compared.
type Result struct {
	Status   Status
	Key      string
	File     string
	Expected any
	Actual   any
	Err      error
}

// Passed reports whether the comparison should count as a success.
func (r *Result) Passed() bool {
	return r.Status == Matched || r.Status == Created || r.Status == Updated
}

// Manager handles snapshot storage and comparison. It is safe for concurrent
// use by parallel tests.
type Manager struct {
	mu         sync.Mutex
	dir        string
	updateMode bool
	cache      map[string]map[string]any // file -> {key -> value}
}

// NewManager creates a manager storing snapshot files in dir.
func NewManager(dir string, updateMode bool) *Manager {
	if dir == "" {
		dir = DirName
	}
	return &Manager{
		dir:        dir,
		updateMode: updateMode,
		cache:      make(map[string]map[string]any),
	}
}

func (m *Manager) Dir() string { return m.dir }

func (m *Manager) UpdateMode() bool { return m.updateMode }

// Path returns the snapshot file of a suite.
func (m *Manager) Path(suite string) string {
	return filepath.Join(m.dir, sanitize(suite)+Ext)
}

// Compare compares actual against the snapshot stored under key in suite's
// file. In update mode missing and differing snapshots are written instead
// of failing.
func (m *Manager) Compare(suite, key string, actual any) *Result {
	file := m.Path(suite)
	if key == "" {
		key = Key("", "", actual)
	}
	result := &Result{Key: key, File: file}

	normalized, err := normalize(actual)
	if err != nil {
		result.Status = Failed
		result.Err = fmt.Errorf("failed to encode actual value: %w", err)
		return result
	}
	result.Actual = normalized

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshots, err := m.load(file)
	if err != nil {
		result.Status = Failed
		result.Err = fmt.Errorf("failed to load snapshots: %w", err)
		return result
	}

	expected, exists := snapshots[key]
	if !exists {
		if !m.updateMode {
			result.Status = Missing
			return result
		}
		if err := m.save(file, with(snapshots, key, normalized)); err != nil {
			result.Status = Failed
			result.Err = fmt.Errorf("failed to save snapshot: %w", err)
			return result
		}
		result.Status = Created
		result.Expected = normalized
		return result
	}

	result.Expected = expected
	if reflect.DeepEqual(expected, normalized) {
		result.Status = Matched
		return result
	}

	if !m.updateMode {
		result.Status = Mismatched
		return result
	}
	if err := m.save(file, with(snapshots, key, normalized)); err != nil {
		result.Status = Failed
		result.Err = fmt.Errorf("failed to update snapshot: %w", err)
		return result
	}
	result.Status = Updated
	return result
}

// Key builds the key of a snapshot inside its suite file: "scope::name",
// the scope alone, or a hash of the value when both are empty.
func Key(scope, name string, value any) string {
	switch {
	case scope != "" && name != "":
		return scope + "::" + name
	case name != "":
		return name
	case scope != "":
		return scope
	}
	hash := sha256.Sum256([]byte(fmt.Sprintf("%v", value)))
	return "anon_" + hex.EncodeToString(hash[:8])
}

// SplitTestName splits a go test name into the top-level test, which names
// the suite file, and the subtest path, which scopes keys inside it.
func SplitTestName(name string) (suite, scope string) {
	suite, scope, _ = strings.Cut(name, "/")
	return suite, scope
}

// load reads a snapshot file, returning an empty set when it does not exist.
// Callers must hold m.mu.
func (m *Manager) load(path string) (map[string]any, error) {
	if cached, ok := m.cache[path]; ok {
		return cached, nil
	}

	snapshots, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		snapshots = make(map[string]any)
	} else if err != nil {
		return nil, err
	}

	m.cache[path] = snapshots
	return snapshots, nil
}

// save writes a snapshot file. Callers must hold m.mu.
func (m *Manager) save(path string, snapshots map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	m.cache[path] = snapshots
	return nil
}

// with returns a copy of snapshots holding value under key, leaving the
// cached map untouched until the copy is saved.
func with(snapshots map[string]any, key string, value any) map[string]any {
	out := maps.Clone(snapshots)
	out[key] = value
	return out
}

// Load reads the snapshots of a file.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snapshots map[string]any
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if snapshots == nil {
		snapshots = make(map[string]any)
	}
	return snapshots, nil
}

// File describes a snapshot file on disk.
type File struct {
	Path    string
	Suite   string
	Keys    []string
	ModTime time.Time
}

// List returns the snapshot files in dir sorted by suite name. A missing
// directory yields no files.
func List(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		snapshots, err := Load(path)
		if err != nil {
			return nil, err
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}

		keys := make([]string, 0, len(snapshots))
		for key := range snapshots {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		files = append(files, File{
			Path:    path,
			Suite:   strings.TrimSuffix(entry.Name(), Ext),
			Keys:    keys,
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Suite < files[j].Suite })
	return files, nil
}

// Clean removes every snapshot file in dir and returns how many were removed.
// Other files are left alone.
func Clean(dir string) (int, error) {
	files, err := List(dir)
	if err != nil {
		return 0, err
	}
	for i, f := range files {
		if err := os.Remove(f.Path); err != nil {
			return i, err
		}
	}
	return len(files), nil
}

// normalize round-trips v through JSON so values compare the way they are
// stored: numbers as float64, structs as maps.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func sanitize(name string) string {
	if name == "" {
		return "snapshots"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, name)
}
