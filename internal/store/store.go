// Package store persists group records, the display-name map and the full
// refresh marker as files under one data directory.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/pretty"

	"SectorStrength/internal/model"
)

const (
	NamesFile  = "stock_names.json"
	MarkerFile = ".last_full_refresh"
)

var (
	// ErrAbsent means the file does not exist.
	ErrAbsent = errors.New("absent")
	// ErrCorrupt means the file exists but cannot be used.
	ErrCorrupt = errors.New("corrupt")
)

// Store reads and writes the dashboard data directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// RecordPath returns the file path of the record for a group key.
func (s *Store) RecordPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// LoadRecord reads the record of a group. It fails with ErrAbsent when there is
// no file and ErrCorrupt when the file does not decode or breaks the record
// invariants.
func (s *Store) LoadRecord(key string) (*model.GroupRecord, error) {
	path := s.RecordPath(key)
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var rec model.GroupRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrCorrupt)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrCorrupt)
	}
	return &rec, nil
}

// SaveRecord writes the record of a group and returns the file size.
func (s *Store) SaveRecord(key string, rec *model.GroupRecord) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, fmt.Errorf("refusing to save %s: %w", key, err)
	}
	data, err := encode(rec)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", key, err)
	}
	if err := writeAtomic(s.RecordPath(key), data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// ReadRefreshMarker returns the date of the last full rebuild.
func (s *Store) ReadRefreshMarker() (time.Time, error) {
	path := filepath.Join(s.dir, MarkerFile)
	data, err := readFile(path)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(model.DateFormat, strings.TrimSpace(string(data)))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", path, ErrCorrupt)
	}
	return t, nil
}

// WriteRefreshMarker records day as the date of the last full rebuild.
func (s *Store) WriteRefreshMarker(day time.Time) error {
	return writeAtomic(filepath.Join(s.dir, MarkerFile), []byte(day.Format(model.DateFormat)))
}

// LoadNames reads the symbol to display name map.
func (s *Store) LoadNames() (map[string]string, error) {
	path := filepath.Join(s.dir, NamesFile)
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string)
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrCorrupt)
	}
	return names, nil
}

// SaveNames writes the name map pretty-printed and returns the file size.
func (s *Store) SaveNames(names map[string]string) (int64, error) {
	if names == nil {
		names = map[string]string{}
	}
	data, err := encode(names)
	if err != nil {
		return 0, fmt.Errorf("encode names: %w", err)
	}
	data = pretty.Pretty(data)
	if err := writeAtomic(filepath.Join(s.dir, NamesFile), data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrAbsent)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrCorrupt)
	}
	return data, nil
}

// encode marshals v compactly without escaping '&', '<' and '>' in titles and names.
func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// writeAtomic replaces path with data. The content goes to a temporary file in
// the same directory first so readers never see a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
