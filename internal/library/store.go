package library

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorruptStore is returned by Load when the backing file exists but is not
// a JSON array of complete game entries. The accompanying slice is empty.
var ErrCorruptStore = errors.New("corrupt game store")

// Store persists the game list as a JSON array at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the store. A missing file is an empty library.
func (s *Store) Load() ([]Game, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Game{}, nil
		}
		return []Game{}, err
	}
	games, err := Decode(data)
	if err != nil {
		return []Game{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return games, nil
}

// Save overwrites the store with games.
func (s *Store) Save(games []Game) error {
	if games == nil {
		games = []Game{}
	}
	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Decode parses a store document. Anything other than an array of objects
// each carrying a non-empty name and path fails the whole document.
func Decode(data []byte) ([]Game, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document is not a list", ErrCorruptStore)
	}
	games := make([]Game, 0, len(raw))
	for i, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, fmt.Errorf("%w: entry %d is not an object", ErrCorruptStore, i)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorruptStore, i, err)
		}
		name, err := stringField(fields, "name")
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorruptStore, i, err)
		}
		path, err := stringField(fields, "path")
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorruptStore, i, err)
		}
		games = append(games, Game{Name: name, Path: path})
	}
	return games, nil
}

// stringField reads key exactly as spelled. encoding/json would match keys
// case-insensitively when decoding into a struct.
func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("missing %q", key)
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("%q: %v", key, err)
	}
	if v == "" {
		return "", fmt.Errorf("%q is empty", key)
	}
	return v, nil
}
