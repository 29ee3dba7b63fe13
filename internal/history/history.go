// Package history remembers values entered into keyed prompts.
// This lets `tprompt ask --history KEY` pre-fill the last value and
// offer earlier ones as suggestions.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// History stores recent values per prompt key, most recent first.
type History struct {
	Entries map[string][]string `json:"entries"`

	path string
}

// Load reads the history from disk.
// A missing or corrupted file yields an empty history.
func Load(path string) (*History, error) {
	h := &History{Entries: map[string][]string{}, path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, h); err != nil {
		// Corrupted - start fresh
		return &History{Entries: map[string][]string{}, path: path}, nil
	}
	if h.Entries == nil {
		h.Entries = map[string][]string{}
	}

	return h, nil
}

// Values returns the remembered values for key, most recent first.
func (h *History) Values(key string) []string {
	return slices.Clone(h.Entries[key])
}

// Last returns the most recent value for key, or "" if there is none.
func (h *History) Last(key string) string {
	if v := h.Entries[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Record moves value to the front of key's list, dropping duplicates
// and anything beyond maxEntries. Blank values are ignored.
func (h *History) Record(key, value string, maxEntries int) {
	if strings.TrimSpace(value) == "" {
		return
	}
	values := []string{value}
	for _, v := range h.Entries[key] {
		if v != value {
			values = append(values, v)
		}
	}
	if maxEntries > 0 && len(values) > maxEntries {
		values = values[:maxEntries]
	}
	h.Entries[key] = values
}

// Save writes the history to disk atomically
func (h *History) Save() error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}

	tempPath := h.path + ".tmp"

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tempPath, h.path)
}
