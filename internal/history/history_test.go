package history

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	h, err := Load(filepath.Join(t.TempDir(), "history.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(h.Entries) != 0 {
		t.Errorf("expected empty history, got %v", h.Entries)
	}
	if got := h.Last("rename"); got != "" {
		t.Errorf("Last() = %q, want empty", got)
	}
}

func TestLoad_Corrupted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	h, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(h.Entries) != 0 {
		t.Errorf("corrupted file should load as empty, got %v", h.Entries)
	}

	// Still writable after a corrupted load
	h.Record("k", "v", 5)
	if err := h.Save(); err != nil {
		t.Fatalf("Save after corrupted load failed: %v", err)
	}
}

func TestRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		record     []string
		maxEntries int
		want       []string
	}{
		{"most recent first", []string{"a", "b", "c"}, 10, []string{"c", "b", "a"}},
		{"duplicates move to front", []string{"a", "b", "a"}, 10, []string{"a", "b"}},
		{"capped at maxEntries", []string{"a", "b", "c", "d"}, 2, []string{"d", "c"}},
		{"blank ignored", []string{"a", "  ", ""}, 10, []string{"a"}},
		{"zero maxEntries keeps everything", []string{"a", "b", "c"}, 0, []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := &History{Entries: map[string][]string{}}
			for _, v := range tt.record {
				h.Record("key", v, tt.maxEntries)
			}
			if got := h.Values("key"); !slices.Equal(got, tt.want) {
				t.Errorf("Values() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValues_ReturnsCopy(t *testing.T) {
	t.Parallel()

	h := &History{Entries: map[string][]string{"k": {"a", "b"}}}
	v := h.Values("k")
	v[0] = "mutated"
	if h.Last("k") != "a" {
		t.Errorf("Values() exposed internal slice, Last() = %q", h.Last("k"))
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "history.json")

	h, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	h.Record("rename", "old.txt", 5)
	h.Record("rename", "new.txt", 5)
	h.Record("save", "notes.md", 5)
	if err := h.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away after Save")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := loaded.Values("rename"); !slices.Equal(got, []string{"new.txt", "old.txt"}) {
		t.Errorf("rename values = %v", got)
	}
	if got := loaded.Last("save"); got != "notes.md" {
		t.Errorf("Last(save) = %q, want %q", got, "notes.md")
	}
}
