package character

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/storyforge/storyserver/internal/platform/errors"
)

func TestBuiltInNamesAreOrdered(t *testing.T) {
	registry := BuiltIn()

	want := []string{"Jack", "Ram", "Robert"}
	got := registry.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Order must be stable across calls.
	again := registry.Names()
	for i := range got {
		if again[i] != got[i] {
			t.Fatalf("name order changed between calls at index %d", i)
		}
	}
}

func TestBuiltInRecordsAreComplete(t *testing.T) {
	registry := BuiltIn()
	for _, name := range registry.Names() {
		backstory, err := registry.Backstory(name)
		if err != nil {
			t.Fatalf("backstory(%q): %v", name, err)
		}
		if backstory == "" {
			t.Errorf("backstory(%q) is empty", name)
		}
		superpower, err := registry.Superpower(name)
		if err != nil {
			t.Fatalf("superpower(%q): %v", name, err)
		}
		if superpower == "" {
			t.Errorf("superpower(%q) is empty", name)
		}
	}
}

func TestLookupIsCaseInsensitiveAndTrimmed(t *testing.T) {
	registry := BuiltIn()

	for _, name := range []string{"jack", "JACK", " Jack ", "jAcK"} {
		backstory, err := registry.Backstory(name)
		if err != nil {
			t.Fatalf("backstory(%q): %v", name, err)
		}
		if backstory == "" {
			t.Fatalf("backstory(%q) is empty", name)
		}
	}
}

func TestLookupUnknownCharacter(t *testing.T) {
	registry := BuiltIn()

	_, err := registry.Backstory("Zed")
	if err == nil {
		t.Fatal("expected error for unknown character")
	}
	if !stderrors.Is(err, errors.New(errors.CodeCharacterNotFound, "")) {
		t.Errorf("expected CHARACTER_NOT_FOUND, got %v", err)
	}
	if got := err.Error(); got != "character not found: Zed" {
		t.Errorf("expected message naming the character, got %q", got)
	}

	if _, err := registry.Superpower("Zed"); err == nil {
		t.Fatal("expected error for unknown character superpower")
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
	}{
		{"empty table", nil},
		{"blank name", []Record{{Name: "  ", Backstory: "b", Superpower: "s"}}},
		{"missing backstory", []Record{{Name: "A", Superpower: "s"}}},
		{"missing superpower", []Record{{Name: "A", Backstory: "b"}}},
		{"duplicate name", []Record{
			{Name: "A", Backstory: "b", Superpower: "s"},
			{Name: "a", Backstory: "b", Superpower: "s"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.records); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadReplacesCast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cast.yaml")
	content := `- name: Mira
  backstory: Mira charts dead stars for a living.
  superpower: Gravity bending
- name: Holt
  backstory: Holt walked out of the sea one morning.
  superpower: Breathes anywhere
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write cast file: %v", err)
	}

	registry, err := Load(path)
	if err != nil {
		t.Fatalf("load cast: %v", err)
	}

	names := registry.Names()
	if len(names) != 2 || names[0] != "Mira" || names[1] != "Holt" {
		t.Fatalf("unexpected names: %v", names)
	}
	if _, err := registry.Backstory("Jack"); err == nil {
		t.Error("built-in cast should be replaced by the file")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cast.yaml")
	if err := os.WriteFile(path, []byte("not: [valid"), 0o644); err != nil {
		t.Fatalf("write cast file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
