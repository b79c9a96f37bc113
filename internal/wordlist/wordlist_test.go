package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
}

func TestLoadWordsSkipsBlankAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	writeList(t, path, "# header\nadd\n\n  next  \n")
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 || words[0] != "add" || words[1] != "next" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	writeList(t, path, "\n\n")
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestBuiltinContainsClassicWords(t *testing.T) {
	words := Builtin()
	want := map[string]bool{"add": false, "subtract": false, "next": false}
	for _, w := range words {
		if _, ok := want[w]; ok {
			want[w] = true
		}
	}
	for w, found := range want {
		if !found {
			t.Fatalf("builtin list is missing %q", w)
		}
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	words, src, err := Resolve("en", "", dir)
	if err != nil {
		t.Fatalf("resolve builtin: %v", err)
	}
	if !src.Builtin || len(words) == 0 || src.String() != "builtin" {
		t.Fatalf("expected builtin list, got %v (%d words)", src, len(words))
	}

	writeList(t, filepath.Join(dir, "en.txt"), "alpha\nBeta\ngamma\n")
	words, src, err = Resolve("en", "", dir)
	if err != nil {
		t.Fatalf("resolve file: %v", err)
	}
	if src.Builtin || len(words) != 2 {
		t.Fatalf("expected filtered file list, got %v from %v", words, src)
	}

	custom := filepath.Join(dir, "custom.txt")
	writeList(t, custom, "eins\nzwei\n")
	words, src, err = Resolve("de", custom, dir)
	if err != nil {
		t.Fatalf("resolve explicit path: %v", err)
	}
	if src.Path != custom || len(words) != 2 {
		t.Fatalf("unexpected explicit resolve: %v %v", words, src)
	}

	if _, _, err := Resolve("fr", "", dir); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLanguages(t *testing.T) {
	dir := t.TempDir()
	writeList(t, filepath.Join(dir, "de.txt"), "und\n")
	writeList(t, filepath.Join(dir, "notes.md"), "x\n")
	if err := os.Mkdir(filepath.Join(dir, "fr.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	langs, err := Languages(dir)
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	if len(langs) != 2 || langs[0] != "de" || langs[1] != "en" {
		t.Fatalf("unexpected languages: %v", langs)
	}

	missing, err := Languages(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 1 || missing[0] != "en" {
		t.Fatalf("expected builtin only, got %v %v", missing, err)
	}
}
