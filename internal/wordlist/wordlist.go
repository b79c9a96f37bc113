// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed en.txt
var builtinEnglish string

// BuiltinLang is the language shipped inside the binary.
const BuiltinLang = "en"

// ErrNotFound reports that no word list exists for a language.
var ErrNotFound = errors.New("word list not found")

// Source describes where a loaded word list came from.
type Source struct {
	Path    string
	Builtin bool
}

func (s Source) String() string {
	if s.Builtin {
		return "builtin"
	}
	return s.Path
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return readWords(file)
}

// Builtin returns the embedded English word list.
func Builtin() []string {
	words, err := readWords(strings.NewReader(builtinEnglish))
	if err != nil {
		return nil
	}
	return words
}

// Resolve loads the word list for lang. An explicit path always wins; otherwise
// dir/<lang>.txt is tried and English falls back to the embedded list.
// Words rejected by the language filter are dropped.
func Resolve(lang, path, dir string) ([]string, Source, error) {
	filter := FilterForLang(lang)
	if path != "" {
		words, err := LoadWords(path)
		if err != nil {
			return nil, Source{}, err
		}
		return keep(words, filter), Source{Path: path}, nil
	}

	candidate := filepath.Join(dir, lang+".txt")
	words, err := LoadWords(candidate)
	switch {
	case err == nil:
		return keep(words, filter), Source{Path: candidate}, nil
	case !os.IsNotExist(err):
		return nil, Source{}, err
	case strings.EqualFold(lang, BuiltinLang):
		return Builtin(), Source{Builtin: true}, nil
	default:
		return nil, Source{}, fmt.Errorf("%w: %s", ErrNotFound, candidate)
	}
}

// Languages lists the languages available in dir plus the builtin one.
func Languages(dir string) ([]string, error) {
	seen := map[string]struct{}{BuiltinLang: {}}
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		seen[strings.TrimSuffix(name, ".txt")] = struct{}{}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

func keep(words []string, filter FilterFunc) []string {
	out := words[:0]
	for _, w := range words {
		if filter(w) {
			out = append(out, w)
		}
	}
	return out
}
