package bank

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultDir is where banks are looked up when no directory is configured.
const DefaultDir = "quizzes"

// Loader discovers and loads banks from a directory.
type Loader struct {
	dir string
	log zerolog.Logger
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string, log zerolog.Logger) *Loader {
	if dir == "" {
		dir = DefaultDir
	}
	return &Loader{dir: dir, log: log}
}

// Dir returns the directory the loader searches.
func (l *Loader) Dir() string {
	return l.dir
}

// List returns the bank files in the loader's directory.
func (l *Loader) List() ([]string, error) {
	return ListBanks(l.dir)
}

// ListBanks enumerates bank files in dir, sorted by path. A missing or
// empty directory yields an empty list, not an error.
func ListBanks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list banks in %s: %w", dir, err)
	}

	banks := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slices.Contains(Extensions, strings.ToLower(filepath.Ext(e.Name()))) {
			banks = append(banks, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(banks)
	return banks, nil
}

// Resolve maps a user-given name to a bank path. The name is taken as a
// literal path when it is an existing file listed in known; otherwise it
// is joined into the loader's directory with each supported extension.
func (l *Loader) Resolve(name string, known []string) (string, error) {
	if isFile(name) && contains(known, name) {
		return name, nil
	}
	for _, ext := range Extensions {
		candidate := filepath.Join(l.dir, name+ext)
		if isFile(candidate) && contains(known, candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrQuizNotFound, name)
}

// Load resolves name and parses the bank. Failures after resolution are
// returned as *LoadError.
func (l *Loader) Load(name string, known []string) (*Bank, error) {
	path, err := l.Resolve(name, known)
	if err != nil {
		return nil, err
	}
	return l.ReadFile(path)
}

// ReadFile parses the bank at path without resolving it.
func (l *Loader) ReadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Error().Err(err).Str("path", path).Msg("read bank")
		return nil, loadErr(path, err)
	}

	b, err := Parse(path, data)
	if err != nil {
		l.log.Error().Err(err).Str("path", path).Msg("parse bank")
		return nil, loadErr(path, err)
	}

	l.log.Debug().
		Str("path", path).
		Int("chapters", len(b.Chapters)).
		Int("questions", b.Count()).
		Msg("bank loaded")
	return b, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func contains(known []string, path string) bool {
	clean := filepath.Clean(path)
	for _, k := range known {
		if filepath.Clean(k) == clean {
			return true
		}
	}
	return false
}
