package scores

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrCorrupt is returned by FileSaver.Load for malformed lines.
var ErrCorrupt = errors.New("corrupt score file")

// FileSaver stores the ledger as a text file with one "name,score" line per
// entry.
type FileSaver struct {
	path string
}

// NewFileSaver returns a saver for path. A leading "~" is expanded to the
// user's home directory.
func NewFileSaver(path string) (*FileSaver, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileSaver{path: expanded}, nil
}

// Path returns the resolved file path.
func (s *FileSaver) Path() string {
	return s.path
}

// Load reads the entries. A missing file is an empty ledger.
func (s *FileSaver) Load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: open %s: %w", s.path, err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		i := strings.LastIndexByte(text, ',')
		if i < 0 {
			return nil, fmt.Errorf("scores: %s:%d: %w: missing separator", s.path, line, ErrCorrupt)
		}
		score, err := strconv.Atoi(strings.TrimSpace(text[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("scores: %s:%d: %w: %v", s.path, line, ErrCorrupt, err)
		}
		entries = append(entries, Entry{Name: text[:i], Score: score})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scores: read %s: %w", s.path, err)
	}
	return entries, nil
}

// Save rewrites the file atomically.
func (s *FileSaver) Save(entries []Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scores: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*")
	if err != nil {
		return fmt.Errorf("scores: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, e := range entries {
		fmt.Fprintf(w, "%s,%d\n", e.Name, e.Score)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("scores: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("scores: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("scores: replace %s: %w", s.path, err)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("scores: resolve home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
