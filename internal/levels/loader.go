package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the optional file that names and orders a directory pack.
const ManifestFile = "pack.yaml"

// LevelSuffix is the extension of level files.
const LevelSuffix = ".txt"

// Manifest is the content of pack.yaml.
type Manifest struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Levels      []string `yaml:"levels"` // file names, in play order
}

// LoadDir reads a pack from a directory on disk. Without a manifest the
// pack is named after the directory and its *.txt files are played in
// name order.
func LoadDir(dir string) (Pack, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Pack{}, fmt.Errorf("levels: resolve %s: %w", dir, err)
	}
	return LoadFS(os.DirFS(abs), ".", filepath.Base(abs))
}

// LoadFS reads a pack from dir inside fsys.
func LoadFS(fsys fs.FS, dir, defaultName string) (Pack, error) {
	manifest, err := readManifest(fsys, dir)
	if err != nil {
		return Pack{}, err
	}

	files := manifest.Levels
	if len(files) == 0 {
		files, err = levelFiles(fsys, dir)
		if err != nil {
			return Pack{}, err
		}
	}

	pack := Pack{Name: manifest.Name, Description: manifest.Description}
	if pack.Name == "" {
		pack.Name = defaultName
	}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return Pack{}, fmt.Errorf("levels: read %s: %w", name, err)
		}
		pack.Levels = append(pack.Levels, Level{
			Name: strings.TrimSuffix(name, LevelSuffix),
			Rows: SplitRows(string(data)),
		})
	}

	if err := pack.Validate(); err != nil {
		return Pack{}, err
	}
	return pack, nil
}

func readManifest(fsys fs.FS, dir string) (Manifest, error) {
	var m Manifest
	data, err := fs.ReadFile(fsys, path.Join(dir, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("levels: read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("levels: parse manifest: %w", err)
	}
	return m, nil
}

func levelFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("levels: list %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(path.Ext(e.Name()), LevelSuffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
