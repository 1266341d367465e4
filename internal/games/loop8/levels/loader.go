// Package levels loads preset Loop8 layouts from level files.
// This package depends on mesh but mesh does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/vovakirdan/loop8/internal/games/loop8/levels/formats"
	"github.com/vovakirdan/loop8/internal/games/loop8/mesh"
)

//go:embed bundled
var bundledFS embed.FS

// Level is a preset layout together with where it came from.
type Level struct {
	ID       string
	Name     string
	Puzzle   mesh.Level
	Metadata map[string]string
	FilePath string
}

// NewMesh builds a mesh holding the level's masks.
func (l *Level) NewMesh() (*mesh.Mesh, error) {
	return mesh.FromLevel(l.Puzzle)
}

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Bundled returns a loader over the levels compiled into the binary.
func Bundled() *Loader {
	sub, err := fs.Sub(bundledFS, "bundled")
	if err != nil {
		panic(fmt.Sprintf("levels: bundled directory missing: %v", err))
	}
	return &Loader{Root: "bundled", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	slices.SortFunc(levels, func(a, b Level) int {
		return strings.Compare(a.ID, b.ID)
	})
	return levels, nil
}

// LoadFile loads a single level file, relative to the loader root.
// A level without an ID takes its file name.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	lvl, err := parseFile(data, p)
	if err != nil {
		return Level{}, err
	}
	lvl.FilePath = path.Join(l.Root, p)
	return lvl, nil
}

// LoadPath loads a level file from anywhere on disk.
func LoadPath(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	lvl, err := parseFile(data, p)
	if err != nil {
		return Level{}, err
	}
	lvl.FilePath = p
	return lvl, nil
}

func parseFile(data []byte, p string) (Level, error) {
	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	return Level{
		ID:       id,
		Name:     parsed.Name,
		Puzzle:   parsed.Puzzle,
		Metadata: parsed.Metadata,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(ext))
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".json":
		return formats.ParseJSON(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
