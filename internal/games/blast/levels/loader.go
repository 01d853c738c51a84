package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/AKGMI/BlastGame/internal/games/blast/levels/formats"
)

//go:embed data/*.yaml
var campaign embed.FS

// ErrNotFound is returned by LoadByID for unknown level IDs.
var ErrNotFound = errors.New("level not found")

// Loader loads levels from a file system tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// NewCampaignLoader creates a loader for the built-in campaign.
func NewCampaignLoader() *Loader {
	sub, err := fs.Sub(campaign, "data")
	if err != nil {
		// data/ is embedded at build time, Sub only fails on a bad pattern.
		panic(err)
	}
	return &Loader{fsys: sub, root: "campaign"}
}

// FileError pairs a level file with the error that made it unusable.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// files lists the level files under the loader root, in walk order.
func (l *Loader) files() ([]string, error) {
	var files []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(path.Ext(p))) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}
	return files, nil
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	files, err := l.files()
	if err != nil {
		return nil, err
	}

	var levels []Level
	for _, p := range files {
		level, err := l.LoadFile(p)
		if err != nil {
			continue
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// Check loads every level file and reports the ones LoadAll would skip.
func (l *Loader) Check() ([]FileError, error) {
	files, err := l.files()
	if err != nil {
		return nil, err
	}

	var bad []FileError
	for _, p := range files {
		if _, err := l.LoadFile(p); err != nil {
			bad = append(bad, FileError{Path: path.Join(l.root, p), Err: err})
		}
	}
	return bad, nil
}

// LoadFile loads and validates a single level file relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Cols:     parsed.Cols,
		Rules:    parsed.Rules,
		Boosters: parsed.Boosters,
		Layout:   parsed.Layout,
		Metadata: parsed.Metadata,
		FilePath: path.Join(l.root, p),
	}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
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
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
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
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
