package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for the directory at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns the embedded campaign in play order.
func Builtin() ([]Level, error) {
	sub, err := fs.Sub(campaignFS, "campaign")
	if err != nil {
		return nil, fmt.Errorf("opening built-in campaign: %w", err)
	}
	l := &Loader{Root: "campaign", fsys: sub}
	levels, problems, err := l.scan()
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, problems[0]
	}
	return levels, nil
}

// LoadAll loads every level file under the root, sorted by ID.
// Files that fail to parse are skipped; use Check to list them.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.scan()
	return levels, err
}

// Check returns one error per level file that fails to load.
func (l *Loader) Check() ([]error, error) {
	_, problems, err := l.scan()
	return problems, err
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

func (l *Loader) scan() ([]Level, []error, error) {
	var (
		levels   []Level
		problems []error
	)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		level, err := l.loadFile(p)
		if err != nil {
			problems = append(problems, err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, problems, nil
}

func (l *Loader) loadFile(p string) (Level, error) {
	full := filepath.Join(l.Root, filepath.FromSlash(p))

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", full, err)
	}
	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", full, err)
	}
	level.FilePath = full
	return level, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
