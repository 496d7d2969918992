package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/levels/formats"
)

// TileAttrFile is the tile attribute table that accompanies binary maps.
const TileAttrFile = "TILEATTR.MNI"

// sectionsPerEpisode bounds the level numbers probed for binary maps.
const sectionsPerEpisode = 6

// MapName returns the binary map file name for a level of an episode. Each
// section is two regular maps followed by the episode's two bonus maps.
func MapName(episode, num int) string {
	letter := string(rune('A' + episode - 1))
	section, slot := num/4, num%4
	if slot < 2 {
		return fmt.Sprintf("%s%d.MNI", letter, section*2+slot+1)
	}
	return fmt.Sprintf("BONUS%d.MNI", (episode-1)*2+slot-1)
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root    string
	Episode int
}

// NewLoader creates a new level loader for episode 1.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, Episode: 1}
}

// LoadAll loads every level under Root into a set: YAML levels anywhere in
// the tree, plus the episode's binary maps in Root itself. A YAML level
// replaces a binary one with the same number.
func (l *Loader) LoadAll() (*Set, error) {
	set := NewSet()

	if err := l.loadBinary(set); err != nil {
		return nil, err
	}

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		lv, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		set.Add(lv)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	if set.Len() == 0 {
		return nil, fmt.Errorf("no levels in %s: %w", l.Root, engine.ErrLevelNotFound)
	}
	return set, nil
}

func (l *Loader) loadBinary(set *Set) error {
	attrs, err := os.ReadFile(l.find(TileAttrFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
		set.SetTileAttrs(fallbackAttrs())
	case err != nil:
		return fmt.Errorf("reading %s: %w", TileAttrFile, err)
	default:
		table, err := formats.ParseTileAttrs(attrs)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", TileAttrFile, err)
		}
		set.SetTileAttrs(table)
	}

	// Every section shares the episode's bonus maps, so a file may back
	// several level numbers. Parse it once.
	parsed := make(map[string]formats.Level)
	for num := range sectionsPerEpisode * 4 {
		path := l.find(MapName(l.Episode, num))
		lv, ok := parsed[path]
		if !ok {
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				continue
			}
			var err error
			lv, err = l.LoadFile(path)
			if err != nil {
				return err
			}
			parsed[path] = lv
		}
		lv.Num = num
		set.Add(lv)
	}
	return nil
}

// find returns the path of a data file under Root, accepting an all
// lowercase copy of the name.
func (l *Loader) find(name string) string {
	path := filepath.Join(l.Root, name)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(l.Root, strings.ToLower(name))
}

// fallbackAttrs treats every solid tile as a wall when the attribute file is
// missing.
func fallbackAttrs() []engine.TileAttr {
	attrs := engine.DefaultTileAttrs()
	for g := int(engine.TileSolidFirst / 8); g < int(engine.TileMasked0/8); g++ {
		attrs[g] = engine.AttrSolid
	}
	return attrs
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (formats.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return formats.Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	lv, err := parseByExtension(data, ext)
	if err != nil {
		return formats.Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if lv.Name == "" {
		lv.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lv, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	if !isSupportedExtension(ext) {
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	switch ext {
	case ".mni":
		return formats.ParseBinary(data)
	default:
		return formats.ParseYAML(data)
	}
}
