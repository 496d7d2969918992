// Package levels provides level loading for the cosmo engine.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/engine"
	"github.com/vovakirdan/cosmo-arcade/internal/games/cosmo/levels/formats"
)

//go:embed data/*.yaml
var embeddedLevels embed.FS

// Set is a collection of levels keyed by level number. It implements
// engine.LevelSource; every Level call builds a fresh map so a World may
// modify it freely.
type Set struct {
	levels map[int]formats.Level
	// attrs is the tile attribute table for binary maps, nil for none.
	attrs []engine.TileAttr
}

// NewSet creates an empty level set.
func NewSet() *Set {
	return &Set{levels: make(map[int]formats.Level)}
}

// Add stores a level under its number, replacing any earlier one.
func (s *Set) Add(l formats.Level) {
	s.levels[l.Num] = l
}

// SetTileAttrs installs the attribute table applied to every map before the
// level's own attributes.
func (s *Set) SetTileAttrs(attrs []engine.TileAttr) {
	s.attrs = attrs
}

// Nums returns the level numbers in ascending order.
func (s *Set) Nums() []int {
	return slices.Sorted(maps.Keys(s.levels))
}

// Name returns the display name of a level, or "" when it has none.
func (s *Set) Name(num int) string {
	return s.levels[num].Name
}

// Len returns the number of levels in the set.
func (s *Set) Len() int {
	return len(s.levels)
}

// Level implements engine.LevelSource.
func (s *Set) Level(num int) (*engine.Level, error) {
	l, ok := s.levels[num]
	if !ok {
		return nil, fmt.Errorf("level %d: %w", num, engine.ErrLevelNotFound)
	}

	m, err := engine.NewTileMap(l.Width)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", num, err)
	}
	if s.attrs != nil {
		m.SetAttrTable(s.attrs)
	}
	for t, a := range l.Attrs {
		m.SetAttr(t, a)
	}
	copy(m.Cells(), l.Tiles)

	return &engine.Level{
		Num:    num,
		Flags:  l.Flags,
		Map:    m,
		Actors: slices.Clone(l.Actors),
	}, nil
}

var (
	embeddedOnce sync.Once
	embeddedSet  *Set
	embeddedErr  error
)

// Embedded returns the built-in level set. It is parsed once and shared;
// callers must not Add to it.
func Embedded() (*Set, error) {
	embeddedOnce.Do(func() {
		embeddedSet, embeddedErr = loadFS(embeddedLevels, "data")
	})
	return embeddedSet, embeddedErr
}

// loadFS parses every YAML level in dir of fsys.
func loadFS(fsys fs.FS, dir string) (*Set, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading levels: %w", err)
	}

	set := NewSet()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		l, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		set.Add(l)
	}
	return set, nil
}
