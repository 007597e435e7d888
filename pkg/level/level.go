// Package level defines the difficulty tiers for PolyCipher play modes.
//
// A level constrains what the player may build (pipeline length, polygon
// vertex count) and sets the strength score required to pass. Levels load
// from TOML; a built-in set ships embedded in the binary so the CLI and
// server work without any files on disk.
//
// # Usage
//
//	set := level.Defaults()
//	lvl, err := set.Get(0)
//	if err := lvl.CheckNodeBudget(pipeline.Len()); err != nil {
//	    // errors.ErrCodeLevelLimit
//	}
package level

import (
	_ "embed"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/geometry"
)

//go:embed levels.toml
var defaultLevels []byte

// Level is one difficulty tier.
type Level struct {
	Name          string   `toml:"name" json:"name"`
	MaxNodes      int      `toml:"max_nodes" json:"max_nodes"`
	MaxVertices   int      `toml:"max_vertices" json:"max_vertices"`
	PassThreshold float64  `toml:"pass_threshold" json:"pass_threshold"`
	Plaintexts    []string `toml:"plaintexts" json:"plaintexts"`
}

// Set is an ordered collection of levels. Level numbers are zero-based
// indexes into the set.
type Set struct {
	Levels []Level `toml:"level"`
}

// Defaults returns the built-in level set. The embedded TOML is validated
// by tests, so a decode failure here is a build defect and panics.
func Defaults() *Set {
	set, err := parse(defaultLevels)
	if err != nil {
		panic("level: embedded levels.toml is invalid: " + err.Error())
	}
	return set
}

// Load reads a level set from a TOML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLevel, err, "read level file %s", path)
	}
	set, err := parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLevel, err, "parse level file %s", path)
	}
	return set, nil
}

func parse(data []byte) (*Set, error) {
	var set Set
	if err := toml.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *Set) validate() error {
	if len(s.Levels) == 0 {
		return errors.New(errors.ErrCodeInvalidLevel, "level set is empty")
	}
	for i, lvl := range s.Levels {
		if lvl.Name == "" {
			return errors.New(errors.ErrCodeInvalidLevel, "level %d has no name", i)
		}
		if lvl.MaxNodes < 1 {
			return errors.New(errors.ErrCodeInvalidLevel, "level %q: max_nodes must be at least 1", lvl.Name)
		}
		if lvl.MaxVertices < geometry.MinVertices || lvl.MaxVertices > geometry.MaxVertices {
			return errors.New(errors.ErrCodeInvalidLevel, "level %q: max_vertices must be within %d-%d",
				lvl.Name, geometry.MinVertices, geometry.MaxVertices)
		}
		if err := errors.ValidateThreshold(lvl.PassThreshold); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLevel, err, "level %q", lvl.Name)
		}
		if len(lvl.Plaintexts) == 0 {
			return errors.New(errors.ErrCodeInvalidLevel, "level %q has no plaintexts", lvl.Name)
		}
	}
	return nil
}

// Len returns the number of levels in the set.
func (s *Set) Len() int {
	return len(s.Levels)
}

// Get returns the level at the given zero-based index.
func (s *Set) Get(index int) (Level, error) {
	if index < 0 || index >= len(s.Levels) {
		return Level{}, errors.New(errors.ErrCodeInvalidLevel, "level %d does not exist (have %d levels)", index, len(s.Levels))
	}
	return s.Levels[index], nil
}

// CheckNodeBudget reports whether adding one more node to a pipeline of
// the given length would exceed the level's node budget.
func (l Level) CheckNodeBudget(currentNodes int) error {
	if currentNodes >= l.MaxNodes {
		return errors.New(errors.ErrCodeLevelLimit, "level %q allows at most %d nodes", l.Name, l.MaxNodes)
	}
	return nil
}

// CheckVertexBudget reports whether a polygon with the given vertex count
// fits the level's vertex budget.
func (l Level) CheckVertexBudget(vertices int) error {
	if vertices > l.MaxVertices {
		return errors.New(errors.ErrCodeLevelLimit, "level %q allows at most %d vertices", l.Name, l.MaxVertices)
	}
	return nil
}

// Passed reports whether a final score meets the level's pass threshold.
func (l Level) Passed(score float64) bool {
	return score >= l.PassThreshold
}
