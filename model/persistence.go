package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/boards"
)

// Format selects the encoding of a persisted board
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the board format from a file extension, defaulting to JSON
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeMatrix builds a grid from a decoded nested sequence of booleans.
// A non-sequence value yields an empty grid. Rows that are not sequences and
// cells that are not booleans stay dead.
func DecodeMatrix(v any) *Grid {
	rows, ok := v.([]any)
	if !ok {
		return NewGrid(0)
	}

	g := NewGrid(len(rows))
	for row, rv := range rows {
		cols, ok := rv.([]any)
		if !ok {
			continue
		}
		for col, cv := range cols {
			if col >= g.side {
				break
			}
			if alive, ok := cv.(bool); ok {
				g.cells[row][col] = alive
			}
		}
	}
	return g
}

// UnmarshalGrid decodes a persisted board
func UnmarshalGrid(data []byte, format Format) (*Grid, error) {
	var v any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, "[UnmarshalGrid] invalid yaml board")
		}
	default:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, "[UnmarshalGrid] invalid json board")
		}
	}
	return DecodeMatrix(v), nil
}

// MarshalGrid encodes the grid as a row-major matrix of booleans
func MarshalGrid(g *Grid, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(g.Matrix())
	default:
		data, err = json.Marshal(g.Matrix())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[MarshalGrid] failed to encode %s board", format)
	}
	return data, nil
}

// LoadGrid reads a board from disk, falling back to the bundled boards when
// the path does not exist
func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		bundled, ok := boards.Lookup(path)
		if !os.IsNotExist(err) || !ok {
			return nil, errors.Wrapf(err, "[LoadGrid] failed to read board: %+v", path)
		}
		data = bundled
	}

	g, err := UnmarshalGrid(data, FormatFor(path))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to decode board: %+v", path)
	}
	return g, nil
}

// SaveGrid writes the board to path. A blank path skips the write.
func SaveGrid(path string, g *Grid) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	data, err := MarshalGrid(g, FormatFor(path))
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "[SaveGrid] failed to write board: %+v", path)
	}
	return nil
}
