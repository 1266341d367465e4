// Package formats parses and writes Loop8 level files.
package formats

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/loop8/internal/games/loop8/mesh"
)

// Format names accepted by Encode.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FileLevel is the on-disk structure shared by YAML and JSON level files.
// Masks are listed in row-major order, one 8-bit value per tile.
type FileLevel struct {
	ID       string            `yaml:"id" json:"id"`
	Name     string            `yaml:"name,omitempty" json:"name,omitempty"`
	Width    int               `yaml:"width" json:"width"`
	Height   int               `yaml:"height" json:"height"`
	Masks    []int             `yaml:"masks,flow" json:"masks"`
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Level is a parsed, validated level.
type Level struct {
	ID       string
	Name     string
	Puzzle   mesh.Level
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var fl FileLevel
	if err := yaml.Unmarshal(data, &fl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return fl.toLevel()
}

// ParseJSON parses a JSON level file. JSON is read through the YAML 1.2
// decoder so both formats share one set of field rules.
func ParseJSON(data []byte) (Level, error) {
	var fl FileLevel
	if err := yaml.Unmarshal(data, &fl); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return fl.toLevel()
}

func (fl FileLevel) toLevel() (Level, error) {
	masks := make([]uint8, len(fl.Masks))
	for i, v := range fl.Masks {
		if v < 0 || v > 0xFF {
			return Level{}, fmt.Errorf("%w: mask %d at index %d is not an 8-bit value", mesh.ErrConfiguration, v, i)
		}
		masks[i] = uint8(v)
	}

	puzzle := mesh.Level{Width: fl.Width, Height: fl.Height, Masks: masks}
	if err := puzzle.Validate(); err != nil {
		return Level{}, err
	}

	return Level{
		ID:       fl.ID,
		Name:     fl.Name,
		Puzzle:   puzzle,
		Metadata: fl.Metadata,
	}, nil
}

// FromLevel converts a parsed level back to its file form.
func FromLevel(l Level) FileLevel {
	masks := make([]int, len(l.Puzzle.Masks))
	for i, m := range l.Puzzle.Masks {
		masks[i] = int(m)
	}
	return FileLevel{
		ID:       l.ID,
		Name:     l.Name,
		Width:    l.Puzzle.Width,
		Height:   l.Puzzle.Height,
		Masks:    masks,
		Metadata: l.Metadata,
	}
}

// Encode writes l in the named format ("yaml" or "json").
func Encode(l Level, format string) ([]byte, error) {
	fl := FromLevel(l)
	switch format {
	case FormatYAML, "yml":
		return yaml.Marshal(fl)
	case FormatJSON:
		data, err := json.MarshalIndent(fl, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported level format %q", format)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
