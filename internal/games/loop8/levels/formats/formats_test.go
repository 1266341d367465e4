package formats_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/loop8/internal/games/loop8/levels/formats"
	"github.com/vovakirdan/loop8/internal/games/loop8/mesh"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: demo
name: Demo
width: 2
height: 1
masks: [4, 64]
metadata:
  author: someone
`)
	lvl, err := formats.ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "demo", lvl.ID)
	assert.Equal(t, mesh.Level{Width: 2, Height: 1, Masks: []uint8{4, 64}}, lvl.Puzzle)
	assert.Equal(t, "someone", lvl.Metadata["author"])
}

func TestParseJSON(t *testing.T) {
	lvl, err := formats.ParseJSON([]byte(`{"id":"j","width":2,"height":2,"masks":[20,64,24,60]}`))
	require.NoError(t, err)
	assert.Equal(t, []uint8{20, 64, 24, 60}, lvl.Puzzle.Masks)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"mask count", `{"width":2,"height":2,"masks":[1,2,3]}`},
		{"negative mask", `{"width":1,"height":1,"masks":[-1]}`},
		{"wide mask", `{"width":1,"height":1,"masks":[300]}`},
		{"zero size", `{"width":0,"height":3,"masks":[]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := formats.ParseJSON([]byte(tc.data))
			assert.ErrorIs(t, err, mesh.ErrConfiguration)
		})
	}

	_, err := formats.ParseYAML([]byte("masks: [1, 2"))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	lvl := formats.Level{
		ID:     "exported",
		Puzzle: mesh.Level{Width: 2, Height: 2, Masks: []uint8{20, 64, 24, 60}},
	}

	for _, format := range []string{formats.FormatYAML, formats.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			data, err := formats.Encode(lvl, format)
			require.NoError(t, err)

			var back formats.Level
			if format == formats.FormatJSON {
				back, err = formats.ParseJSON(data)
			} else {
				back, err = formats.ParseYAML(data)
			}
			require.NoError(t, err)
			assert.Equal(t, lvl.Puzzle, back.Puzzle)
			assert.Equal(t, "exported", back.ID)
		})
	}
}

func TestEncodeJSONWritesNumbers(t *testing.T) {
	data, err := formats.Encode(formats.Level{
		Puzzle: mesh.Level{Width: 1, Height: 2, Masks: []uint8{16, 1}},
	}, formats.FormatJSON)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []any{16.0, 1.0}, raw["masks"])
}

func TestEncodeYAMLUsesFlowMasks(t *testing.T) {
	data, err := formats.Encode(formats.Level{
		ID:     "flow",
		Puzzle: mesh.Level{Width: 2, Height: 1, Masks: []uint8{4, 64}},
	}, formats.FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "masks: [4, 64]")
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := formats.Encode(formats.Level{}, "toml")
	assert.Error(t, err)
}
