package wheel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/prize-wheel/internal/models"
)

func TestLoadDefaultItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	err := os.WriteFile(path, []byte(`
items:
  - label: Pizza
    weight: 2
  - label: " Sushi "
    color: "#000000"
  - id: tacos
    label: Tacos
    weight: 0.5
`), 0o644)
	require.NoError(t, err)

	items, err := LoadDefaultItems(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Item{
		{ID: "1", Label: "Pizza", Color: "#FF6B6B", Weight: 2},
		{ID: "2", Label: "Sushi", Color: "#000000", Weight: 1},
		{ID: "tacos", Label: "Tacos", Color: "#45B7D1", Weight: 0.5},
	}, items)
}

func TestLoadDefaultItems_Invalid(t *testing.T) {
	bad := []string{
		"items: [",
		"items:\n  - label: ''\n",
		"items:\n  - label: a\n    weight: -1\n",
		"items:\n  - id: x\n    label: a\n  - id: x\n    label: b\n",
	}
	for _, data := range bad {
		_, err := parseDefaultItems([]byte(data))
		assert.Error(t, err, data)
	}

	_, err := LoadDefaultItems(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()
	require.Len(t, items, 4)
	for i, item := range items {
		assert.Equal(t, PaletteColor(i), item.Color)
		assert.Equal(t, DefaultWeight, item.Weight)
	}

	// every call returns a fresh copy
	items[0].Label = "changed"
	assert.Equal(t, "Yes", DefaultItems()[0].Label)
}
