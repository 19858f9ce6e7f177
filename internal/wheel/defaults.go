package wheel

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petuhovskiy/prize-wheel/internal/models"
)

const DefaultWeight = 1.0

var palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFD93D", "#6C5CE7",
	"#A8E6CF", "#FF8B94", "#FFAAA5", "#D4A5A5", "#9B59B6",
	"#3498DB", "#E67E22", "#2ECC71", "#F1C40F", "#E74C3C",
}

// PaletteColor returns the color for the n-th item, cycling through the palette.
func PaletteColor(n int) string {
	if n < 0 {
		n = -n
	}
	return palette[n%len(palette)]
}

// DefaultItems is the wheel used when nothing was persisted yet.
func DefaultItems() []models.Item {
	return []models.Item{
		{ID: "1", Label: "Yes", Color: "#FF6B6B", Weight: DefaultWeight},
		{ID: "2", Label: "No", Color: "#4ECDC4", Weight: DefaultWeight},
		{ID: "3", Label: "Maybe", Color: "#45B7D1", Weight: DefaultWeight},
		{ID: "4", Label: "Spin Again", Color: "#FFD93D", Weight: DefaultWeight},
	}
}

type itemsFile struct {
	Items []models.Item `yaml:"items"`
}

// LoadDefaultItems reads a YAML file with the default wheel:
//
//	items:
//	  - label: Pizza
//	    weight: 2
//	  - label: Sushi
//	    color: "#3498DB"
//
// Missing ids, colors and weights are filled in. Negative weights are rejected.
func LoadDefaultItems(path string) ([]models.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read default items: %w", err)
	}
	return parseDefaultItems(data)
}

func parseDefaultItems(data []byte) ([]models.Item, error) {
	var file itemsFile
	err := yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default items: %w", err)
	}

	seen := make(map[string]bool, len(file.Items))
	items := make([]models.Item, 0, len(file.Items))
	for i, item := range file.Items {
		item.Label = strings.TrimSpace(item.Label)
		if item.Label == "" {
			return nil, fmt.Errorf("item %d: empty label", i)
		}
		if item.ID == "" {
			item.ID = strconv.Itoa(i + 1)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = true
		if item.Color == "" {
			item.Color = PaletteColor(i)
		}
		if item.Weight == 0 {
			item.Weight = DefaultWeight
		}
		if item.Weight < 0 {
			return nil, fmt.Errorf("item %d: negative weight %v", i, item.Weight)
		}
		items = append(items, item)
	}
	return items, nil
}
