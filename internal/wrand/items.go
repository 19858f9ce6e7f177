package wrand

import "github.com/petuhovskiy/prize-wheel/internal/models"

// FromItems builds a picker over wheel items, keeping list order.
func FromItems(items []models.Item) Wrand[models.Item] {
	w := make(Wrand[models.Item], 0, len(items))
	for _, item := range items {
		w = append(w, WrandItem[models.Item]{
			Weight: item.Weight,
			Item:   item,
		})
	}
	return w
}

// Select picks one item with a single draw from rng.
// Returns false if nothing can be selected.
func Select(items []models.Item, rng RNG) (models.Item, int, bool) {
	if rng == nil {
		rng = Global
	}
	return FromItems(items).PickWith(rng)
}
