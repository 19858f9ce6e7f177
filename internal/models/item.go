package models

// Item is a single wheel segment that can be won by a spin.
type Item struct {
	// ID is assigned by the registry and is unique within it.
	ID string `json:"id" yaml:"id"`

	// Label is the display text.
	Label string `json:"label" yaml:"label"`

	// Color is an opaque display color, usually a hex string.
	Color string `json:"color" yaml:"color"`

	// Weight is the relative selection probability mass. Must be positive.
	Weight float64 `json:"weight" yaml:"weight"`
}

// Outcome is an item captured by value at the moment it was won.
// Removing the item from the registry later doesn't affect recorded outcomes.
type Outcome = Item

func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	res := make([]Item, len(items))
	copy(res, items)
	return res
}
