package wheel

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petuhovskiy/prize-wheel/internal/log"
	"github.com/petuhovskiy/prize-wheel/internal/metrics"
	"github.com/petuhovskiy/prize-wheel/internal/models"
	"github.com/petuhovskiy/prize-wheel/internal/repos"
)

// Registry is the persisted list of wheel items.
// It is not safe for concurrent use, Session serializes access to it.
type Registry struct {
	store repos.Store
	items []models.Item
	newID func() string
}

// LoadRegistry reads persisted items. Absent or corrupt data falls back to defaults.
func LoadRegistry(ctx context.Context, store repos.Store, defaults []models.Item) *Registry {
	r := &Registry{
		store: store,
		newID: uuid.NewString,
	}

	var items []models.Item
	ok, err := repos.LoadJSON(ctx, store, repos.KeyItems, &items)
	switch {
	case err != nil:
		log.Warn(ctx, "failed to load items, using defaults", zap.Error(err))
		metrics.PersistErrors.WithLabelValues(repos.KeyItems, "load").Inc()
		items = models.CloneItems(defaults)
	case !ok || items == nil:
		items = models.CloneItems(defaults)
	}
	if items == nil {
		items = []models.Item{}
	}

	r.items = items
	metrics.Items.Set(float64(len(items)))
	return r
}

// Items returns a copy of the current list.
func (r *Registry) Items() []models.Item {
	return models.CloneItems(r.items)
}

func (r *Registry) Len() int {
	return len(r.items)
}

// Add appends an item with a fresh id, default weight and a palette color
// picked by the current list length. Blank labels are ignored.
func (r *Registry) Add(ctx context.Context, label string) (models.Item, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.Item{}, false
	}

	item := models.Item{
		ID:     r.newID(),
		Label:  label,
		Color:  PaletteColor(len(r.items)),
		Weight: DefaultWeight,
	}

	items := make([]models.Item, 0, len(r.items)+1)
	items = append(items, r.items...)
	items = append(items, item)
	r.replace(ctx, items)

	log.Debug(ctx, "item added", zap.String("id", item.ID), zap.String("label", item.Label))
	return item, true
}

// Remove drops the item with the given id. Returns false if there is no such item.
func (r *Registry) Remove(ctx context.Context, id string) bool {
	items := make([]models.Item, 0, len(r.items))
	for _, item := range r.items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	if len(items) == len(r.items) {
		return false
	}

	r.replace(ctx, items)
	log.Debug(ctx, "item removed", zap.String("id", id))
	return true
}

func (r *Registry) Clear(ctx context.Context) {
	r.replace(ctx, []models.Item{})
	log.Debug(ctx, "items cleared")
}

// replace swaps the whole list and persists it. Items are never mutated in place.
func (r *Registry) replace(ctx context.Context, items []models.Item) {
	r.items = items
	metrics.Items.Set(float64(len(items)))

	err := repos.SaveJSON(ctx, r.store, repos.KeyItems, items)
	if err != nil {
		log.Warn(ctx, "failed to persist items", zap.Error(err))
		metrics.PersistErrors.WithLabelValues(repos.KeyItems, "save").Inc()
	}
}
