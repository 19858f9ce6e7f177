package wheel

import (
	"context"

	"go.uber.org/zap"

	"github.com/petuhovskiy/prize-wheel/internal/log"
	"github.com/petuhovskiy/prize-wheel/internal/metrics"
	"github.com/petuhovskiy/prize-wheel/internal/models"
	"github.com/petuhovskiy/prize-wheel/internal/repos"
)

const DefaultHistoryLimit = 10

// History keeps the last outcomes, most recent first.
// It is not safe for concurrent use, Session serializes access to it.
type History struct {
	store   repos.Store
	limit   int
	entries []models.Outcome
}

// LoadHistory reads persisted outcomes. Absent or corrupt data gives an empty history.
func LoadHistory(ctx context.Context, store repos.Store, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	h := &History{
		store: store,
		limit: limit,
	}

	var entries []models.Outcome
	_, err := repos.LoadJSON(ctx, store, repos.KeyHistory, &entries)
	if err != nil {
		log.Warn(ctx, "failed to load history, starting empty", zap.Error(err))
		metrics.PersistErrors.WithLabelValues(repos.KeyHistory, "load").Inc()
		entries = nil
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	h.entries = entries
	return h
}

// Entries returns a copy of the history, most recent first.
func (h *History) Entries() []models.Outcome {
	res := models.CloneItems(h.entries)
	if res == nil {
		res = []models.Outcome{}
	}
	return res
}

func (h *History) Len() int {
	return len(h.entries)
}

// Record prepends the outcome, truncates to the limit and persists.
func (h *History) Record(ctx context.Context, outcome models.Outcome) {
	n := len(h.entries) + 1
	if n > h.limit {
		n = h.limit
	}

	entries := make([]models.Outcome, 0, n)
	entries = append(entries, outcome)
	for _, e := range h.entries {
		if len(entries) == n {
			break
		}
		entries = append(entries, e)
	}
	h.entries = entries

	err := repos.SaveJSON(ctx, h.store, repos.KeyHistory, entries)
	if err != nil {
		log.Warn(ctx, "failed to persist history", zap.Error(err))
		metrics.PersistErrors.WithLabelValues(repos.KeyHistory, "save").Inc()
	}
}

// Clear empties the history and removes the persisted document.
func (h *History) Clear(ctx context.Context) {
	h.entries = nil

	err := h.store.Delete(ctx, repos.KeyHistory)
	if err != nil {
		log.Warn(ctx, "failed to delete history", zap.Error(err))
		metrics.PersistErrors.WithLabelValues(repos.KeyHistory, "delete").Inc()
	}
}
