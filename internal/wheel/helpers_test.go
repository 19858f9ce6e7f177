package wheel

import (
	"context"
	"errors"

	"github.com/petuhovskiy/prize-wheel/internal/models"
)

var errBroken = errors.New("store is broken")

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errBroken
}

func (brokenStore) Set(context.Context, string, string) error {
	return errBroken
}

func (brokenStore) Delete(context.Context, string) error {
	return errBroken
}

// seqRNG returns the given draws in order, repeating the last one.
type seqRNG struct {
	draws []float64
	i     int
}

func (r *seqRNG) Float64() float64 {
	v := r.draws[r.i]
	if r.i < len(r.draws)-1 {
		r.i++
	}
	return v
}

func labels(items []models.Item) []string {
	res := make([]string, len(items))
	for i, item := range items {
		res[i] = item.Label
	}
	return res
}
