// Package store keeps evaluation records served by the HTTP API.
package store

import (
	"context"
	"errors"
	"sort"
)

// ErrNotFound is returned for unknown evaluation IDs.
var ErrNotFound = errors.New("evaluation not found")

// Evaluation is one completed dispatch, as returned to API clients.
type Evaluation struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	CreatedAt int64  `json:"created_at"`

	Type  string `json:"type"`
	Op    string `json:"op"`
	Width int    `json:"width"`

	Tier           string `json:"tier"`
	Fallback       bool   `json:"fallback"`
	ScalarByDesign bool   `json:"scalar_by_design"`

	A      Values `json:"a"`
	B      Values `json:"b"`
	Result Values `json:"result"`
}

// Store persists evaluations.
type Store interface {
	Put(ctx context.Context, ev Evaluation) error
	Get(ctx context.Context, id string) (Evaluation, error)
	Delete(ctx context.Context, id string) error
	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]Evaluation, error)
	Close() error
}

func sortNewestFirst(evs []Evaluation) {
	sort.Slice(evs, func(i, j int) bool {
		if evs[i].CreatedAt != evs[j].CreatedAt {
			return evs[i].CreatedAt > evs[j].CreatedAt
		}
		return evs[i].ID > evs[j].ID
	})
}

func truncate(evs []Evaluation, limit int) []Evaluation {
	if limit > 0 && len(evs) > limit {
		return evs[:limit]
	}
	return evs
}
