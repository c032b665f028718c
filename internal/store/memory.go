package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Records are lost on restart.
type Memory struct {
	mu   sync.Mutex
	byID map[string]Evaluation
}

func NewMemory() *Memory {
	return &Memory{byID: make(map[string]Evaluation)}
}

func (m *Memory) Put(_ context.Context, ev Evaluation) error {
	m.mu.Lock()
	m.byID[ev.ID] = ev
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev, ok := m.byID[id]
	if !ok {
		return Evaluation{}, ErrNotFound
	}
	return ev, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *Memory) List(_ context.Context, limit int) ([]Evaluation, error) {
	m.mu.Lock()
	out := make([]Evaluation, 0, len(m.byID))
	for _, ev := range m.byID {
		out = append(out, ev)
	}
	m.mu.Unlock()
	sortNewestFirst(out)
	return truncate(out, limit), nil
}

func (m *Memory) Close() error { return nil }
