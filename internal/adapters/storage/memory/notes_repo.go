package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"medtracker/internal/domain/notes"
)

type noteRepo struct {
	mu   sync.RWMutex
	byID map[string]notes.Note
}

func NewNoteRepo() notes.Repository {
	return &noteRepo{
		byID: make(map[string]notes.Note),
	}
}

func (r *noteRepo) Create(ctx context.Context, n notes.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		return errors.New("note id required")
	}
	if _, exists := r.byID[n.ID]; exists {
		return errors.New("note already exists")
	}
	r.byID[n.ID] = n
	return nil
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (notes.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.byID[id]
	if !ok {
		return notes.Note{}, notes.ErrNotFound
	}
	return n, nil
}

func (r *noteRepo) List(ctx context.Context, medicationID string) ([]notes.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notes.Note, 0)
	for _, n := range r.byID {
		if medicationID != "" && n.MedicationID != medicationID {
			continue
		}
		out = append(out, n)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return notes.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *noteRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, n := range r.byID {
		if n.MedicationID == medicationID {
			delete(r.byID, id)
		}
	}
	return nil
}
