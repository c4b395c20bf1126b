package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"medtracker/internal/domain/adherence"
	"medtracker/internal/domain/doselogs"
)

type doseLogRepo struct {
	mu   sync.RWMutex
	byID map[string]doselogs.DoseLog
}

func NewDoseLogRepo() doselogs.Repository {
	return &doseLogRepo{
		byID: make(map[string]doselogs.DoseLog),
	}
}

func (r *doseLogRepo) Create(ctx context.Context, d doselogs.DoseLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.ID == "" {
		return errors.New("dose log id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dose log already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *doseLogRepo) GetByID(ctx context.Context, id string) (doselogs.DoseLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return doselogs.DoseLog{}, doselogs.ErrNotFound
	}
	return d, nil
}

func (r *doseLogRepo) List(ctx context.Context, filter doselogs.ListFilter) ([]doselogs.DoseLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]doselogs.DoseLog, 0)
	for _, d := range r.byID {
		if filter.MedicationID != "" && d.MedicationID != filter.MedicationID {
			continue
		}

		// Fechas inclusivas: se compara solo la parte de fecha de taken_at
		day := adherence.DateOf(d.TakenAt)
		if filter.From != nil && day.Before(adherence.DateOf(*filter.From)) {
			continue
		}
		if filter.To != nil && day.After(adherence.DateOf(*filter.To)) {
			continue
		}

		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TakenAt.Equal(b.TakenAt) {
			return a.ID < b.ID
		}
		if filter.Order == doselogs.OrderOldestFirst {
			return a.TakenAt.Before(b.TakenAt)
		}
		return a.TakenAt.After(b.TakenAt)
	})

	return out, nil
}

func (r *doseLogRepo) Update(ctx context.Context, d doselogs.DoseLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[d.ID]; !ok {
		return doselogs.ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *doseLogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return doselogs.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *doseLogRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, d := range r.byID {
		if d.MedicationID == medicationID {
			delete(r.byID, id)
		}
	}
	return nil
}
