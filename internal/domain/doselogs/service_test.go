package doselogs

import (
	"context"
	"sort"
	"testing"
	"time"

	"medtracker/internal/domain/adherence"
	"medtracker/internal/domain/medications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	byID map[string]DoseLog
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]DoseLog{}}
}

func (r *testRepo) Create(ctx context.Context, d DoseLog) error {
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (DoseLog, error) {
	d, ok := r.byID[id]
	if !ok {
		return DoseLog{}, ErrNotFound
	}
	return d, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]DoseLog, error) {
	out := make([]DoseLog, 0)
	for _, d := range r.byID {
		if f.MedicationID != "" && d.MedicationID != f.MedicationID {
			continue
		}
		if f.From != nil && !adherence.InRange(d.TakenAt, *f.From, *f.To) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if f.Order == OrderOldestFirst {
			return out[i].TakenAt.Before(out[j].TakenAt)
		}
		return out[i].TakenAt.After(out[j].TakenAt)
	})
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, d DoseLog) error {
	if _, ok := r.byID[d.ID]; !ok {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) DeleteByMedication(ctx context.Context, medID string) error {
	for id, d := range r.byID {
		if d.MedicationID == medID {
			delete(r.byID, id)
		}
	}
	return nil
}

type fakeMeds map[string]medications.Medication

func (f fakeMeds) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	m, ok := f[id]
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	return m, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	meds := fakeMeds{
		"med-1": {ID: "med-1", Name: "Aspirin", DosageMg: 100, PrescribedPerDay: 2},
		"med-2": {ID: "med-2", Name: "Ibuprofen", DosageMg: 200, PrescribedPerDay: 1},
	}
	svc := NewService(repo, meds)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) }
	return svc, repo
}

func at(day, hour int) time.Time { return time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC) }

func boolPtr(b bool) *bool { return &b }

// -------------------------
// Tests
// -------------------------

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateInput{MedicationID: "med-1", TakenAt: at(1, 8)})
	require.NoError(t, err)
	assert.True(t, d.WasTaken, "was_taken por defecto true")
	assert.NotEmpty(t, d.ID)

	d, err = svc.Create(ctx, CreateInput{MedicationID: "med-1", TakenAt: at(1, 20), WasTaken: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, d.WasTaken)

	_, err = svc.Create(ctx, CreateInput{MedicationID: "nope", TakenAt: at(1, 8)})
	assert.ErrorIs(t, err, ErrUnknownMedication)

	_, err = svc.Create(ctx, CreateInput{MedicationID: "med-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListByDateRange_OldestFirst(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, ts := range []time.Time{at(3, 8), at(1, 8), at(2, 23), at(5, 8)} {
		_, err := svc.Create(ctx, CreateInput{MedicationID: "med-1", TakenAt: ts})
		require.NoError(t, err)
	}

	got, err := svc.ListByDateRange(ctx, at(1, 15), at(3, 0))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, at(1, 8), got[0].TakenAt)
	assert.Equal(t, at(2, 23), got[1].TakenAt)
	assert.Equal(t, at(3, 8), got[2].TakenAt)
}

func TestService_UpdateAndPatch(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateInput{MedicationID: "med-1", TakenAt: at(1, 8)})
	require.NoError(t, err)

	// PUT sin was_taken vuelve al default
	got, err := svc.Update(ctx, d.ID, CreateInput{MedicationID: "med-2", TakenAt: at(2, 9)})
	require.NoError(t, err)
	assert.Equal(t, "med-2", got.MedicationID)
	assert.Equal(t, at(2, 9), got.TakenAt)
	assert.True(t, got.WasTaken)

	got, err = svc.Patch(ctx, d.ID, PatchInput{WasTaken: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, got.WasTaken)
	assert.Equal(t, "med-2", got.MedicationID)

	missing := "nope"
	_, err = svc.Patch(ctx, d.ID, PatchInput{MedicationID: &missing})
	assert.ErrorIs(t, err, ErrUnknownMedication)

	_, err = svc.Patch(ctx, "unknown", PatchInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DosesForAndCascade(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{MedicationID: "med-1", TakenAt: at(1, 8)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{MedicationID: "med-1", TakenAt: at(1, 20), WasTaken: boolPtr(false)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{MedicationID: "med-2", TakenAt: at(1, 8)})
	require.NoError(t, err)

	doses, err := svc.DosesFor(ctx, "med-1")
	require.NoError(t, err)
	assert.Len(t, doses, 2)
	assert.InDelta(t, 50.0, adherence.Rate(doses), 0.001)

	require.NoError(t, svc.DeleteByMedication(ctx, "med-1"))
	assert.Len(t, repo.byID, 1)
}
