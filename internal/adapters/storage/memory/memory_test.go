package memory

import (
	"context"
	"testing"
	"time"

	"medtracker/internal/domain/doselogs"
	"medtracker/internal/domain/medications"
	"medtracker/internal/domain/notes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour int) time.Time { return time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC) }

func TestMedicationRepo_CRUD(t *testing.T) {
	repo := NewMedicationRepo()
	ctx := context.Background()

	m := medications.Medication{ID: "m1", Name: "Aspirin", DosageMg: 100, CreatedAt: at(2, 0)}
	require.NoError(t, repo.Create(ctx, m))
	require.Error(t, repo.Create(ctx, m), "duplicado")
	require.NoError(t, repo.Create(ctx, medications.Medication{ID: "m0", Name: "Older", CreatedAt: at(1, 0)}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m0", list[0].ID)

	m.DosageMg = 200
	require.NoError(t, repo.Update(ctx, m))
	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 200, got.DosageMg)

	require.NoError(t, repo.Delete(ctx, "m1"))
	_, err = repo.GetByID(ctx, "m1")
	assert.ErrorIs(t, err, medications.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "m1"), medications.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, m), medications.ErrNotFound)
}

func TestDoseLogRepo_ListFilter(t *testing.T) {
	repo := NewDoseLogRepo()
	ctx := context.Background()

	logs := []doselogs.DoseLog{
		{ID: "a", MedicationID: "m1", TakenAt: at(1, 8)},
		{ID: "b", MedicationID: "m1", TakenAt: at(2, 23)},
		{ID: "c", MedicationID: "m2", TakenAt: at(3, 0)},
		{ID: "d", MedicationID: "m1", TakenAt: at(4, 8)},
	}
	for _, d := range logs {
		require.NoError(t, repo.Create(ctx, d))
	}

	ids := func(items []doselogs.DoseLog) []string {
		out := make([]string, 0, len(items))
		for _, d := range items {
			out = append(out, d.ID)
		}
		return out
	}

	all, err := repo.List(ctx, doselogs.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids(all), "más recientes primero")

	byMed, err := repo.List(ctx, doselogs.ListFilter{MedicationID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "a"}, ids(byMed))

	// el extremo superior es inclusivo por fecha, sin importar la hora
	from, to := at(2, 12), at(3, 0)
	ranged, err := repo.List(ctx, doselogs.ListFilter{From: &from, To: &to, Order: doselogs.OrderOldestFirst})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(ranged))

	require.NoError(t, repo.DeleteByMedication(ctx, "m1"))
	rest, err := repo.List(ctx, doselogs.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids(rest))
}

func TestNoteRepo(t *testing.T) {
	repo := NewNoteRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, notes.Note{ID: "n1", MedicationID: "m1", Text: "a", CreatedAt: at(1, 0)}))
	require.NoError(t, repo.Create(ctx, notes.Note{ID: "n2", MedicationID: "m2", Text: "b", CreatedAt: at(2, 0)}))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	m1, err := repo.List(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, m1, 1)
	assert.Equal(t, "n1", m1[0].ID)

	require.NoError(t, repo.DeleteByMedication(ctx, "m1"))
	_, err = repo.GetByID(ctx, "n1")
	assert.ErrorIs(t, err, notes.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "n1"), notes.ErrNotFound)
}
