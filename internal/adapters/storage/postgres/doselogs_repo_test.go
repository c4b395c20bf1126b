package postgres

import (
	"testing"
	"time"

	"medtracker/internal/domain/doselogs"

	"github.com/stretchr/testify/assert"
)

func TestBuildDoseLogsQuery(t *testing.T) {
	from := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("sin filtros", func(t *testing.T) {
		q, args := buildDoseLogsQuery(doselogs.ListFilter{})
		assert.NotContains(t, q, "WHERE")
		assert.Contains(t, q, "ORDER BY taken_at DESC")
		assert.Empty(t, args)
	})

	t.Run("rango inclusivo ascendente", func(t *testing.T) {
		q, args := buildDoseLogsQuery(doselogs.ListFilter{
			MedicationID: "med-1",
			From:         &from,
			To:           &to,
			Order:        doselogs.OrderOldestFirst,
		})
		assert.Contains(t, q, "medication_id = $1 AND taken_at >= $2 AND taken_at < $3")
		assert.Contains(t, q, "ORDER BY taken_at ASC")
		assert.Equal(t, []any{
			"med-1",
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		}, args)
	})
}
