package doselogs

import (
	"time"

	"medtracker/internal/domain/adherence"
)

// DoseLog registra una toma programada: cuándo y si efectivamente se tomó.
type DoseLog struct {
	ID           string
	MedicationID string

	TakenAt  time.Time
	WasTaken bool

	CreatedAt time.Time
}

func (d DoseLog) Dose() adherence.Dose {
	return adherence.Dose{TakenAt: d.TakenAt, WasTaken: d.WasTaken}
}
