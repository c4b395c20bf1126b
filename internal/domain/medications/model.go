package medications

import "time"

// Medication es un medicamento con su esquema diario.
// PrescribedPerDay == 0 significa "sin esquema": los cálculos por esquema no aplican.
type Medication struct {
	ID string

	Name             string
	DosageMg         int
	PrescribedPerDay int

	CreatedAt time.Time
	UpdatedAt time.Time
}
