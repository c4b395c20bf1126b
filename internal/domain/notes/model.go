package notes

import "time"

// Note es texto libre asociado a un medicamento en una fecha.
// Solo se crea o se borra, no se edita.
type Note struct {
	ID           string
	MedicationID string

	Text string
	Date time.Time // fecha sin hora, UTC

	CreatedAt time.Time
}
