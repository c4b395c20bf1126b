package adherence

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidSchedule  = errors.New("days and schedule must be positive")
	ErrInvalidRange     = errors.New("start date must not be after end date")
	ErrScheduleOverflow = errors.New("expected doses exceed the supported range")
)

// DateLayout es el formato de fecha (sin hora) que aceptan los filtros.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Dose es la vista mínima de un DoseLog que necesita el cálculo.
type Dose struct {
	TakenAt  time.Time
	WasTaken bool
}

// ExpectedDoses devuelve days * perDay.
// Ambos deben ser > 0; cero o negativo es ErrInvalidSchedule (nunca 0 silencioso).
// Si el producto no entra en un int devuelve ErrScheduleOverflow.
func ExpectedDoses(perDay, days int) (int, error) {
	if days <= 0 || perDay <= 0 {
		return 0, ErrInvalidSchedule
	}
	if days > math.MaxInt/perDay {
		return 0, ErrScheduleOverflow
	}
	return days * perDay, nil
}

// Rate es la adherencia observada sobre todo el historial: tomadas / registradas * 100.
// Sin registros devuelve 0.
func Rate(doses []Dose) float64 {
	if len(doses) == 0 {
		return 0
	}
	taken := 0
	for _, d := range doses {
		if d.WasTaken {
			taken++
		}
	}
	return float64(taken) / float64(len(doses)) * 100
}

// RateOverPeriod compara dosis tomadas en [start, end] (fechas UTC, inclusivo)
// contra ExpectedDoses para los días del rango.
// Si el denominador no se puede calcular (p.ej. perDay == 0) devuelve 0 sin error.
func RateOverPeriod(perDay int, doses []Dose, start, end time.Time) (float64, error) {
	start, end = DateOf(start), DateOf(end)
	if start.After(end) {
		return 0, ErrInvalidRange
	}

	expected, err := ExpectedDoses(perDay, DaysInRange(start, end))
	if errors.Is(err, ErrInvalidSchedule) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	taken := 0
	for _, d := range doses {
		if d.WasTaken && InRange(d.TakenAt, start, end) {
			taken++
		}
	}
	return float64(taken) / float64(expected) * 100, nil
}

// DaysInRange cuenta días calendario de start a end, ambos incluidos.
func DaysInRange(start, end time.Time) int {
	// Sub satura en ~292 años; se cuenta con segundos Unix
	return int((DateOf(end).Unix()-DateOf(start).Unix())/secondsPerDay) + 1
}

// InRange indica si la fecha (UTC) de t cae dentro de [start, end].
func InRange(t, start, end time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(start)) && !d.After(DateOf(end))
}

// DateOf trunca a medianoche UTC.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
