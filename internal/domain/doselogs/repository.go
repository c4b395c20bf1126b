package doselogs

import (
	"context"
	"time"
)

type Order int

const (
	// OrderNewestFirst es el orden por defecto de los listados.
	OrderNewestFirst Order = iota
	OrderOldestFirst
)

type Repository interface {
	Create(ctx context.Context, d DoseLog) error
	GetByID(ctx context.Context, id string) (DoseLog, error)
	List(ctx context.Context, filter ListFilter) ([]DoseLog, error)
	Update(ctx context.Context, d DoseLog) error
	Delete(ctx context.Context, id string) error
	DeleteByMedication(ctx context.Context, medicationID string) error
}

// ListFilter: From/To son fechas (sin hora) y el rango es inclusivo en UTC.
type ListFilter struct {
	MedicationID string
	From         *time.Time
	To           *time.Time
	Order        Order
}
