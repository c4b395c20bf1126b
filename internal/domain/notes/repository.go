package notes

import "context"

type Repository interface {
	Create(ctx context.Context, n Note) error
	GetByID(ctx context.Context, id string) (Note, error)
	// List con medicationID vacío devuelve todas las notas.
	List(ctx context.Context, medicationID string) ([]Note, error)
	Delete(ctx context.Context, id string) error
	DeleteByMedication(ctx context.Context, medicationID string) error
}
