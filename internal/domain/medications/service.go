package medications

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"medtracker/internal/domain/adherence"
	"medtracker/internal/ports/druginfo"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medication not found")
)

// DoseHistory entrega el historial de dosis de un medicamento para los cálculos.
// Lo implementa doselogs.Service; se define acá para evitar el ciclo de imports.
type DoseHistory interface {
	DosesFor(ctx context.Context, medicationID string) ([]adherence.Dose, error)
}

// Dependent es un módulo con registros colgando de un medicamento (dose logs, notes).
type Dependent interface {
	DeleteByMedication(ctx context.Context, medicationID string) error
}

type Service struct {
	repo       Repository
	doses      DoseHistory
	drugs      druginfo.Lookup
	dependents []Dependent
	now        func() time.Time
}

func NewService(repo Repository, doses DoseHistory, drugs druginfo.Lookup, dependents ...Dependent) *Service {
	return &Service{
		repo:       repo,
		doses:      doses,
		drugs:      drugs,
		dependents: dependents,
		now:        time.Now,
	}
}

type CreateInput struct {
	Name             string
	DosageMg         int
	PrescribedPerDay int
}

type PatchInput struct {
	Name             *string
	DosageMg         *int
	PrescribedPerDay *int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medication, error) {
	if err := validateInput(in); err != nil {
		return Medication{}, err
	}

	now := s.now().UTC()
	m := Medication{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(in.Name),
		DosageMg:         in.DosageMg,
		PrescribedPerDay: in.PrescribedPerDay,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Medication, error) {
	return s.repo.List(ctx)
}

// Update reemplaza todos los campos editables (PUT).
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Medication, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}
	if err := validateInput(in); err != nil {
		return Medication{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.DosageMg = in.DosageMg
	current.PrescribedPerDay = in.PrescribedPerDay
	return s.save(ctx, current)
}

// Patch aplica solo los campos presentes (nil = no tocar).
func (s *Service) Patch(ctx context.Context, id string, in PatchInput) (Medication, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}

	next := CreateInput{
		Name:             current.Name,
		DosageMg:         current.DosageMg,
		PrescribedPerDay: current.PrescribedPerDay,
	}
	if in.Name != nil {
		next.Name = *in.Name
	}
	if in.DosageMg != nil {
		next.DosageMg = *in.DosageMg
	}
	if in.PrescribedPerDay != nil {
		next.PrescribedPerDay = *in.PrescribedPerDay
	}
	if err := validateInput(next); err != nil {
		return Medication{}, err
	}

	current.Name = strings.TrimSpace(next.Name)
	current.DosageMg = next.DosageMg
	current.PrescribedPerDay = next.PrescribedPerDay
	return s.save(ctx, current)
}

// Delete borra el medicamento y después, en cascada, sus dose logs y notas.
// Si falla el borrado del medicamento los dependientes quedan intactos.
func (s *Service) Delete(ctx context.Context, id string) error {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, m.ID); err != nil {
		return err
	}
	for _, d := range s.dependents {
		if err := d.DeleteByMedication(ctx, m.ID); err != nil {
			return fmt.Errorf("delete dependents of %s: %w", m.ID, err)
		}
	}
	return nil
}

// ExpectedDoses es days * prescribed_per_day para el medicamento.
// Medicamento sin esquema o days <= 0 => adherence.ErrInvalidSchedule.
func (s *Service) ExpectedDoses(ctx context.Context, id string, days int) (int, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return adherence.ExpectedDoses(m.PrescribedPerDay, days)
}

// Adherence es el % de dosis tomadas sobre todo el historial registrado.
func (s *Service) Adherence(ctx context.Context, m Medication) (float64, error) {
	doses, err := s.history(ctx, m.ID)
	if err != nil {
		return 0, err
	}
	return adherence.Rate(doses), nil
}

// AdherenceOverPeriod compara tomadas en [start, end] contra las esperadas por esquema.
func (s *Service) AdherenceOverPeriod(ctx context.Context, m Medication, start, end time.Time) (float64, error) {
	doses, err := s.history(ctx, m.ID)
	if err != nil {
		return 0, err
	}
	return adherence.RateOverPeriod(m.PrescribedPerDay, doses, start, end)
}

// DrugInfo consulta el catálogo externo con el nombre del medicamento.
func (s *Service) DrugInfo(ctx context.Context, m Medication) druginfo.Result {
	if s.drugs == nil {
		return druginfo.NotConfigured()
	}
	return s.drugs.Lookup(ctx, m.Name)
}

func (s *Service) history(ctx context.Context, id string) ([]adherence.Dose, error) {
	if s.doses == nil {
		return nil, nil
	}
	return s.doses.DosesFor(ctx, id)
}

func (s *Service) save(ctx context.Context, m Medication) (Medication, error) {
	m.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

// maxStoredInt: dosage_mg y prescribed_per_day son INTEGER en postgres.
const maxStoredInt = math.MaxInt32

func validateInput(in CreateInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if in.DosageMg <= 0 || in.DosageMg > maxStoredInt {
		return ErrInvalidInput
	}
	if in.PrescribedPerDay < 0 || in.PrescribedPerDay > maxStoredInt {
		return ErrInvalidInput
	}
	return nil
}
