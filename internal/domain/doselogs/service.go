package doselogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medtracker/internal/domain/adherence"
	"medtracker/internal/domain/medications"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("dose log not found")
	ErrUnknownMedication = errors.New("medication does not exist")
)

// MedicationLookup resuelve el medicamento dueño de un dose log.
// Lo cumplen medications.Repository y *medications.Service.
type MedicationLookup interface {
	GetByID(ctx context.Context, id string) (medications.Medication, error)
}

type Service struct {
	repo Repository
	meds MedicationLookup
	now  func() time.Time
}

func NewService(repo Repository, meds MedicationLookup) *Service {
	return &Service{
		repo: repo,
		meds: meds,
		now:  time.Now,
	}
}

type CreateInput struct {
	MedicationID string
	TakenAt      time.Time
	WasTaken     *bool // nil => true
}

type PatchInput struct {
	MedicationID *string
	TakenAt      *time.Time
	WasTaken     *bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (DoseLog, error) {
	medID := strings.TrimSpace(in.MedicationID)
	if medID == "" || in.TakenAt.IsZero() {
		return DoseLog{}, ErrInvalidInput
	}
	if err := s.ensureMedication(ctx, medID); err != nil {
		return DoseLog{}, err
	}

	wasTaken := true
	if in.WasTaken != nil {
		wasTaken = *in.WasTaken
	}

	d := DoseLog{
		ID:           uuid.NewString(),
		MedicationID: medID,
		TakenAt:      in.TakenAt.UTC(),
		WasTaken:     wasTaken,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return DoseLog{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (DoseLog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DoseLog{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]DoseLog, error) {
	filter.MedicationID = strings.TrimSpace(filter.MedicationID)
	return s.repo.List(ctx, filter)
}

// ListByDateRange devuelve los logs con fecha de taken_at en [start, end], más antiguos primero.
func (s *Service) ListByDateRange(ctx context.Context, start, end time.Time) ([]DoseLog, error) {
	from, to := adherence.DateOf(start), adherence.DateOf(end)
	return s.repo.List(ctx, ListFilter{From: &from, To: &to, Order: OrderOldestFirst})
}

// Update reemplaza medication, taken_at y was_taken (PUT).
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (DoseLog, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return DoseLog{}, err
	}
	wasTaken := true
	if in.WasTaken != nil {
		wasTaken = *in.WasTaken
	}
	medID := strings.TrimSpace(in.MedicationID)
	return s.apply(ctx, current, PatchInput{MedicationID: &medID, TakenAt: &in.TakenAt, WasTaken: &wasTaken})
}

func (s *Service) Patch(ctx context.Context, id string, in PatchInput) (DoseLog, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return DoseLog{}, err
	}
	return s.apply(ctx, current, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, d.ID)
}

// DosesFor implementa medications.DoseHistory.
func (s *Service) DosesFor(ctx context.Context, medicationID string) ([]adherence.Dose, error) {
	logs, err := s.repo.List(ctx, ListFilter{MedicationID: medicationID})
	if err != nil {
		return nil, fmt.Errorf("list dose logs: %w", err)
	}
	out := make([]adherence.Dose, 0, len(logs))
	for _, d := range logs {
		out = append(out, d.Dose())
	}
	return out, nil
}

// DeleteByMedication implementa medications.Dependent.
func (s *Service) DeleteByMedication(ctx context.Context, medicationID string) error {
	return s.repo.DeleteByMedication(ctx, medicationID)
}

func (s *Service) apply(ctx context.Context, d DoseLog, in PatchInput) (DoseLog, error) {
	if in.MedicationID != nil {
		medID := strings.TrimSpace(*in.MedicationID)
		if medID == "" {
			return DoseLog{}, ErrInvalidInput
		}
		if medID != d.MedicationID {
			if err := s.ensureMedication(ctx, medID); err != nil {
				return DoseLog{}, err
			}
		}
		d.MedicationID = medID
	}
	if in.TakenAt != nil {
		if in.TakenAt.IsZero() {
			return DoseLog{}, ErrInvalidInput
		}
		d.TakenAt = in.TakenAt.UTC()
	}
	if in.WasTaken != nil {
		d.WasTaken = *in.WasTaken
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return DoseLog{}, err
	}
	return d, nil
}

func (s *Service) ensureMedication(ctx context.Context, medID string) error {
	if _, err := s.meds.GetByID(ctx, medID); err != nil {
		if errors.Is(err, medications.ErrNotFound) {
			return ErrUnknownMedication
		}
		return err
	}
	return nil
}
