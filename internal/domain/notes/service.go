package notes

import (
	"context"
	"errors"
	"strings"
	"time"

	"medtracker/internal/domain/adherence"
	"medtracker/internal/domain/medications"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("note not found")
	ErrUnknownMedication = errors.New("medication does not exist")
	ErrFutureDate        = errors.New("date cannot be in the future")
)

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
	Text         string
	Date         time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Note, error) {
	medID := strings.TrimSpace(in.MedicationID)
	text := strings.TrimSpace(in.Text)
	if medID == "" || text == "" || in.Date.IsZero() {
		return Note{}, ErrInvalidInput
	}

	now := s.now().UTC()
	date := adherence.DateOf(in.Date)
	if date.After(adherence.DateOf(now)) {
		return Note{}, ErrFutureDate
	}

	if _, err := s.meds.GetByID(ctx, medID); err != nil {
		if errors.Is(err, medications.ErrNotFound) {
			return Note{}, ErrUnknownMedication
		}
		return Note{}, err
	}

	n := Note{
		ID:           uuid.NewString(),
		MedicationID: medID,
		Text:         text,
		Date:         date,
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Note{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, medicationID string) ([]Note, error) {
	return s.repo.List(ctx, strings.TrimSpace(medicationID))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, n.ID)
}

// DeleteByMedication implementa medications.Dependent.
func (s *Service) DeleteByMedication(ctx context.Context, medicationID string) error {
	return s.repo.DeleteByMedication(ctx, medicationID)
}
