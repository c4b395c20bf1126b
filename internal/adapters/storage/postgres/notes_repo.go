package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"medtracker/internal/domain/notes"
)

type NotesRepo struct {
	db *sql.DB
}

func NewNotesRepo(db *sql.DB) *NotesRepo {
	return &NotesRepo{db: db}
}

func (r *NotesRepo) Create(ctx context.Context, n notes.Note) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (
			id, medication_id, text, date, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		n.ID,
		n.MedicationID,
		n.Text,
		n.Date,
		n.CreatedAt,
	)
	return err
}

func (r *NotesRepo) GetByID(ctx context.Context, id string) (notes.Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return notes.Note{}, notes.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, medication_id, text, date, created_at
		FROM notes
		WHERE id = $1
	`, id)

	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notes.Note{}, notes.ErrNotFound
		}
		return notes.Note{}, err
	}
	return n, nil
}

func (r *NotesRepo) List(ctx context.Context, medicationID string) ([]notes.Note, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if medicationID == "" {
		rows, err = r.db.QueryContext(ctx, `
			SELECT id, medication_id, text, date, created_at
			FROM notes
			ORDER BY created_at ASC, id ASC
		`)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT id, medication_id, text, date, created_at
			FROM notes
			WHERE medication_id = $1
			ORDER BY created_at ASC, id ASC
		`, medicationID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notes.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notes.ErrNotFound
	}
	return nil
}

func (r *NotesRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE medication_id = $1`, medicationID)
	return err
}

func scanNote(s rowScanner) (notes.Note, error) {
	var (
		n    notes.Note
		date time.Time
	)
	if err := s.Scan(&n.ID, &n.MedicationID, &n.Text, &date, &n.CreatedAt); err != nil {
		return notes.Note{}, err
	}
	// date es DATE, pgx lo entrega como medianoche
	n.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	n.CreatedAt = n.CreatedAt.UTC()
	return n, nil
}
