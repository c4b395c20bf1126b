package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"medtracker/internal/domain/adherence"
	"medtracker/internal/domain/doselogs"
)

type DoseLogsRepo struct {
	db *sql.DB
}

func NewDoseLogsRepo(db *sql.DB) *DoseLogsRepo {
	return &DoseLogsRepo{db: db}
}

func (r *DoseLogsRepo) Create(ctx context.Context, d doselogs.DoseLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dose_logs (
			id, medication_id, taken_at, was_taken, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		d.ID,
		d.MedicationID,
		d.TakenAt,
		d.WasTaken,
		d.CreatedAt,
	)
	return err
}

func (r *DoseLogsRepo) Update(ctx context.Context, d doselogs.DoseLog) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dose_logs
		SET
			medication_id = $2,
			taken_at = $3,
			was_taken = $4
		WHERE id = $1
	`,
		d.ID,
		d.MedicationID,
		d.TakenAt,
		d.WasTaken,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return doselogs.ErrNotFound
	}
	return nil
}

func (r *DoseLogsRepo) GetByID(ctx context.Context, id string) (doselogs.DoseLog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return doselogs.DoseLog{}, doselogs.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, medication_id, taken_at, was_taken, created_at
		FROM dose_logs
		WHERE id = $1
	`, id)

	d, err := scanDoseLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return doselogs.DoseLog{}, doselogs.ErrNotFound
		}
		return doselogs.DoseLog{}, err
	}
	return d, nil
}

func (r *DoseLogsRepo) List(ctx context.Context, filter doselogs.ListFilter) ([]doselogs.DoseLog, error) {
	query, args := buildDoseLogsQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doselogs.DoseLog, 0)
	for rows.Next() {
		d, err := scanDoseLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// buildDoseLogsQuery: el rango de fechas es [From 00:00, To+1 00:00) en UTC.
func buildDoseLogsQuery(filter doselogs.ListFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if filter.MedicationID != "" {
		add("medication_id = $%d", filter.MedicationID)
	}
	if filter.From != nil {
		add("taken_at >= $%d", adherence.DateOf(*filter.From))
	}
	if filter.To != nil {
		add("taken_at < $%d", adherence.DateOf(*filter.To).AddDate(0, 0, 1))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, medication_id, taken_at, was_taken, created_at FROM dose_logs`)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	if filter.Order == doselogs.OrderOldestFirst {
		sb.WriteString(" ORDER BY taken_at ASC, id ASC")
	} else {
		sb.WriteString(" ORDER BY taken_at DESC, id ASC")
	}
	return sb.String(), args
}

func (r *DoseLogsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dose_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return doselogs.ErrNotFound
	}
	return nil
}

func (r *DoseLogsRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dose_logs WHERE medication_id = $1`, medicationID)
	return err
}

func scanDoseLog(s rowScanner) (doselogs.DoseLog, error) {
	var d doselogs.DoseLog
	err := s.Scan(
		&d.ID,
		&d.MedicationID,
		&d.TakenAt,
		&d.WasTaken,
		&d.CreatedAt,
	)
	if err == nil {
		d.TakenAt = d.TakenAt.UTC()
		d.CreatedAt = d.CreatedAt.UTC()
	}
	return d, err
}
