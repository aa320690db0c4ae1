package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eduface-labs/eduface/internal/domain"
)

type AttendanceRepository struct {
	pool PgxPool
}

func NewAttendanceRepository(pool PgxPool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Create appends one record to the ledger. Records are never updated or
// deleted afterwards.
func (r *AttendanceRepository) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (id, student_id, subject, date, time, status, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, query,
		rec.ID,
		rec.StudentID,
		rec.Subject,
		rec.Date,
		rec.Time,
		rec.Status,
		rec.Confidence,
	).Scan(&rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("create attendance record: %w", err)
	}

	return nil
}

// List returns ledger entries, newest first. Either filter may be empty.
func (r *AttendanceRepository) List(ctx context.Context, studentID, date string) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, subject, date, time, status, confidence, created_at
		FROM attendance_records
		WHERE ($1 = '' OR student_id = $1)
		  AND ($2 = '' OR date = $2)
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, studentID, date)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var rec domain.AttendanceRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.StudentID,
			&rec.Subject,
			&rec.Date,
			&rec.Time,
			&rec.Status,
			&rec.Confidence,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance records: %w", err)
	}

	return records, nil
}
