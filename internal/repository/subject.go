package repository

import (
	"context"
	"fmt"

	"github.com/eduface-labs/eduface/internal/domain"
)

type SubjectRepository struct {
	pool PgxPool
}

func NewSubjectRepository(pool PgxPool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

func (r *SubjectRepository) List(ctx context.Context) ([]domain.Subject, error) {
	query := `
		SELECT id, name
		FROM subjects
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []domain.Subject
	for rows.Next() {
		var s domain.Subject
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subjects: %w", err)
	}

	return subjects, nil
}

func (r *SubjectRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subjects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count subjects: %w", err)
	}
	return count, nil
}

func (r *SubjectRepository) Insert(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO subjects (name) VALUES ($1)`, name)
	if err != nil {
		return fmt.Errorf("insert subject: %w", err)
	}
	return nil
}
