package database

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultSubjects is the reference data seeded into an empty subjects
// table.
var DefaultSubjects = []string{
	"General",
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Computer Science",
	"English",
	"History",
}

// SubjectSeedRepository is what SeedSubjects needs from the subject
// repository.
type SubjectSeedRepository interface {
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, name string) error
}

// SeedSubjects inserts the default subject list when the table is empty.
// It is idempotent and runs once during startup, as an explicit
// initialization step rather than ad hoc inserts scattered through boot.
func SeedSubjects(ctx context.Context, repo SubjectSeedRepository, logger *slog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("check subjects: %w", err)
	}

	if count > 0 {
		logger.Debug("subjects already seeded", slog.Int("count", count))
		return nil
	}

	for _, name := range DefaultSubjects {
		if err := repo.Insert(ctx, name); err != nil {
			return fmt.Errorf("seed subject %q: %w", name, err)
		}
	}

	logger.Info("seeded default subjects", slog.Int("count", len(DefaultSubjects)))
	return nil
}
