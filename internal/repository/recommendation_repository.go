package repository

import (
	"context"

	"jobconnect/internal/database"
)

// Triple identifies one recommendation event shown to a user.
type Triple struct {
	UserID    int64
	JobID     int64
	CompanyID int64
}

type RecommendationRepository interface {
	Exists(ctx context.Context, t Triple) (bool, error)
	// Insert persists the triple if absent and reports whether a row was
	// written. Each call is its own committed unit of work.
	Insert(ctx context.Context, t Triple) (bool, error)
}

type PostgresRecommendationRepository struct {
	db database.DB
}

func NewPostgresRecommendationRepository(db database.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

func (r *PostgresRecommendationRepository) Exists(ctx context.Context, t Triple) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM recommendations
			WHERE user_id = $1 AND job_id = $2 AND company_id = $3
		)`,
		t.UserID, t.JobID, t.CompanyID,
	)
	if err := row.Scan(&exists); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresRecommendationRepository) Insert(ctx context.Context, t Triple) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}

	// ON CONFLICT DO NOTHING backs the application-level existence check with
	// the unique constraint, so a concurrent duplicate is a no-op, not an error.
	affected, err := tx.Exec(ctx,
		`INSERT INTO recommendations (user_id, job_id, company_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, job_id, company_id) DO NOTHING`,
		t.UserID, t.JobID, t.CompanyID,
	)
	if err != nil {
		_ = tx.Rollback(ctx)
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return affected > 0, nil
}
