package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobconnect/internal/database"
	"jobconnect/internal/domain/candidate"

	"github.com/jackc/pgx/v5"
)

type CandidateRepository interface {
	Create(ctx context.Context, c candidate.Candidate) (int64, error)
	GetByUsername(ctx context.Context, username string) (candidate.Candidate, error)
	IDByUsername(ctx context.Context, username string) (int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListSummaries(ctx context.Context) ([]candidate.Summary, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Candidate) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO userinfo (username, password, name, email, experience, designation, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		c.Username, c.Password, c.Name, c.Email, c.Experience, c.Designation, c.Skills,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresCandidateRepository) GetByUsername(ctx context.Context, username string) (candidate.Candidate, error) {
	var c candidate.Candidate
	row := r.db.QueryRow(ctx,
		`SELECT id, username, password, name, email, experience, designation, skills
		 FROM userinfo WHERE username = $1`,
		username,
	)
	if err := row.Scan(&c.ID, &c.Username, &c.Password, &c.Name, &c.Email, &c.Experience, &c.Designation, &c.Skills); err != nil {
		if isNoRows(err) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) IDByUsername(ctx context.Context, username string) (int64, error) {
	var id int64
	row := r.db.QueryRow(ctx, `SELECT id FROM userinfo WHERE username = $1`, username)
	if err := row.Scan(&id); err != nil {
		if isNoRows(err) {
			return 0, candidate.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *PostgresCandidateRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM userinfo WHERE username = $1)`, username)
}

func (r *PostgresCandidateRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM userinfo WHERE email = $1)`, email)
}

func (r *PostgresCandidateRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, query, arg)
	if err := row.Scan(&exists); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresCandidateRepository) ListSummaries(ctx context.Context) ([]candidate.Summary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, experience, designation, skills
		 FROM userinfo ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Summary, 0)
	for rows.Next() {
		var s candidate.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Experience, &s.Designation, &s.Skills); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
