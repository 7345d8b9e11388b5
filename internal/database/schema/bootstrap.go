package schema

import (
	"context"
	"fmt"

	"jobconnect/internal/database"
)

const createUserinfo = `
CREATE TABLE IF NOT EXISTS userinfo (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	experience INTEGER NOT NULL,
	designation TEXT NOT NULL,
	skills TEXT NOT NULL
)`

// The triple uniqueness constraint closes the check-then-insert race between
// concurrent requests for the same user; inserts use ON CONFLICT DO NOTHING.
const createRecommendations = `
CREATE TABLE IF NOT EXISTS recommendations (
	rec_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES userinfo(id),
	job_id BIGINT NOT NULL,
	company_id BIGINT NOT NULL,
	UNIQUE (user_id, job_id, company_id)
)`

// Bootstrap creates the tables this service owns. The companies table is
// provisioned out of band and is only verified, never created here.
func Bootstrap(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	if _, err := db.Exec(ctx, createUserinfo); err != nil {
		return fmt.Errorf("create userinfo: %w", err)
	}
	if _, err := db.Exec(ctx, createRecommendations); err != nil {
		return fmt.Errorf("create recommendations: %w", err)
	}

	if err := verifyTableColumns(ctx, db, "companies", "company_id", "company_pwd", "company", "domain"); err != nil {
		return err
	}

	return nil
}

func verifyTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(existing) == 0 {
		return fmt.Errorf("table %s not found: provision it before starting the server", table)
	}
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
