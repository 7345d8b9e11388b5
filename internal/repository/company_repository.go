package repository

import (
	"context"

	"jobconnect/internal/database"
	"jobconnect/internal/domain/company"
)

type CompanyRepository interface {
	GetByID(ctx context.Context, companyID int64) (company.Company, error)
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, companyID int64) (company.Company, error) {
	var c company.Company
	row := r.db.QueryRow(ctx,
		`SELECT company_id, company_pwd, company, domain FROM companies WHERE company_id = $1`,
		companyID,
	)
	if err := row.Scan(&c.ID, &c.Password, &c.Name, &c.Domain); err != nil {
		if isNoRows(err) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}
