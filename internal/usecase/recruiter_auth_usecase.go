package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobconnect/internal/domain/company"
	"jobconnect/internal/repository"
)

var ErrCompanyNotFound = errors.New("company id not found")

type RecruiterAuthUsecase interface {
	Login(ctx context.Context, companyID int64, password string) (company.Company, error)
}

type RecruiterAuth struct {
	companies repository.CompanyRepository
}

func NewRecruiterAuthUsecase(companies repository.CompanyRepository) *RecruiterAuth {
	return &RecruiterAuth{companies: companies}
}

func (u *RecruiterAuth) Login(ctx context.Context, companyID int64, password string) (company.Company, error) {
	if companyID <= 0 || password == "" {
		return company.Company{}, ErrMissingFields
	}

	c, err := u.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if c.Password != password {
		return company.Company{}, ErrIncorrectPassword
	}

	c.Password = ""
	return c, nil
}
