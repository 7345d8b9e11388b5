package usecase

import (
	"context"

	"jobconnect/internal/catalog"
)

type JobPostingsUsecase interface {
	Postings(ctx context.Context, companyID int64) ([]catalog.Posting, error)
}

type JobPostings struct {
	loader catalog.Loader
}

func NewJobPostingsUsecase(loader catalog.Loader) *JobPostings {
	return &JobPostings{loader: loader}
}

// Postings returns the catalog slice owned by one company. A missing catalog
// surfaces as catalog.ErrUnavailable, never as an empty list.
func (u *JobPostings) Postings(ctx context.Context, companyID int64) ([]catalog.Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	postings, err := u.loader.Load()
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Posting, 0)
	for _, p := range postings {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}
