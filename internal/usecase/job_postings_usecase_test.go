package usecase

import (
	"context"
	"errors"
	"testing"

	"jobconnect/internal/catalog"
)

type stubLoader struct {
	postings []catalog.Posting
	err      error
}

func (s stubLoader) Load() ([]catalog.Posting, error) {
	return s.postings, s.err
}

func TestJobPostings_FiltersByCompany(t *testing.T) {
	uc := NewJobPostingsUsecase(stubLoader{postings: []catalog.Posting{
		{JobID: 1, CompanyID: 10},
		{JobID: 2, CompanyID: 20},
		{JobID: 3, CompanyID: 10},
	}})

	got, err := uc.Postings(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(got))
	}
	for _, p := range got {
		if p.CompanyID != 10 {
			t.Fatalf("unexpected posting %+v", p)
		}
	}
}

func TestJobPostings_NoneIsEmptyNotError(t *testing.T) {
	uc := NewJobPostingsUsecase(stubLoader{postings: []catalog.Posting{{JobID: 1, CompanyID: 10}}})

	got, err := uc.Postings(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestJobPostings_MissingCatalogIsDistinct(t *testing.T) {
	uc := NewJobPostingsUsecase(stubLoader{err: catalog.ErrUnavailable})

	_, err := uc.Postings(context.Background(), 10)
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
