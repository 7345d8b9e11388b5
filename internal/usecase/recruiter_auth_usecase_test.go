package usecase

import (
	"context"
	"errors"
	"testing"

	"jobconnect/internal/domain/company"
)

func TestRecruiterAuth_Login_Success(t *testing.T) {
	uc := NewRecruiterAuthUsecase(mockCompanyRepo{byID: map[int64]company.Company{
		20: {ID: 20, Password: "s3cret", Name: "Initech", Domain: "fintech"},
	}})

	got, err := uc.Login(context.Background(), 20, "s3cret")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "Initech" || got.Domain != "fintech" {
		t.Fatalf("unexpected company: %+v", got)
	}
	if got.Password != "" {
		t.Fatalf("expected password stripped from result")
	}
}

func TestRecruiterAuth_Login_DistinctFailureModes(t *testing.T) {
	uc := NewRecruiterAuthUsecase(mockCompanyRepo{byID: map[int64]company.Company{
		20: {ID: 20, Password: "s3cret"},
	}})

	if _, err := uc.Login(context.Background(), 99, "s3cret"); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
	if _, err := uc.Login(context.Background(), 20, "wrong"); !errors.Is(err, ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
	if _, err := uc.Login(context.Background(), 0, ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
