package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobconnect/internal/domain/candidate"
)

func TestCandidates_Profile_Success(t *testing.T) {
	repo := newMockCandidateRepo(candidate.Candidate{
		ID: 7, Username: "asha", Password: "hunter2", Name: "Asha Rao",
		Email: "asha@example.com", Experience: 2, Designation: "analyst", Skills: "python,sql",
	})
	uc := NewCandidateUsecase(repo)

	got, err := uc.Profile(context.Background(), "asha")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 7 || got.Name != "Asha Rao" || got.Designation != "analyst" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.Password != "" {
		t.Fatalf("expected password stripped from profile")
	}
}

func TestCandidates_List_ProjectsAllFields(t *testing.T) {
	repo := newMockCandidateRepo(candidate.Candidate{
		ID: 7, Username: "asha", Password: "hunter2", Name: "Asha Rao",
		Email: "asha@example.com", Experience: 2, Designation: "analyst", Skills: "python,sql",
	})
	uc := NewCandidateUsecase(repo)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}

	s := got[0]
	if s.ID != 7 || s.Name != "Asha Rao" || s.Email != "asha@example.com" {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Experience != 2 || s.Designation != "analyst" || s.Skills != "python,sql" {
		t.Fatalf("expected full projection, got %+v", s)
	}
}

func TestCandidates_RepositoryFailureKeepsCause(t *testing.T) {
	repo := newMockCandidateRepo()
	repo.err = errors.New("connection refused")
	uc := NewCandidateUsecase(repo)

	_, err := uc.List(context.Background())
	if !errors.Is(err, ErrInternal) || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}
