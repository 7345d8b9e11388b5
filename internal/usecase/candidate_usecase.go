package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobconnect/internal/domain/candidate"
	"jobconnect/internal/repository"
)

type CandidateUsecase interface {
	Profile(ctx context.Context, username string) (candidate.Candidate, error)
	List(ctx context.Context) ([]candidate.Summary, error)
}

type Candidates struct {
	candidates repository.CandidateRepository
}

func NewCandidateUsecase(candidates repository.CandidateRepository) *Candidates {
	return &Candidates{candidates: candidates}
}

func (u *Candidates) Profile(ctx context.Context, username string) (candidate.Candidate, error) {
	if username == "" {
		return candidate.Candidate{}, ErrUsernameNotFound
	}

	c, err := u.candidates.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Candidate{}, ErrUsernameNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return sanitize(c), nil
}

func (u *Candidates) List(ctx context.Context) ([]candidate.Summary, error) {
	out, err := u.candidates.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return out, nil
}
