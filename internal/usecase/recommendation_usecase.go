package usecase

import (
	"context"
	"errors"
	"log"

	"jobconnect/internal/domain/candidate"
	"jobconnect/internal/domain/company"
	"jobconnect/internal/matcher"
	"jobconnect/internal/repository"
)

// Recommender is the matching policy boundary; *matcher.Matcher satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, q matcher.Query) ([]matcher.Match, error)
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, username string, q matcher.Query) ([]matcher.Match, error)
}

type Recommendation struct {
	matcher    Recommender
	candidates repository.CandidateRepository
	companies  repository.CompanyRepository
	records    repository.RecommendationRepository
	logger     *log.Logger
}

func NewRecommendationUsecase(
	m Recommender,
	candidates repository.CandidateRepository,
	companies repository.CompanyRepository,
	records repository.RecommendationRepository,
	logger *log.Logger,
) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{
		matcher:    m,
		candidates: candidates,
		companies:  companies,
		records:    records,
		logger:     logger,
	}
}

// Recommend matches postings for the candidate and records each shown
// (user, job, company) triple. Recording is best effort: an unknown username
// skips it for the whole batch, and each triple is its own committed unit, so
// one failed insert never discards the others or the response. A catalog read
// failure is returned as-is so the handler can distinguish it from "no
// matches".
func (u *Recommendation) Recommend(ctx context.Context, username string, q matcher.Query) ([]matcher.Match, error) {
	matches, err := u.matcher.Recommend(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return matches, nil
	}

	userID, err := u.candidates.IDByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			u.logger.Printf("recommendations: unknown username %q, skipping recording", username)
		} else {
			u.logger.Printf("recommendations: resolving user id for %q: %v", username, err)
		}
		return matches, nil
	}

	for i := range matches {
		m := &matches[i]
		if m.CompanyID == 0 {
			continue
		}

		c, err := u.companies.GetByID(ctx, m.CompanyID)
		switch {
		case err == nil:
			m.Company = c.Name
			m.Domain = c.Domain
		case errors.Is(err, company.ErrNotFound):
			// Unknown company id: fields stay absent, batch continues.
		default:
			u.logger.Printf("recommendations: company lookup %d: %v", m.CompanyID, err)
		}

		triple := repository.Triple{UserID: userID, JobID: m.JobID, CompanyID: m.CompanyID}

		exists, err := u.records.Exists(ctx, triple)
		if err != nil {
			u.logger.Printf("recommendations: existence check %+v: %v", triple, err)
			continue
		}
		if exists {
			continue
		}

		if _, err := u.records.Insert(ctx, triple); err != nil {
			u.logger.Printf("recommendations: insert %+v: %v", triple, err)
		}
	}

	return matches, nil
}
