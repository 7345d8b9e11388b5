package app

import (
	"context"
	"log"
	"time"

	"jobconnect/internal/catalog"
	"jobconnect/internal/config"
	"jobconnect/internal/database"
	dbpostgres "jobconnect/internal/database/postgres"
	"jobconnect/internal/database/schema"
	"jobconnect/internal/matcher"
	"jobconnect/internal/repository"
	"jobconnect/internal/session"
	"jobconnect/internal/usecase"
)

// Container owns the process-wide dependencies and their shutdown order.
type Container struct {
	Config   config.Config
	DB       database.DB
	Sessions *session.RedisStore
	Logger   *log.Logger

	Auth            usecase.AuthUsecase
	RecruiterAuth   usecase.RecruiterAuthUsecase
	Candidates      usecase.CandidateUsecase
	Recommendations usecase.RecommendationUsecase
	Postings        usecase.JobPostingsUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := schema.Bootstrap(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	sessions, err := session.NewRedisStore(ctx, cfg.Redis)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	candidates := repository.NewPostgresCandidateRepository(db)
	companies := repository.NewPostgresCompanyRepository(db)
	records := repository.NewPostgresRecommendationRepository(db)

	loader := catalog.File{Path: cfg.Catalog.Path}
	m := matcher.New(loader, matcher.DefaultPolicy{})

	return &Container{
		Config:   cfg,
		DB:       db,
		Sessions: sessions,
		Logger:   logger,

		Auth:            usecase.NewAuthUsecase(candidates),
		RecruiterAuth:   usecase.NewRecruiterAuthUsecase(companies),
		Candidates:      usecase.NewCandidateUsecase(candidates),
		Recommendations: usecase.NewRecommendationUsecase(m, candidates, companies, records, logger),
		Postings:        usecase.NewJobPostingsUsecase(loader),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Sessions != nil {
		if err := c.Sessions.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
