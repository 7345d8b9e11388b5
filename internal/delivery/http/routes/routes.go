package routes

import (
	"jobconnect/internal/delivery/http/handler"
	"jobconnect/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health          *handler.HealthHandler
	Auth            *handler.AuthHandler
	Candidates      *handler.CandidateHandler
	Recommendations *handler.RecommendationHandler
	Recruiter       *handler.RecruiterHandler

	Session *middleware.SessionMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api/v1", r.Session.Middleware())
	r.Auth.RegisterRoutes(api)
	r.Candidates.RegisterRoutes(api)
	r.Recommendations.RegisterRoutes(api)
	r.Recruiter.RegisterRoutes(api)
}
