package app

import (
	"fmt"
	"strings"

	"jobconnect/internal/delivery/http/handler"
	"jobconnect/internal/delivery/http/middleware"
	"jobconnect/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	// Access log first so it observes the status the error middleware writes.
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	cookieName := c.Config.Session.CookieName
	reg := &routes.Registry{
		Health:          handler.NewHealthHandler(),
		Auth:            handler.NewAuthHandler(c.Auth, c.Sessions, cookieName),
		Candidates:      handler.NewCandidateHandler(c.Candidates),
		Recommendations: handler.NewRecommendationHandler(c.Recommendations),
		Recruiter:       handler.NewRecruiterHandler(c.RecruiterAuth, c.Postings, c.Sessions, cookieName),
		Session:         middleware.NewSessionMiddleware(c.Sessions, cookieName),
	}
	reg.Register(f)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
