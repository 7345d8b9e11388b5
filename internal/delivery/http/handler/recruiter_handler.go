package handler

import (
	"errors"

	"jobconnect/internal/catalog"
	"jobconnect/internal/delivery/http/dto"
	"jobconnect/internal/delivery/http/middleware"
	"jobconnect/internal/delivery/http/response"
	"jobconnect/internal/session"
	"jobconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecruiterHandler struct {
	auth       usecase.RecruiterAuthUsecase
	postings   usecase.JobPostingsUsecase
	sessions   session.Store
	cookieName string
}

type recruiterLoginRequest struct {
	CompanyID       int64  `json:"company_id"`
	CompanyPassword string `json:"company_password"`
}

func NewRecruiterHandler(auth usecase.RecruiterAuthUsecase, postings usecase.JobPostingsUsecase, sessions session.Store, cookieName string) *RecruiterHandler {
	return &RecruiterHandler{auth: auth, postings: postings, sessions: sessions, cookieName: cookieName}
}

func (h *RecruiterHandler) RegisterRoutes(r fiber.Router) {
	grp := r.Group("/recruiter")
	grp.Post("/login", h.Login)
	grp.Get("/dashboard", h.Dashboard, middleware.RequireRecruiter())
	grp.Get("/postings", h.Postings, middleware.RequireRecruiter())
}

func (h *RecruiterHandler) Login(c fiber.Ctx) error {
	var req recruiterLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "", nil, err)
	}

	comp, err := h.auth.Login(c.Context(), req.CompanyID, req.CompanyPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			return middleware.NewAppError(fiber.StatusBadRequest, "missing required fields", nil, err)
		case errors.Is(err, usecase.ErrCompanyNotFound):
			return middleware.NewAppError(fiber.StatusUnauthorized, "company id not found", nil, err)
		case errors.Is(err, usecase.ErrIncorrectPassword):
			return middleware.NewAppError(fiber.StatusUnauthorized, "incorrect password", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	if err := establishSession(c, h.sessions, h.cookieName, session.Identity{
		Recruiter: &session.RecruiterIdentity{CompanyID: comp.ID, Company: comp.Name, Domain: comp.Domain},
	}); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	data := map[string]any{
		"company_id": comp.ID,
		"company":    comp.Name,
		"domain":     comp.Domain,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *RecruiterHandler) Dashboard(c fiber.Ctx) error {
	id, ok := middleware.IdentityFromCtx(c)
	if !ok || !id.IsRecruiter() {
		return middleware.NewAppError(fiber.StatusUnauthorized, "recruiter login required", nil, nil)
	}

	data := map[string]any{
		"company": id.Recruiter.Company,
		"domain":  id.Recruiter.Domain,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *RecruiterHandler) Postings(c fiber.Ctx) error {
	id, ok := middleware.IdentityFromCtx(c)
	if !ok || !id.IsRecruiter() {
		return middleware.NewAppError(fiber.StatusUnauthorized, "recruiter login required", nil, nil)
	}

	items, err := h.postings.Postings(c.Context(), id.Recruiter.CompanyID)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			return middleware.NewAppError(fiber.StatusNotFound, "job catalog unavailable", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponses(items))
}
