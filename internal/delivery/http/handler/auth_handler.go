package handler

import (
	"errors"

	"jobconnect/internal/delivery/http/dto"
	"jobconnect/internal/delivery/http/middleware"
	"jobconnect/internal/delivery/http/response"
	"jobconnect/internal/session"
	"jobconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc         usecase.AuthUsecase
	sessions   session.Store
	cookieName string
}

type signupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Experience  int    `json:"experience"`
	Designation string `json:"designation"`
	Skills      string `json:"skills"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase, sessions session.Store, cookieName string) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, cookieName: cookieName}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	grp := r.Group("/auth")
	grp.Post("/signup", h.Signup)
	grp.Post("/login", h.Login)
	grp.Post("/logout", h.Logout)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "", nil, err)
	}

	cand, err := h.uc.Signup(c.Context(), usecase.SignupInput{
		Username:    req.Username,
		Password:    req.Password,
		Name:        req.Name,
		Email:       req.Email,
		Experience:  req.Experience,
		Designation: req.Designation,
		Skills:      req.Skills,
	})
	if err != nil {
		return mapAuthError(err)
	}

	if err := establishSession(c, h.sessions, h.cookieName, session.Identity{
		Candidate: &session.CandidateIdentity{Username: cand.Username},
	}); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(cand))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "", nil, err)
	}

	cand, err := h.uc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return mapAuthError(err)
	}

	if err := establishSession(c, h.sessions, h.cookieName, session.Identity{
		Candidate: &session.CandidateIdentity{Username: cand.Username},
	}); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(cand))
}

// Logout destroys the whole session, whichever identity holds it.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if sid, ok := middleware.SessionIDFromCtx(c); ok {
		if err := h.sessions.Destroy(c.Context(), sid); err != nil {
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
	}
	clearSessionCookie(c, h.cookieName)
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return middleware.NewAppError(fiber.StatusBadRequest, "missing required fields", nil, err)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return middleware.NewAppError(fiber.StatusConflict, "username already taken", nil, err)
	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "email already taken", nil, err)
	case errors.Is(err, usecase.ErrUsernameNotFound):
		return middleware.NewAppError(fiber.StatusUnauthorized, "username not found", nil, err)
	case errors.Is(err, usecase.ErrIncorrectPassword):
		return middleware.NewAppError(fiber.StatusUnauthorized, "incorrect password", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
