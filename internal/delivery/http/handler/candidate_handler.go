package handler

import (
	"errors"

	"jobconnect/internal/delivery/http/dto"
	"jobconnect/internal/delivery/http/middleware"
	"jobconnect/internal/delivery/http/response"
	"jobconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/profile/:username", h.Profile)
	r.Get("/candidates", h.List)
}

func (h *CandidateHandler) Profile(c fiber.Ctx) error {
	username := c.Params("username")

	cand, err := h.uc.Profile(c.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "candidate not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(cand))
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateSummaryResponses(items))
}
