package handler

import (
	"errors"
	"strconv"

	"jobconnect/internal/catalog"
	"jobconnect/internal/delivery/http/dto"
	"jobconnect/internal/delivery/http/middleware"
	"jobconnect/internal/delivery/http/response"
	"jobconnect/internal/matcher"
	"jobconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const messageNoRecommendations = "no recommendations found"

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/recommendations", h.GetRecommendations, middleware.RequireCandidate())
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	id, ok := middleware.IdentityFromCtx(c)
	if !ok || !id.IsCandidate() {
		return middleware.NewAppError(fiber.StatusUnauthorized, "candidate login required", nil, nil)
	}

	q := matcher.Query{
		Skills:      c.Query("skills"),
		Designation: c.Query("designation"),
		Experience:  parseExperience(c.Query("experience")),
	}

	items, err := h.uc.Recommend(c.Context(), id.Candidate.Username, q)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			return middleware.NewAppError(fiber.StatusNotFound, "job catalog unavailable", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.NewRecommendationItemResponses(items)
	if len(out) == 0 {
		return response.Success(c, fiber.StatusOK, messageNoRecommendations, out)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// parseExperience coerces the query parameter to a non-negative integer,
// treating absent, non-numeric and negative values as 0.
func parseExperience(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
