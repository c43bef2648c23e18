package api

import (
	"fmt"

	"game-matchmaker/internal/domain/entity"
	"game-matchmaker/internal/logging"
	"game-matchmaker/internal/metrics"
	"game-matchmaker/internal/usecase"
	"game-matchmaker/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const HealthMessage = "Steam Game Matchmaker API"

type RecommendationHandler struct {
	recommender *usecase.Recommender
}

func NewRecommendationHandler(rec *usecase.Recommender) *RecommendationHandler {
	return &RecommendationHandler{recommender: rec}
}

// HandleHealth never depends on the AI provider.
func (h *RecommendationHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(entity.HealthStatus{
		Status:  "ok",
		Message: HealthMessage,
	})
}

// HandleRecommendations answers 200 for every well-formed request. Provider
// failures are reported in the body with success=false, so clients must
// check the success field rather than the status code.
func (h *RecommendationHandler) HandleRecommendations(c *fiber.Ctx) error {
	var req entity.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", entity.ErrInvalidRequest, err)
	}
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrInvalidRequest, err)
	}

	recs, err := h.recommender.GetGameRecommendations(c.Context(), req.Games(), req.Genres(), req.Friends())
	if err != nil {
		log := logging.With("api")
		log.Error().
			Err(err).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msgf("Error getting recommendations: %v", err)
		metrics.RecordOutcome(false)
		return c.Status(fiber.StatusOK).JSON(entity.NewFailureResponse(err))
	}

	metrics.RecordOutcome(true)
	return c.Status(fiber.StatusOK).JSON(entity.NewSuccessResponse(recs))
}
