package handlers

import (
	"net/http"

	"tutorrec_backend/internal/logger"
	"tutorrec_backend/internal/services"
	"tutorrec_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	*BaseHandler
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(base *BaseHandler, recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		BaseHandler:           base,
		recommendationService: recommendationService,
	}
}

func (h *RecommendationHandler) RegisterRoutes(r *gin.RouterGroup) {
	recommend := r.Group("/recommend")
	{
		recommend.POST("", h.Recommend)
		recommend.POST("/explain", h.Explain)
		recommend.GET("/weights", h.GetWeights)
	}
}

// Recommend ranks the submitted tutors against the user's preferences and
// returns the annotated top candidates. The response is always a JSON
// array; degraded inputs produce an empty or unranked list, never a 5xx.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req dto.RecommendRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := logger.WithUserID(c.Request.Context(), req.User.ID)
	recommendations := h.recommendationService.Recommend(ctx, *req.User, req.Tutors)

	c.JSON(http.StatusOK, recommendations)
}

// Explain scores a single candidate and returns the per-factor breakdown.
func (h *RecommendationHandler) Explain(c *gin.Context) {
	var req dto.ExplainRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	breakdown, err := h.recommendationService.ScoreTutor(c.Request.Context(), *req.User, *req.Tutor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// GetWeights returns the fixed ranking priorities.
func (h *RecommendationHandler) GetWeights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"weights": h.recommendationService.Weights(),
	})
}
