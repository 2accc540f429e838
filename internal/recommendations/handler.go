package recommendations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/shared/metrics"
	"skincare-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the recommendations service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.fetchRecommended)
}

func (h *Handler) fetchRecommended(c *gin.Context) {
	metrics.IncRecommendationRequested()

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		metrics.IncRecommendationRejected()
		respond.Error(c, http.StatusBadRequest, "malformed_request", "request body must be a JSON object", nil)
		return
	}

	start := time.Now()
	recs, err := h.Svc.FetchRecommended(c.Request.Context(), raw)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			metrics.IncRecommendationRejected()
			respond.Error(c, http.StatusBadRequest, "malformed_request", "malformed request", gin.H{
				"missing": verr.Missing,
			})
		default:
			metrics.IncRecommendationFailed()
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch recommendations", nil)
		}
		return
	}
	metrics.IncRecommendationCompleted()
	metrics.ObserveRetrievalDurationMs(metrics.DurationMillis(start))

	respond.JSON(c, http.StatusOK, gin.H{
		"recommendations": recs,
	})
}
