package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/progress-analytics-api/internal/middleware"
	"github.com/noah-isme/progress-analytics-api/internal/models"
	"github.com/noah-isme/progress-analytics-api/pkg/config"
	appErrors "github.com/noah-isme/progress-analytics-api/pkg/errors"
	"github.com/noah-isme/progress-analytics-api/pkg/response"
)

type progressService interface {
	CourseQuizMetrics(ctx context.Context, userID, courseID int64) (*models.CourseQuizMetrics, bool, error)
}

// ProgressHandler exposes the quiz metrics endpoint consumed by the
// dashboard widget.
type ProgressHandler struct {
	service progressService
	cfg     config.ProgressConfig
}

// NewProgressHandler constructs the handler.
func NewProgressHandler(service progressService, cfg config.ProgressConfig) *ProgressHandler {
	return &ProgressHandler{service: service, cfg: cfg}
}

// CourseQuizMetrics godoc
// @Summary Quiz progress metrics for the current user in a course
// @Tags Progress
// @Produce json
// @Param courseid path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseid}/quiz-metrics [get]
func (h *ProgressHandler) CourseQuizMetrics(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	courseID, err := courseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	start := time.Now()
	metrics, cacheHit, err := h.service.CourseQuizMetrics(c.Request.Context(), claims.UserID, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	// Display hints for the widget; the core always computes percentile
	// when eligible.
	meta["results_limit"] = h.cfg.ResultsLimit
	meta["show_percentile"] = h.cfg.ShowPercentile
	response.JSON(c, http.StatusOK, metrics, meta)
}
