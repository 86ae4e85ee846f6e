package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/progress-analytics-api/internal/service"
	appErrors "github.com/noah-isme/progress-analytics-api/pkg/errors"
	"github.com/noah-isme/progress-analytics-api/pkg/response"
)

type exportService interface {
	CourseBaselineReport(ctx context.Context, req service.BaselineExportRequest) (*service.BaselineExport, error)
}

// ExportHandler serves downloadable course baseline reports.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// CourseBaseline godoc
// @Summary Export the course progress baseline
// @Tags Progress
// @Produce text/csv,application/pdf
// @Param courseid path int true "Course ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /courses/{courseid}/progress-export [get]
func (h *ExportHandler) CourseBaseline(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	courseID, err := courseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := c.DefaultQuery("format", "csv")

	result, err := h.service.CourseBaselineReport(c.Request.Context(), service.BaselineExportRequest{
		CourseID: courseID,
		Format:   format,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
