package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/progress-analytics-api/internal/middleware"
	"github.com/noah-isme/progress-analytics-api/internal/models"
	appErrors "github.com/noah-isme/progress-analytics-api/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

func courseIDParam(c *gin.Context) (int64, error) {
	raw := c.Param("courseid")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid course id")
	}
	return id, nil
}
