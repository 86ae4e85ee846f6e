package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/progress-analytics-api/internal/models"
	appErrors "github.com/noah-isme/progress-analytics-api/pkg/errors"
)

type fakeEventSrv struct {
	err  error
	last *models.ProgressEvent
}

func (f *fakeEventSrv) Handle(_ context.Context, event models.ProgressEvent) error {
	f.last = &event
	return f.err
}

func postEvent(handler *EventHandler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/internal/progress-events", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.Ingest(c)
	c.Writer.WriteHeaderNow()
	return rec
}

func TestEventHandlerIngest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeEventSrv{}
	handler := NewEventHandler(service)

	rec := postEvent(handler, `{"type":"quiz_grade_updated","userId":10,"courseId":7}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	if assert.NotNil(t, service.last) {
		assert.Equal(t, models.EventQuizGradeUpdated, service.last.Type)
		assert.Equal(t, int64(10), service.last.UserID)
		assert.Equal(t, int64(7), service.last.CourseID)
	}
}

func TestEventHandlerMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeEventSrv{}
	handler := NewEventHandler(service)

	rec := postEvent(handler, `{"type":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, service.last)
}

func TestEventHandlerServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEventHandler(&fakeEventSrv{err: appErrors.Clone(appErrors.ErrValidation, "unknown event type")})

	rec := postEvent(handler, `{"type":"course_viewed","userId":10,"courseId":7}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
