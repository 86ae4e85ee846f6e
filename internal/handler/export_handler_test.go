package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/progress-analytics-api/internal/service"
)

type fakeExportSrv struct {
	result *service.BaselineExport
	err    error
	last   service.BaselineExportRequest
}

func (f *fakeExportSrv) CourseBaselineReport(_ context.Context, req service.BaselineExportRequest) (*service.BaselineExport, error) {
	f.last = req
	return f.result, f.err
}

func TestExportHandlerCourseBaseline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeExportSrv{result: &service.BaselineExport{
		Payload:     []byte("participant,mean_grade\n"),
		Filename:    "course-7-baseline.csv",
		ContentType: "text/csv",
	}}
	handler := NewExportHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/courses/7/progress-export", nil)
	c.Params = gin.Params{{Key: "courseid", Value: "7"}}

	handler.CourseBaseline(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.BaselineExportRequest{CourseID: 7, Format: "csv"}, srv.last)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "course-7-baseline.csv")
}

func TestExportHandlerFormatQueryForwarded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeExportSrv{result: &service.BaselineExport{
		Payload:     []byte("%PDF"),
		Filename:    "course-7-baseline.pdf",
		ContentType: "application/pdf",
	}}
	handler := NewExportHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/courses/7/progress-export?format=pdf", nil)
	c.Params = gin.Params{{Key: "courseid", Value: "7"}}

	handler.CourseBaseline(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pdf", srv.last.Format)
}

func TestExportHandlerInvalidCourseID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeExportSrv{}
	handler := NewExportHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/courses/0/progress-export", nil)
	c.Params = gin.Params{{Key: "courseid", Value: "0"}}

	handler.CourseBaseline(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, service.BaselineExportRequest{}, srv.last)
}
