package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentroster/internal/app/models"
	"github.com/yigit/studentroster/internal/app/models/dto"
	"github.com/yigit/studentroster/internal/db/dbtest"
	"github.com/yigit/studentroster/internal/middleware"
	"github.com/yigit/studentroster/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidation()
}

type mockStudentService struct {
	mock.Mock
}

func (m *mockStudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	students, _ := args.Get(0).([]*models.Student)
	return students, args.Error(1)
}

func (m *mockStudentService) ListActiveStudents(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	students, _ := args.Get(0).([]*models.Student)
	return students, args.Error(1)
}

func (m *mockStudentService) SuspendStudent(ctx context.Context, id int64, reason *string) error {
	return m.Called(ctx, id, reason).Error(0)
}

func (m *mockStudentService) UnsuspendStudent(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStudentService) GetStats(ctx context.Context) (*dto.StudentStatsResponse, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*dto.StudentStatsResponse)
	return stats, args.Error(1)
}

func newStudentRouter(svc StudentService) *gin.Engine {
	controller := NewStudentController(svc)
	router := gin.New()
	students := router.Group("/api/students")
	students.GET("", controller.ListStudents)
	students.GET("/active", controller.ListActiveStudents)
	students.GET("/stats", controller.GetStats)
	students.PUT("/:id/suspend", controller.SuspendStudent)
	students.PUT("/:id/unsuspend", controller.UnsuspendStudent)
	return router
}

func perform(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func amy() *models.Student {
	s := models.NewStudent()
	s.Set(models.ColumnID, int64(1))
	s.Set(models.ColumnName, "Amy")
	s.Set(models.ColumnIsSuspended, false)
	return s
}

func TestStudentController_ListStudents(t *testing.T) {
	svc := new(mockStudentService)
	svc.On("ListStudents", mock.Anything).Return([]*models.Student{amy()}, nil)

	w := perform(newStudentRouter(svc), http.MethodGet, "/api/students", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"count":1,"students":[{"id":1,"name":"Amy","isSuspended":false}]}`, w.Body.String())
}

func TestStudentController_ListActiveStudentsEmpty(t *testing.T) {
	svc := new(mockStudentService)
	svc.On("ListActiveStudents", mock.Anything).Return(nil, nil)

	w := perform(newStudentRouter(svc), http.MethodGet, "/api/students/active", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"students":[]}`, w.Body.String())
}

func TestStudentController_ListErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"connection", apperrors.ErrConnectionFailed, "Database connection failed"},
		{"database", apperrors.NewDatabaseError(errors.New(`column "isSuspended" does not exist`)), `Database error: column "isSuspended" does not exist`},
		{"other", errors.New("context canceled"), "Server error: context canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockStudentService)
			svc.On("ListStudents", mock.Anything).Return(nil, tt.err)

			w := perform(newStudentRouter(svc), http.MethodGet, "/api/students", "")

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":`+quote(tt.message)+`}`, w.Body.String())
		})
	}
}

func TestStudentController_GetStats(t *testing.T) {
	svc := new(mockStudentService)
	svc.On("GetStats", mock.Anything).Return(&dto.StudentStatsResponse{
		Success: true, Total: 2, Active: 1, Suspended: 1, SuspensionRate: 50,
		Sections: []dto.SectionStats{{Section: "Unassigned", Total: 2, Active: 1, Suspended: 1, SuspensionRate: 50}},
	}, nil)

	w := perform(newStudentRouter(svc), http.MethodGet, "/api/students/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.StudentStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 50.0, body.SuspensionRate)
	require.Len(t, body.Sections, 1)
	assert.Equal(t, "Unassigned", body.Sections[0].Section)
}

func TestStudentController_SuspendStudent(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		svc := new(mockStudentService)
		svc.On("SuspendStudent", mock.Anything, int64(1), (*string)(nil)).Return(nil)

		w := perform(newStudentRouter(svc), http.MethodPut, "/api/students/1/suspend", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Student suspended successfully"}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("with reason", func(t *testing.T) {
		svc := new(mockStudentService)
		svc.On("SuspendStudent", mock.Anything, int64(2), mock.MatchedBy(func(r *string) bool {
			return r != nil && *r == "Repeated absence"
		})).Return(nil)

		w := perform(newStudentRouter(svc), http.MethodPut, "/api/students/2/suspend", `{"reason":"Repeated absence"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("reason too long", func(t *testing.T) {
		svc := new(mockStudentService)
		body := `{"reason":"` + strings.Repeat("a", 501) + `"}`

		w := perform(newStudentRouter(svc), http.MethodPut, "/api/students/2/suspend", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request body: reason must be at most 500 characters"}`, w.Body.String())
		svc.AssertNotCalled(t, "SuspendStudent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockStudentService)

		w := perform(newStudentRouter(svc), http.MethodPut, "/api/students/2/suspend", `{"reason":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body: ")
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(mockStudentService)
		svc.On("SuspendStudent", mock.Anything, int64(99), (*string)(nil)).Return(apperrors.ErrStudentNotFound)

		w := perform(newStudentRouter(svc), http.MethodPut, "/api/students/99/suspend", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Student not found"}`, w.Body.String())
	})
}

func TestStudentController_UnsuspendStudent(t *testing.T) {
	svc := new(mockStudentService)
	svc.On("UnsuspendStudent", mock.Anything, int64(2)).Return(nil)
	svc.On("UnsuspendStudent", mock.Anything, int64(3)).Return(apperrors.ErrConnectionFailed)
	router := newStudentRouter(svc)

	w := perform(router, http.MethodPut, "/api/students/2/unsuspend", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Student unsuspended successfully"}`, w.Body.String())

	w = perform(router, http.MethodPut, "/api/students/3/unsuspend", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Database connection failed"}`, w.Body.String())
}

func TestStudentController_InvalidID(t *testing.T) {
	svc := new(mockStudentService)
	router := newStudentRouter(svc)

	for _, path := range []string{
		"/api/students/abc/suspend",
		"/api/students/1.5/unsuspend",
		"/api/students/99999999999999999999/suspend",
	} {
		w := perform(router, http.MethodPut, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"error":"Invalid student ID"}`, w.Body.String(), path)
	}

	svc.AssertNotCalled(t, "SuspendStudent", mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "UnsuspendStudent", mock.Anything, mock.Anything)
}

func TestHealthController(t *testing.T) {
	gw := dbtest.New(t)
	router := gin.New()
	router.GET("/api/health", NewHealthController(gw).Health)

	w := perform(router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"connected"}`, w.Body.String())
	assert.Zero(t, gw.Outstanding())

	gw.PingErr = errors.New("server closed the connection unexpectedly")
	w = perform(router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","database":"disconnected"}`, w.Body.String())

	gw.AcquireErr = errors.New("connection refused")
	w = perform(router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, gw.Outstanding())
}

func quote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
