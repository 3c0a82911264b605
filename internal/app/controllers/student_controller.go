package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentroster/internal/app/models"
	"github.com/yigit/studentroster/internal/app/models/dto"
	"github.com/yigit/studentroster/internal/middleware"
	"github.com/yigit/studentroster/internal/pkg/apperrors"
)

// StudentService is the roster behaviour the controller exposes over HTTP
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	ListActiveStudents(ctx context.Context) ([]*models.Student, error)
	SuspendStudent(ctx context.Context, id int64, reason *string) error
	UnsuspendStudent(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*dto.StudentStatsResponse, error)
}

// StudentController handles student roster operations
type StudentController struct {
	studentService StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents returns every student
// @Summary List all students
// @Description Returns every student row ordered by id. Columns beyond id, name and isSuspended are passed through as stored.
// @Tags students
// @Produce json
// @Success 200 {object} dto.StudentListResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Database connection failed, database error or server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentListResponse(students))
}

// ListActiveStudents returns the students that are not suspended
// @Summary List active students
// @Description Returns students whose isSuspended flag is false, ordered by name
// @Tags students
// @Produce json
// @Success 200 {object} dto.StudentListResponse "Active students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Database connection failed, database error or server error"
// @Router /students/active [get]
func (c *StudentController) ListActiveStudents(ctx *gin.Context) {
	students, err := c.studentService.ListActiveStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentListResponse(students))
}

// GetStats returns suspension statistics
// @Summary Roster statistics
// @Description Counts active and suspended students overall and per section
// @Tags students
// @Produce json
// @Success 200 {object} dto.StudentStatsResponse "Statistics computed successfully"
// @Failure 500 {object} dto.ErrorResponse "Database connection failed, database error or server error"
// @Router /students/stats [get]
func (c *StudentController) GetStats(ctx *gin.Context) {
	stats, err := c.studentService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// SuspendStudent suspends a student
// @Summary Suspend a student
// @Description Sets the student's isSuspended flag. Suspending an already suspended student succeeds.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.SuspendStudentRequest false "Optional suspension reason"
// @Success 200 {object} dto.SuccessResponse "Student suspended successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID or request body"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Database connection failed, database error or server error"
// @Router /students/{id}/suspend [put]
func (c *StudentController) SuspendStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.SuspendStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(dto.InvalidBodyPrefix+middleware.FormatBindingError(err)))
		return
	}

	if err := c.studentService.SuspendStudent(ctx.Request.Context(), id, req.Reason); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student suspended successfully"))
}

// UnsuspendStudent lifts a student's suspension
// @Summary Unsuspend a student
// @Description Clears the student's isSuspended flag and any stored suspension reason
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.SuccessResponse "Student unsuspended successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Database connection failed, database error or server error"
// @Router /students/{id}/unsuspend [put]
func (c *StudentController) UnsuspendStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.UnsuspendStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student unsuspended successfully"))
}

// parseStudentID reads the id path parameter, answering 400 when it is not an integer
func parseStudentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(dto.MessageInvalidStudentID))
		return 0, false
	}
	return id, true
}
