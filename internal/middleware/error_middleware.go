package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentroster/internal/app/models/dto"
	"github.com/yigit/studentroster/internal/pkg/apperrors"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps an error to its status code and error envelope. The
// order matters: a connection failure is reported as such even when the
// cause also looks like a database error.
func HandleAPIError(c *gin.Context, err error) {
	var dbErr *apperrors.DatabaseError

	switch {
	case errors.Is(err, apperrors.ErrConnectionFailed):
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MessageConnectionFailed))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(dto.MessageStudentNotFound))
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.As(err, &dbErr):
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.DatabaseErrorPrefix+dbErr.Error()))
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ServerErrorPrefix+err.Error()))
	}

	_ = c.Error(err)
}
