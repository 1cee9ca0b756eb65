package httperr

import (
	"log/slog"
	"net/http"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort renders err with the status and message FromError assigns to it.
func Abort(c *gin.Context, err error) {
	status, msg := FromError(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8))
	}
	AbortWithError(c, status, err, msg, nil)
}

// FromError maps the error taxonomy to an HTTP status and a client message.
// InconsistentState is checked first: it may wrap a NotFound or a range
// error and must still surface as a server fault.
func FromError(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrInconsistentState):
		return http.StatusInternalServerError, "Internal server error"
	case errs.Is(err, errs.ErrBookingConflict):
		return http.StatusBadRequest, errs.ErrBookingConflict.Error()
	case errs.Is(err, errs.ErrDateFormat):
		return http.StatusBadRequest, err.Error()
	case errs.Is(err, errs.ErrInvalidRange):
		return http.StatusBadRequest, errs.ErrInvalidRange.Error()
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errs.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, "Access denied"
	case errs.Is(err, errs.ErrDuplicate):
		return http.StatusConflict, "Already exists"
	case errs.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password"
	case errs.Is(err, commands.ErrTokenValidation),
		errs.Is(err, jwt.ErrInvalidToken),
		errs.Is(err, jwt.ErrExpiredToken):
		return http.StatusUnauthorized, "Invalid or expired token"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
