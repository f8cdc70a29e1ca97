package handlers

import (
	"net/http"
	"strconv"
	"sync/atomic"

	"car-rental-backend/internal/errs"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errorDetails atomic.Bool

// ExposeErrorDetails включает поле error с текстом исходной ошибки (только для development).
func ExposeErrorDetails(on bool) {
	errorDetails.Store(on)
}

func respond(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"success": status < http.StatusBadRequest}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondBindError(c *gin.Context, err error) {
	body := gin.H{"success": false, "message": "Invalid request data"}
	if errorDetails.Load() {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

// respondError переводит доменные ошибки в HTTP статус; неизвестные ошибки - 500 без подробностей.
func respondError(c *gin.Context, err error) {
	status, sentinel := classify(err)
	message := "Internal server error"
	if sentinel != nil {
		message = sentinel.Error()
	} else {
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	body := gin.H{"success": false, "message": message}
	if errorDetails.Load() {
		body["error"] = err.Error()
	}
	_ = c.Error(err)
	c.JSON(status, body)
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{errs.ErrIncompleteBooking, http.StatusBadRequest},
	{errs.ErrInvalidDateRange, http.StatusBadRequest},
	{errs.ErrInvalidStatus, http.StatusBadRequest},
	{errs.ErrInvalidCode, http.StatusBadRequest},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized},
	{errs.ErrNotVerified, http.StatusUnauthorized},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrInvalidTransition, http.StatusConflict},
	{errs.ErrAdminExists, http.StatusConflict},
	{errs.ErrEmailTaken, http.StatusConflict},
	{errs.ErrPlateTaken, http.StatusConflict},
	{errs.ErrCarInUse, http.StatusConflict},
}

func classify(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err
		}
	}
	return http.StatusInternalServerError, nil
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respond(c, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return uint(id), true
}
