package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// FieldViolation is a domain error that blames one input field. Errors
// implementing it, alone or joined, are reported as 400 with a field list.
type FieldViolation interface {
	error
	FieldReason() (field, reason string)
}

// fieldViolations walks err, including errors.Join trees, and returns the
// violations it carries.
func fieldViolations(err error) []FieldError {
	var out []FieldError
	var walk func(error)
	walk = func(e error) {
		if v, ok := e.(FieldViolation); ok {
			field, reason := v.FieldReason()
			out = append(out, FieldError{Field: field, Reason: reason})
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := u.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	if err != nil {
		walk(err)
	}
	return out
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	if out := fieldViolations(err); len(out) > 0 {
		reasons := make([]string, 0, len(out))
		for _, f := range out {
			reasons = append(reasons, f.Reason)
		}
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: strings.Join(reasons, "; "),
			TraceID: traceID,
			Data:    out,
		})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDraftNotFound):
		RespondError(c, http.StatusNotFound, "Draft not found")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrPersonalityNotFound):
		RespondError(c, http.StatusNotFound, "Personality quiz not taken yet")
	case errors.Is(err, ErrSubmissionInProgress):
		RespondError(c, http.StatusConflict, "This plan is already being saved")
	case errors.Is(err, ErrSubmissionFailed):
		zap.L().Warn("itinerary submission failed", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusBadGateway, "Could not save the itinerary, please try again")
	case errors.Is(err, ErrRemoteUnavailable):
		zap.L().Warn("trip service call failed", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusBadGateway, "Trip service unavailable")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unknown error", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
