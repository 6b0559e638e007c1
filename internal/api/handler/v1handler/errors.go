package v1handler

import (
	"context"
	"errors"
	"linkaudit/pkg/logger"
	"linkaudit/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// Encode writes the response as {"code": ..., "error": ...}.
func (r *ErrorResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("error")
	e.Str(r.Message)
	e.ObjEnd()
}

// NewError maps err to an HTTP error response by its semantic kind. Errors
// without a client-facing kind become a 500 whose cause is only logged.
func NewError(ctx context.Context, err error) *ErrorResponse {
	var (
		kind   serrors.Kind
		status int
		msg    string
	)
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		kind, status, msg = serrors.ErrBadRequest, http.StatusBadRequest, "bad request"
	case errors.Is(err, serrors.ErrUnauthorized):
		kind, status, msg = serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, serrors.ErrNotFound):
		kind, status, msg = serrors.ErrNotFound, http.StatusNotFound, "resource not found"
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       serrors.ErrInternal.Error(),
			Message:    "internal error",
		}
	}

	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}

	return &ErrorResponse{StatusCode: status, Code: kind.Error(), Message: msg}
}
