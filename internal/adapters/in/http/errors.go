package http

import (
	"context"
	"errors"
	"net/http"

	"yardwork/internal/core/application/usecases/commands"
	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/ports"
	"yardwork/internal/generated/servers"
	"yardwork/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors onto HTTP status codes. Anything unrecognised is treated as
// the store being unavailable.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, employee.ErrCoverageAreaNotFound):
		return http.StatusNotFound
	case errors.Is(err, job.ErrNotClaimant):
		return http.StatusForbidden
	case errors.Is(err, job.ErrInvalidTransition),
		errors.Is(err, commands.ErrConcurrentModification),
		errors.Is(err, employee.ErrCoverageAreaExists),
		errors.Is(err, ports.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusServiceUnavailable
	}
}

func claimStatus(outcome commands.ClaimOutcome) int {
	switch outcome {
	case commands.Claimed:
		return http.StatusOK
	case commands.AlreadyClaimed:
		return http.StatusConflict
	case commands.NotEligible:
		return http.StatusForbidden
	case commands.JobNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()

	switch {
	case errors.Is(err, job.ErrInvalidTransition):
		// A well-behaved client never asks for an impossible transition.
		s.logger.ErrorContext(ctx.Request().Context(), "invalid job transition requested",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
	case code >= http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
