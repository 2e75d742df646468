package server

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/at-ishikawa/kioku/internal/schedule"
	"github.com/at-ishikawa/kioku/internal/srs"
	"github.com/at-ishikawa/kioku/internal/study"
)

func (h *StudyHandler) validateRequest(msg any) *connect.Error {
	err := h.validate.Struct(msg)
	if err == nil {
		return nil
	}

	connectErr := connect.NewError(connect.CodeInvalidArgument, err)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		var fieldViolations []*errdetails.BadRequest_FieldViolation
		for _, v := range validationErrs {
			fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field(),
				Description: fmt.Sprintf("failed on the %q rule", v.Tag()),
			})
		}
		addBadRequest(connectErr, fieldViolations...)
	}
	return connectErr
}

func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, srs.ErrInvalidRating):
		connectErr := connect.NewError(connect.CodeInvalidArgument, err)
		addBadRequest(connectErr, &errdetails.BadRequest_FieldViolation{
			Field:       "rating",
			Description: "must be one of again, hard, good, easy",
		})
		return connectErr
	case errors.Is(err, study.ErrCardNotFound), errors.Is(err, study.ErrDeckNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, schedule.ErrConflict):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func addBadRequest(connectErr *connect.Error, violations ...*errdetails.BadRequest_FieldViolation) {
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: violations,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
}
