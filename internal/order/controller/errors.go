package controller

import (
	"context"
	"net/http"

	apperrors "github.com/CiaoGab/Restaurant-Order-App/internal/errors"
	"github.com/CiaoGab/Restaurant-Order-App/internal/widget"
)

// OrderUseCase is what both controllers drive.
type OrderUseCase interface {
	Start(ctx context.Context) (string, widget.State, error)
	Get(ctx context.Context, sessionID string) (widget.State, error)
	Dispatch(ctx context.Context, sessionID string, action widget.Action) (widget.State, error)
}

type errorClass struct {
	status  int
	code    string
	message string
	details []apperrors.ValidationDetail
}

func classify(err error) errorClass {
	if ve, ok := apperrors.IsValidationError(err); ok {
		return errorClass{status: http.StatusBadRequest, code: "VALIDATION_ERROR", message: ve.Message, details: ve.Details}
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		return errorClass{status: http.StatusNotFound, code: "NOT_FOUND", message: nfe.Message}
	}
	return errorClass{status: http.StatusInternalServerError, code: "INTERNAL_ERROR", message: "an unexpected error occurred"}
}
