package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags to gin's validator. A tag
// that cannot be registered would silently pass every request, so it panics.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("gin binding validator is not a go-playground validator")
		}
		if err := registerDecimalValidator(v); err != nil {
			panic(err)
		}
	})
}

// registerDecimalValidator adds the "decimal" tag, which accepts strings that
// parse as a decimal number.
func registerDecimalValidator(v *validator.Validate) error {
	err := v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("failed to register decimal validator: %w", err)
	}
	return nil
}

// respondError writes the status and body matching err. Unknown errors are
// logged and reported with the generic message only.
func respondError(c *gin.Context, logger *slog.Logger, err error, message string) {
	if vErr, ok := apperrors.AsValidationError(err); ok {
		logger.Warn("Validation error", slog.String("code", string(vErr.Code)), slog.String("error", vErr.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Code: string(vErr.Code)})
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: string(apperrors.CodeInvalidRequest)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(message, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
	}
}

// respondBindError reports a request that failed to bind or validate.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	vErr := translateBindError(err)
	logger.Warn("Failed to bind request", slog.String("code", string(vErr.Code)), slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Code: string(vErr.Code)})
}

// translateBindError maps the first failing validator tag onto a validation code.
func translateBindError(err error) *apperrors.ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError(apperrors.CodeInvalidRequest, "", "invalid request format: "+err.Error())
	}
	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(apperrors.CodeMissingRequiredField, field, field+" is required")
	case "decimal", "gt", "gte":
		return apperrors.NewValidationError(apperrors.CodeInvalidAmount, field, field+" must be a number")
	case "oneof":
		if field == "Frequency" {
			return apperrors.NewValidationError(apperrors.CodeInvalidFrequency, field, field+" must be one of "+fe.Param())
		}
		return apperrors.NewValidationError(apperrors.CodeInvalidRequest, field, field+" must be one of "+fe.Param())
	}
	return apperrors.NewValidationError(apperrors.CodeInvalidRequest, field, field+" failed the "+fe.Tag()+" check")
}
