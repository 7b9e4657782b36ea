package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/api/dto"
)

// StatusCode maps a domain error to an HTTP status
func StatusCode(err error) int {
	switch {
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.IsInsufficientFundsError(err):
		return http.StatusPaymentRequired
	case errs.IsProductNotFoundError(err):
		return http.StatusNotFound
	case errs.IsOutOfStockError(err),
		errs.IsChangeUnavailableError(err),
		errors.Is(err, errs.ErrNoBalance),
		errors.Is(err, errs.ErrDuplicateProduct):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the {code, message} body for err
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := StatusCode(err)

	fields := map[string]any{
		"operation": operation,
		"status":    status,
		"error":     err,
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	body := dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: err.Error(),
	}
	if status >= http.StatusInternalServerError {
		body.Message = "Internal server error"
	}

	var changeErr *errs.ChangeUnavailableError
	if errors.As(err, &changeErr) && len(changeErr.Returned) > 0 {
		body.Returned = dto.CoinLinesByValue(changeErr.Returned)
	}

	c.JSON(status, body)
}

// badRequest reports malformed input that never reached the use case
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: message,
	})
}
