package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gudangapp/gudang-api/internal/application/dto"
	"github.com/gudangapp/gudang-api/internal/application/ledger"
	"github.com/gudangapp/gudang-api/internal/domain"
)

// writeError maps a use case error to its HTTP response. Batch rejections
// carry per-line detail; everything else maps by sentinel.
func writeError(c *fiber.Ctx, err error) error {
	status, code := classify(err)

	var batch *ledger.BatchError
	if errors.As(err, &batch) {
		lines := make([]dto.LineError, 0, len(batch.Lines))
		for _, l := range batch.Lines {
			lines = append(lines, dto.LineError{Line: l.Line, Name: l.Name, Reason: l.Reason})
		}
		return c.Status(status).JSON(dto.BatchErrorResponse{Code: code, Message: err.Error(), Lines: lines})
	}

	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrImportFormat):
		return fiber.StatusUnprocessableEntity, "IMPORT_FORMAT"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}
