package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gudangapp/gudang-api/internal/application/dto"
	"github.com/gudangapp/gudang-api/internal/application/ledger"
	"github.com/gudangapp/gudang-api/internal/domain"
)

// LedgerHandler handles stock movement requests (protected).
type LedgerHandler struct {
	uc *ledger.LedgerUseCase
}

func NewLedgerHandler(uc *ledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RecordInbound godoc
// @Summary      Record an inbound movement
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InboundRequest  true  "name, unit, quantity plus optional metadata"
// @Success      201   {object}  dto.TrxCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ledger/inbound [post]
func (h *LedgerHandler) RecordInbound(c *fiber.Ctx) error {
	var in dto.InboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	expiry, err := parseExpiry(in.ExpiryDate)
	if err != nil {
		return writeError(c, err)
	}
	code, err := h.uc.RecordInbound(c.Context(), ledger.InboundInput{
		InboundLine: ledger.InboundLine{
			Name:         in.Name,
			Unit:         in.Unit,
			Quantity:     in.Quantity,
			Category:     in.Category,
			MinStock:     in.MinStock,
			RackLocation: in.RackLocation,
			ExpiryDate:   expiry,
		},
		Supplier: in.Supplier,
		Note:     in.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TrxCodeResponse{TrxCode: code})
}

// RecordInboundBatch godoc
// @Summary      Record a batch of inbound movements
// @Description  All lines succeed together or none do. Every line of the
// @Description  batch shares one transaction code.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InboundBatchRequest  true  "lines plus optional supplier and note"
// @Success      201   {object}  dto.TrxCodeResponse
// @Failure      400   {object}  dto.BatchErrorResponse
// @Router       /api/ledger/inbound/batch [post]
func (h *LedgerHandler) RecordInboundBatch(c *fiber.Ctx) error {
	var in dto.InboundBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	input := ledger.InboundBatchInput{Supplier: in.Supplier, Note: in.Note}
	for _, l := range in.Lines {
		expiry, err := parseExpiry(l.ExpiryDate)
		if err != nil {
			return writeError(c, err)
		}
		input.Lines = append(input.Lines, ledger.InboundLine{
			Name:         l.Name,
			Unit:         l.Unit,
			Quantity:     l.Quantity,
			Category:     l.Category,
			MinStock:     l.MinStock,
			RackLocation: l.RackLocation,
			ExpiryDate:   expiry,
		})
	}
	code, err := h.uc.RecordInboundBatch(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TrxCodeResponse{TrxCode: code})
}

// RecordOutbound godoc
// @Summary      Record an outbound movement
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutboundRequest  true  "name, unit, quantity, requester"
// @Success      201   {object}  dto.TrxCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/outbound [post]
func (h *LedgerHandler) RecordOutbound(c *fiber.Ctx) error {
	var in dto.OutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	code, err := h.uc.RecordOutbound(c.Context(), ledger.OutboundInput{
		OutboundLine: ledger.OutboundLine{
			Name:     in.Name,
			Unit:     in.Unit,
			Quantity: in.Quantity,
			Note:     in.Note,
		},
		Requester: in.Requester,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TrxCodeResponse{TrxCode: code})
}

// RecordOutboundBatch godoc
// @Summary      Record a batch of outbound movements
// @Description  Stock for every line is checked up front; any shortfall
// @Description  rejects the whole batch and nothing is written.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutboundBatchRequest  true  "requester plus lines"
// @Success      201   {object}  dto.TrxCodeResponse
// @Failure      400   {object}  dto.BatchErrorResponse
// @Failure      409   {object}  dto.BatchErrorResponse
// @Router       /api/ledger/outbound/batch [post]
func (h *LedgerHandler) RecordOutboundBatch(c *fiber.Ctx) error {
	var in dto.OutboundBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	input := ledger.OutboundBatchInput{Requester: in.Requester, Note: in.Note}
	for _, l := range in.Lines {
		input.Lines = append(input.Lines, ledger.OutboundLine{
			Name:     l.Name,
			Unit:     l.Unit,
			Quantity: l.Quantity,
			Note:     l.Note,
		})
	}
	code, err := h.uc.RecordOutboundBatch(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TrxCodeResponse{TrxCode: code})
}

// parseExpiry parses the optional YYYY-MM-DD expiry field. Empty means no
// expiry; a malformed value is a validation error, unlike imports where bad
// dates are dropped.
func parseExpiry(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: expiry_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return &t, nil
}
