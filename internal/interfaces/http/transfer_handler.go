package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gudangapp/gudang-api/internal/application/dto"
	"github.com/gudangapp/gudang-api/internal/application/transfer"
)

// TransferHandler handles file import and export (protected).
type TransferHandler struct {
	uc *transfer.TransferUseCase
}

func NewTransferHandler(uc *transfer.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Import godoc
// @Summary      Import inventory from a file
// @Description  Accepts .xlsx or .csv under the form field "file". Rows are
// @Description  upserted as catalog data; no ledger rows are written. Any bad
// @Description  row rejects the whole file.
// @Tags         inventory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "inventory file"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/import [post]
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "multipart field \"file\" is required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "cannot open uploaded file"})
	}
	defer f.Close()

	n, err := h.uc.Import(c.Context(), f, fileHeader.Filename)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"imported": n})
}

// Export godoc
// @Summary      Export inventory and transaction history
// @Description  Returns an .xlsx workbook with an inventory sheet and a
// @Description  transactions sheet.
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/export [get]
func (h *TransferHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.Export(c.Context(), &buf); err != nil {
		return writeError(c, err)
	}
	filename := "inventory-" + time.Now().Format("20060102-150405") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
