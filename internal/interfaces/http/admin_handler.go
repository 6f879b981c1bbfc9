package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gudangapp/gudang-api/internal/application/admin"
	"github.com/gudangapp/gudang-api/internal/application/dto"
)

// AdminHandler handles destructive maintenance endpoints (protected).
type AdminHandler struct {
	uc *admin.AdminUseCase
}

func NewAdminHandler(uc *admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Reset godoc
// @Summary      Delete all items and transactions
// @Description  Wipes the whole inventory and its history in one database
// @Description  transaction. User accounts survive. Requires confirm=true.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        confirm  query  bool  true  "must be true"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "pass confirm=true to wipe all inventory data"})
	}
	if err := h.uc.ResetAll(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "inventory reset"})
}
