package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gudangapp/gudang-api/internal/application/dto"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
)

// ItemHandler serves read-only item listings (protected).
type ItemHandler struct {
	items repository.ItemRepository
}

func NewItemHandler(items repository.ItemRepository) *ItemHandler {
	return &ItemHandler{items: items}
}

// List godoc
// @Summary      List inventory items
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.items.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromItem(it))
	}
	return c.JSON(out)
}

// ListLowStock godoc
// @Summary      List items at or below their minimum stock level
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/items/low-stock [get]
func (h *ItemHandler) ListLowStock(c *fiber.Ctx) error {
	items, err := h.items.ListLowStock(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromItem(it))
	}
	return c.JSON(out)
}
