package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Fieldservice-api/internal/application/dto"
	"github.com/jhoicas/Fieldservice-api/internal/application/inventory"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
)

// CountHandler maneja contagens de inventario (protegido).
type CountHandler struct {
	counts   *inventory.CountUseCase
	finalize *inventory.FinalizeCountUseCase
}

// NewCountHandler construye el handler.
func NewCountHandler(counts *inventory.CountUseCase, finalize *inventory.FinalizeCountUseCase) *CountHandler {
	return &CountHandler{counts: counts, finalize: finalize}
}

// Create godoc
// @Summary      Abrir contagem de inventario
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCountRequest  true  "location, description, product_ids"
// @Success      201   {object}  dto.CountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/counts [post]
func (h *CountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	responsible := in.ResponsibleID
	if responsible == "" {
		responsible = GetUserID(c)
	}
	count, err := h.counts.Create(c.Context(), inventory.CreateCountInput{
		TenantID:      GetTenantID(c),
		Location:      entity.LocationRef{Type: in.Location.Type, ID: in.Location.ID},
		Description:   in.Description,
		ResponsibleID: responsible,
		ProductIDs:    in.ProductIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCountResponse(count))
}

// EnterCounted godoc
// @Summary      Capturar cantidades contadas
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la contagem"
// @Param        body  body  dto.EnterCountedRequest  true  "items con counted_stock"
// @Success      200   {object}  dto.CountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/counts/{id}/items [put]
func (h *CountHandler) EnterCounted(c *fiber.Ctx) error {
	var in dto.EnterCountedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entries := make([]inventory.CountedItemInput, 0, len(in.Items))
	for _, item := range in.Items {
		entries = append(entries, inventory.CountedItemInput{
			ProductID:    item.ProductID,
			CountedStock: item.CountedStock,
			Notes:        item.Notes,
		})
	}
	count, err := h.counts.EnterCounted(c.Context(), GetTenantID(c), c.Params("id"), entries)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCountResponse(count))
}

// Finalize godoc
// @Summary      Finalizar contagem (conciliación)
// @Description  Emite un movimiento ADJUSTMENT por cada diferencia y fija el
//               saldo del ledger al valor contado. COMPLETED es terminal.
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la contagem"
// @Success      200  {object}  dto.CountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/counts/{id}/finalize [post]
func (h *CountHandler) Finalize(c *fiber.Ctx) error {
	count, err := h.finalize.Finalize(c.Context(), GetTenantID(c), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCountResponse(count))
}

// GetByID godoc
// @Summary      Contagem por ID
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la contagem"
// @Success      200  {object}  dto.CountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/counts/{id} [get]
func (h *CountHandler) GetByID(c *fiber.Ctx) error {
	count, err := h.counts.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCountResponse(count))
}

// List godoc
// @Summary      Listar contagens
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CountResponse
// @Router       /api/inventory/counts [get]
func (h *CountHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	counts, err := h.counts.List(c.Context(), GetTenantID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CountResponse, 0, len(counts))
	for _, count := range counts {
		out = append(out, *toCountResponse(count))
	}
	return c.JSON(out)
}

func toCountResponse(count *entity.InventoryCount) *dto.CountResponse {
	items := make([]dto.CountItemResponse, 0, len(count.Items))
	for _, item := range count.Items {
		items = append(items, dto.CountItemResponse{
			ProductID:    item.ProductID,
			CurrentStock: item.CurrentStock,
			CountedStock: item.CountedStock,
			Diff:         item.Diff,
			Notes:        item.Notes,
		})
	}
	return &dto.CountResponse{
		ID:            count.ID,
		Location:      dto.LocationDTO{Type: count.Location.Type, ID: count.Location.ID},
		Description:   count.Description,
		Status:        count.Status,
		Items:         items,
		ResponsibleID: count.ResponsibleID,
		FinalizedAt:   count.FinalizedAt,
		CreatedAt:     count.CreatedAt,
		UpdatedAt:     count.UpdatedAt,
	}
}
