package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Fieldservice-api/internal/application/dto"
	"github.com/jhoicas/Fieldservice-api/internal/application/inventory"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/repository"
)

// InventoryHandler maneja movimientos de inventario y consultas de stock (protegido).
type InventoryHandler struct {
	record *inventory.RecordMovementUseCase
	query  *inventory.StockQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(record *inventory.RecordMovementUseCase, query *inventory.StockQueryUseCase) *InventoryHandler {
	return &InventoryHandler{record: record, query: query}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "type, product_id, quantity, source y/o target"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	movement, err := h.record.Record(c.Context(), inventory.MovementInput{
		TenantID:      GetTenantID(c),
		ActorID:       GetUserID(c),
		Type:          in.Type,
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		UnitValue:     in.UnitValue,
		Source:        locFromDTO(in.Source),
		Target:        locFromDTO(in.Target),
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		Notes:         in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(movement))
}

// ListMovements godoc
// @Summary      Histórico de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación (origen o destino)"
// @Success      200  {array}   dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	filter := repository.MovementFilter{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
	}
	movements, err := h.query.ListMovements(c.Context(), GetTenantID(c), filter, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m))
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Saldos de una ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type  path  string  true  "Tipo de ubicación: Warehouse, Storeroom, User, Customer"
// @Param        id    path  string  true  "ID de la ubicación"
// @Success      200  {array}   dto.StockLevelResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{type}/{id} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	levels, err := h.query.GetStock(c.Context(), GetTenantID(c), c.Params("type"), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, s := range levels {
		out = append(out, dto.StockLevelResponse{
			ProductID:     s.ProductID,
			Quantity:      s.Quantity,
			LastCountDate: s.LastCountDate,
		})
	}
	return c.JSON(out)
}

func locFromDTO(l *dto.LocationDTO) *entity.LocationRef {
	if l == nil {
		return nil
	}
	return &entity.LocationRef{Type: l.Type, ID: l.ID}
}

func locToDTO(l *entity.LocationRef) *dto.LocationDTO {
	if l == nil {
		return nil
	}
	return &dto.LocationDTO{Type: l.Type, ID: l.ID}
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		Type:          m.Type,
		ProductID:     m.ProductID,
		Quantity:      m.Quantity,
		UnitValue:     m.UnitValue,
		Source:        locToDTO(m.Source),
		Target:        locToDTO(m.Target),
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		ActorID:       m.ActorID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}
