package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Fieldservice-api/internal/application/dto"
	"github.com/jhoicas/Fieldservice-api/internal/application/usecase"
)

// WorkOrderHandler maneja órdenes de servicio (protegido).
type WorkOrderHandler struct {
	uc *usecase.WorkOrderUseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *usecase.WorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de servicio
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkOrderRequest  true  "type, customer_id, location_lat/lng opcionales"
// @Success      201   {object}  entity.WorkOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/work-orders [post]
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	workOrder, err := h.uc.Create(usecase.CreateWorkOrderInput{
		TenantID:        GetTenantID(c),
		Type:            in.Type,
		Priority:        in.Priority,
		CustomerID:      in.CustomerID,
		TechnicianID:    in.TechnicianID,
		LocationAddress: in.LocationAddress,
		LocationLat:     in.LocationLat,
		LocationLng:     in.LocationLng,
		ScheduledAt:     in.ScheduledAt,
		Notes:           in.Notes,
		CreatedBy:       GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workOrder)
}

// GetByID godoc
// @Summary      Orden de servicio por ID
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  entity.WorkOrder
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [get]
func (h *WorkOrderHandler) GetByID(c *fiber.Ctx) error {
	workOrder, err := h.uc.GetByID(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workOrder)
}

// List godoc
// @Summary      Listar órdenes de servicio
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Success      200  {array}  entity.WorkOrder
// @Router       /api/work-orders [get]
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	workOrders, err := h.uc.List(GetTenantID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workOrders)
}
