package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Fieldservice-api/internal/application/dto"
	"github.com/jhoicas/Fieldservice-api/internal/application/inventory"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
)

// RequestHandler maneja solicitudes de material (protegido).
type RequestHandler struct {
	requests *inventory.RequestUseCase
	approve  *inventory.ApproveRequestUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(requests *inventory.RequestUseCase, approve *inventory.ApproveRequestUseCase) *RequestHandler {
	return &RequestHandler{requests: requests, approve: approve}
}

// Create godoc
// @Summary      Crear solicitud de material
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequestRequest  true  "type, target, items"
// @Success      201   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	items := make([]entity.InventoryRequestItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, entity.InventoryRequestItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	request, err := h.requests.Create(c.Context(), inventory.CreateRequestInput{
		TenantID:    GetTenantID(c),
		RequesterID: GetUserID(c),
		Type:        in.Type,
		Priority:    in.Priority,
		Source:      locFromDTO(in.Source),
		Target:      entity.LocationRef{Type: in.Target.Type, ID: in.Target.ID},
		Items:       items,
		Notes:       in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRequestResponse(request))
}

// Approve godoc
// @Summary      Aprobar solicitud
// @Description  Transición PENDING → APPROVED, exactamente una vez. Emite un
//               movimiento por renglón con la cantidad aprobada (o la
//               solicitada) dentro de una transacción.
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/requests/{id}/approve [post]
func (h *RequestHandler) Approve(c *fiber.Ctx) error {
	request, err := h.approve.Approve(c.Context(), GetTenantID(c), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRequestResponse(request))
}

// Reject godoc
// @Summary      Rechazar solicitud
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/requests/{id}/reject [post]
func (h *RequestHandler) Reject(c *fiber.Ctx) error {
	request, err := h.approve.Reject(c.Context(), GetTenantID(c), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRequestResponse(request))
}

// GetByID godoc
// @Summary      Solicitud por ID
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/requests/{id} [get]
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	request, err := h.requests.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRequestResponse(request))
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RequestResponse
// @Router       /api/inventory/requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	requests, err := h.requests.List(c.Context(), GetTenantID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RequestResponse, 0, len(requests))
	for _, request := range requests {
		out = append(out, *toRequestResponse(request))
	}
	return c.JSON(out)
}

func toRequestResponse(request *entity.InventoryRequest) *dto.RequestResponse {
	items := make([]dto.RequestItemDTO, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, dto.RequestItemDTO{
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			ApprovedQuantity: item.ApprovedQuantity,
		})
	}
	return &dto.RequestResponse{
		ID:          request.ID,
		RequesterID: request.RequesterID,
		Type:        request.Type,
		Status:      request.Status,
		Priority:    request.Priority,
		Source:      locToDTO(request.Source),
		Target:      dto.LocationDTO{Type: request.Target.Type, ID: request.Target.ID},
		Items:       items,
		Notes:       request.Notes,
		ApprovedBy:  request.ApprovedBy,
		ApprovedAt:  request.ApprovedAt,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
