package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Fieldservice-api/internal/application/usecase"
)

// TenantHandler maneja el alta y consulta de tenants (público por ahora; se
// puede proteger con AuthMiddleware y RequireRole(admin)).
type TenantHandler struct {
	uc *usecase.TenantUseCase
}

// NewTenantHandler construye el handler.
func NewTenantHandler(uc *usecase.TenantUseCase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

type createTenantRequest struct {
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
}

// Create godoc
// @Summary      Registrar tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        body  body  createTenantRequest  true  "name, document"
// @Success      201   {object}  entity.Tenant
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tenants [post]
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var in createTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	tenant, err := h.uc.Create(in.Name, in.Document)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tenant)
}

// GetByID godoc
// @Summary      Tenant por ID
// @Tags         tenants
// @Produce      json
// @Param        id  path  string  true  "ID del tenant"
// @Success      200  {object}  entity.Tenant
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenants/{id} [get]
func (h *TenantHandler) GetByID(c *fiber.Ctx) error {
	tenant, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tenant)
}

// List godoc
// @Summary      Listar tenants
// @Tags         tenants
// @Produce      json
// @Success      200  {array}  entity.Tenant
// @Router       /api/tenants [get]
func (h *TenantHandler) List(c *fiber.Ctx) error {
	tenants, err := h.uc.List(50, 0)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tenants)
}
