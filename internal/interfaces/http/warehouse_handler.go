package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Fieldservice-api/internal/application/dto"
	"github.com/jhoicas/Fieldservice-api/internal/application/usecase"
)

// WarehouseHandler maneja almacenes y almoxarifados (protegido).
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear almacén
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "name, address"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	warehouse, err := h.uc.CreateWarehouse(GetTenantID(c), in.Name, in.Address)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(warehouse)
}

// List godoc
// @Summary      Listar almacenes
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Warehouse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	warehouses, err := h.uc.ListWarehouses(GetTenantID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(warehouses)
}

// Delete godoc
// @Summary      Desactivar almacén
// @Tags         warehouses
// @Security     Bearer
// @Param        id  path  string  true  "ID del almacén"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteWarehouse(GetTenantID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateStoreroom godoc
// @Summary      Crear almoxarifado
// @Tags         storerooms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreroomRequest  true  "warehouse_id, name, responsible_id"
// @Success      201   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/storerooms [post]
func (h *WarehouseHandler) CreateStoreroom(c *fiber.Ctx) error {
	var in dto.CreateStoreroomRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	storeroom, err := h.uc.CreateStoreroom(GetTenantID(c), in.WarehouseID, in.Name, in.ResponsibleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(storeroom)
}

// ListStorerooms godoc
// @Summary      Listar almoxarifados
// @Tags         storerooms
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Storeroom
// @Router       /api/storerooms [get]
func (h *WarehouseHandler) ListStorerooms(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	storerooms, err := h.uc.ListStorerooms(GetTenantID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(storerooms)
}

// DeleteStoreroom godoc
// @Summary      Desactivar almoxarifado
// @Tags         storerooms
// @Security     Bearer
// @Param        id  path  string  true  "ID del almoxarifado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storerooms/{id} [delete]
func (h *WarehouseHandler) DeleteStoreroom(c *fiber.Ctx) error {
	if err := h.uc.DeleteStoreroom(GetTenantID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
