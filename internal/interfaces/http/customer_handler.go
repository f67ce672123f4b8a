package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Fieldservice-api/internal/application/dto"
	"github.com/jhoicas/Fieldservice-api/internal/application/usecase"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
)

// CustomerHandler maneja clientes del proveedor de servicios (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "name, document, addresses con lat/lng opcionales"
// @Success      201   {object}  entity.Customer
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Create(usecase.CreateCustomerInput{
		TenantID:  GetTenantID(c),
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		Addresses: addressesFromDTO(in.Addresses),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID godoc
// @Summary      Cliente por ID
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  entity.Customer
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Buscar por nombre o documento"
// @Success      200  {array}  entity.Customer
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	customers, err := h.uc.List(GetTenantID(c), c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.CreateCustomerRequest  true  "campos a actualizar"
// @Success      200   {object}  entity.Customer
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Update(GetTenantID(c), c.Params("id"), usecase.CreateCustomerInput{
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		Addresses: addressesFromDTO(in.Addresses),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

func addressesFromDTO(in []dto.AddressDTO) []entity.CustomerAddress {
	if in == nil {
		return nil
	}
	out := make([]entity.CustomerAddress, 0, len(in))
	for _, a := range in {
		out = append(out, entity.CustomerAddress{
			Label:     a.Label,
			Street:    a.Street,
			Number:    a.Number,
			City:      a.City,
			State:     a.State,
			ZipCode:   a.ZipCode,
			Lat:       a.Lat,
			Lng:       a.Lng,
			IsPrimary: a.IsPrimary,
		})
	}
	return out
}
