package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Fieldservice-api/internal/application/dto"
	"github.com/jhoicas/Fieldservice-api/internal/application/routing"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
	"github.com/jhoicas/Fieldservice-api/internal/domain/geo"
)

// RouteHandler maneja rutas diarias y su optimización (protegido).
type RouteHandler struct {
	routes    *routing.RouteUseCase
	optimizer *routing.OptimizeUseCase
}

// NewRouteHandler construye el handler.
func NewRouteHandler(routes *routing.RouteUseCase, optimizer *routing.OptimizeUseCase) *RouteHandler {
	return &RouteHandler{routes: routes, optimizer: optimizer}
}

// Optimize godoc
// @Summary      Optimizar orden de visita
// @Description  Reordena las órdenes de servicio con la heurística
//               vecino-más-cercano. Órdenes sin coordenadas van al final en su
//               orden relativo original.
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OptimizeRouteRequest  true  "work_order_ids, start_lat/start_lng opcionales"
// @Success      200   {object}  dto.OptimizeRouteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/routes/optimize [post]
func (h *RouteHandler) Optimize(c *fiber.Ctx) error {
	var in dto.OptimizeRouteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	ordered, err := h.optimizer.Optimize(c.Context(), GetTenantID(c), in.WorkOrderIDs, startPoint(in.StartLat, in.StartLng))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OptimizeRouteResponse{WorkOrderIDs: ordered})
}

// Create godoc
// @Summary      Crear ruta
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRouteRequest  true  "date, work_order_ids, optimize opcional"
// @Success      201   {object}  dto.RouteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/routes [post]
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRouteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return badBody(c)
	}
	route, err := h.routes.Create(c.Context(), routing.CreateRouteInput{
		TenantID:     GetTenantID(c),
		Date:         date,
		VehicleID:    in.VehicleID,
		TechnicianID: in.TechnicianID,
		WorkOrderIDs: in.WorkOrderIDs,
		Notes:        in.Notes,
		Optimize:     in.Optimize,
		Start:        startPoint(in.StartLat, in.StartLng),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRouteResponse(route))
}

// GetByID godoc
// @Summary      Ruta por ID
// @Tags         routes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ruta"
// @Success      200  {object}  dto.RouteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/routes/{id} [get]
func (h *RouteHandler) GetByID(c *fiber.Ctx) error {
	route, err := h.routes.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRouteResponse(route))
}

// List godoc
// @Summary      Listar rutas
// @Tags         routes
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Success      200  {array}  dto.RouteResponse
// @Router       /api/routes [get]
func (h *RouteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	routes, err := h.routes.List(c.Context(), GetTenantID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RouteResponse, 0, len(routes))
	for _, route := range routes {
		out = append(out, *toRouteResponse(route))
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la ruta
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ruta"
// @Param        body  body  dto.UpdateRouteStatusRequest  true  "status"
// @Success      200   {object}  dto.RouteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/routes/{id}/status [patch]
func (h *RouteHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateRouteStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	route, err := h.routes.UpdateStatus(c.Context(), GetTenantID(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRouteResponse(route))
}

// startPoint ancla inicial opcional; requiere lat y lng completas.
func startPoint(lat, lng *float64) *geo.Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &geo.Point{Lat: *lat, Lng: *lng}
}

func toRouteResponse(route *entity.Route) *dto.RouteResponse {
	stops := make([]dto.RouteStopResponse, 0, len(route.Stops))
	for _, stop := range route.Stops {
		stops = append(stops, dto.RouteStopResponse{
			WorkOrderID: stop.WorkOrderID,
			Order:       stop.Order,
			Status:      stop.Status,
			CompletedAt: stop.CompletedAt,
		})
	}
	return &dto.RouteResponse{
		ID:           route.ID,
		Code:         route.Code,
		Status:       route.Status,
		Date:         route.Date,
		VehicleID:    route.VehicleID,
		TechnicianID: route.TechnicianID,
		Stops:        stops,
		TotalStops:   len(stops),
		Notes:        route.Notes,
		CreatedAt:    route.CreatedAt,
	}
}
