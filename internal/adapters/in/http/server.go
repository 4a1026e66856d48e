// Package http exposes the REST API and the solver webhook. It translates
// HTTP requests into commands and queries and maps domain errors back to
// HTTP statuses.
package http

import (
	"net/http"

	"routeplan/internal/core/application/usecases/commands"
	"routeplan/internal/core/application/usecases/queries"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateLocation    commands.CreateLocationCommandHandler
	UpdateLocation    commands.UpdateLocationCommandHandler
	DeleteLocation    commands.DeleteLocationCommandHandler
	CreateVehicle     commands.CreateVehicleCommandHandler
	DeleteVehicle     commands.DeleteVehicleCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	CreateCompute     commands.CreateComputeCommandHandler
	ApplySolverResult commands.ApplySolverResultCommandHandler
	CancelCompute     commands.CancelComputeCommandHandler
}

// QueryHandlers groups the read-side handlers the server dispatches to.
type QueryHandlers struct {
	GetAllLocations  queries.GetAllLocationsQueryHandler
	GetAllVehicles   queries.GetAllVehiclesQueryHandler
	GetAllOrders     queries.GetAllOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	GetAllComputes   queries.GetAllComputesQueryHandler
	GetCompute       queries.GetComputeQueryHandler
	GetComputeRoutes queries.GetComputeRoutesQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	webhookSecret string
	commands      CommandHandlers
	queries       QueryHandlers
}

// NewServer creates an HTTP server with the required command and query
// handlers. webhookSecret guards the solver callback endpoint.
func NewServer(webhookSecret string, cmds CommandHandlers, qrys QueryHandlers) *Server {
	return &Server{
		webhookSecret: webhookSecret,
		commands:      cmds,
		queries:       qrys,
	}
}

// RegisterRoutes attaches every endpoint to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/locations", s.GetLocations)
	api.POST("/locations", s.CreateLocation)
	api.PUT("/locations/:id", s.UpdateLocation)
	api.DELETE("/locations/:id", s.DeleteLocation)

	api.GET("/vehicles", s.GetVehicles)
	api.POST("/vehicles", s.CreateVehicle)
	api.DELETE("/vehicles/:id", s.DeleteVehicle)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/computes", s.GetComputes)
	api.POST("/computes", s.CreateCompute)
	api.GET("/computes/:id", s.GetCompute)
	api.GET("/computes/:id/routes", s.GetComputeRoutes)
	api.POST("/computes/:id/cancel", s.CancelCompute)

	e.POST("/internal/vrp-callback", s.HandleSolverCallback)
}

// GetLocations handles GET /api/v1/locations.
func (s *Server) GetLocations(ctx echo.Context) error {
	query := queries.NewGetAllLocationsQuery()

	locations, err := s.queries.GetAllLocations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Location, len(locations))
	for i, loc := range locations {
		response[i] = Location{
			ID:          loc.ID.String(),
			Name:        loc.Name,
			Address:     loc.Address,
			Lat:         loc.Point.Lat(),
			Lng:         loc.Point.Lng(),
			Pickup:      loc.Pickup,
			Delivery:    loc.Delivery,
			ServiceTime: loc.ServiceTime,
			WindowStart: loc.Window.Start(),
			WindowEnd:   loc.Window.End(),
			IsDepot:     loc.IsDepot,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateLocation handles POST /api/v1/locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var body NewLocation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	applyWindowDefault(&body)

	locationID := kernel.NewUUID()
	cmd, err := commands.NewCreateLocationCommand(
		locationID,
		body.Name,
		body.Address,
		body.Lat,
		body.Lng,
		body.Pickup,
		body.Delivery,
		body.ServiceTime,
		body.WindowStart,
		body.WindowEnd,
		body.IsDepot,
	)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if err = s.commands.CreateLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: locationID.String()})
}

// UpdateLocation handles PUT /api/v1/locations/:id.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	locationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid location id")
	}

	var body NewLocation
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	applyWindowDefault(&body)

	cmd, err := commands.NewUpdateLocationCommand(
		locationID,
		body.Name,
		body.Address,
		body.Lat,
		body.Lng,
		body.Pickup,
		body.Delivery,
		body.ServiceTime,
		body.WindowStart,
		body.WindowEnd,
		body.IsDepot,
	)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if err = s.commands.UpdateLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteLocation handles DELETE /api/v1/locations/:id.
func (s *Server) DeleteLocation(ctx echo.Context) error {
	locationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid location id")
	}

	cmd, err := commands.NewDeleteLocationCommand(locationID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.DeleteLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	query := queries.NewGetAllVehiclesQuery()

	vehicles, err := s.queries.GetAllVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Vehicle, len(vehicles))
	for i, vehicle := range vehicles {
		response[i] = Vehicle{
			ID:        vehicle.ID.String(),
			Number:    vehicle.Number,
			Capacity:  vehicle.Capacity,
			FixedCost: vehicle.FixedCost,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(vehicleID, body.Number, body.Capacity, body.FixedCost)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	if err = s.commands.CreateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: vehicleID.String()})
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	cmd, err := commands.NewDeleteVehicleCommand(vehicleID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.queries.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, order := range orders {
		response[i] = Order{
			ID:            order.ID.String(),
			LocationCount: order.LocationCount,
			VehicleCount:  order.VehicleCount,
			Status:        order.Status,
			CreatedAt:     order.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The catalog entries named in
// the body are snapshotted into the order at this moment.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	locationIDs, err := parseUUIDs(body.LocationIDs)
	if err != nil {
		return badRequest(ctx, "Invalid location id: "+err.Error())
	}

	vehicleIDs, err := parseUUIDs(body.VehicleIDs)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, locationIDs, vehicleIDs)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:            result.ID.String(),
		LocationCount: result.LocationCount,
		VehicleCount:  result.VehicleCount,
		Status:        result.Status,
		CreatedAt:     result.CreatedAt,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCompute handles POST /api/v1/computes. The job row is committed
// before the solver is contacted, so the returned id is always queryable;
// a build or dispatch failure shows up as a failed job rather than an
// error response here.
func (s *Server) CreateCompute(ctx echo.Context) error {
	var body NewCompute
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	computeID := kernel.NewUUID()
	cmd, err := commands.NewCreateComputeCommand(computeID, orderID, body.TimeLimitSeconds)
	if err != nil {
		return badRequest(ctx, "Invalid compute data: "+err.Error())
	}

	if err = s.commands.CreateCompute.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, Created{ID: computeID.String()})
}

// GetComputes handles GET /api/v1/computes. Supports optional order_id
// and status query parameters.
func (s *Server) GetComputes(ctx echo.Context) error {
	var orderID kernel.UUID
	if raw := ctx.QueryParam("order_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order id")
		}
		orderID = parsed
	}

	query, err := queries.NewGetAllComputesQuery(orderID, ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	computes, err := s.queries.GetAllComputes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Compute, len(computes))
	for i, result := range computes {
		response[i] = Compute{
			ID:               result.ID.String(),
			OrderID:          result.OrderID.String(),
			Status:           result.Status,
			StartTime:        result.StartTime,
			EndTime:          result.EndTime,
			FailReason:       result.FailReason,
			TimeLimitSeconds: result.TimeLimitSeconds,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCompute handles GET /api/v1/computes/:id.
func (s *Server) GetCompute(ctx echo.Context) error {
	computeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid compute id")
	}

	query, err := queries.NewGetComputeQuery(computeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.queries.GetCompute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Compute{
		ID:               result.ID.String(),
		OrderID:          result.OrderID.String(),
		Status:           result.Status,
		StartTime:        result.StartTime,
		EndTime:          result.EndTime,
		FailReason:       result.FailReason,
		TimeLimitSeconds: result.TimeLimitSeconds,
	})
}

// GetComputeRoutes handles GET /api/v1/computes/:id/routes.
func (s *Server) GetComputeRoutes(ctx echo.Context) error {
	computeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid compute id")
	}

	query, err := queries.NewGetComputeRoutesQuery(computeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	routes, err := s.queries.GetComputeRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Route, len(routes))
	for i, route := range routes {
		stops := make([]RouteStop, len(route.Stops))
		for j, stop := range route.Stops {
			stops[j] = RouteStop{
				LocationID:  stop.LocationID.String(),
				Sequence:    stop.Sequence,
				ArrivalTime: stop.ArrivalTime,
				Demand:      stop.Demand,
			}
		}

		response[i] = Route{
			ID:            route.ID.String(),
			VehicleID:     route.VehicleID.String(),
			TotalDistance: route.TotalDistance,
			TotalTime:     route.TotalTime,
			TotalLoad:     route.TotalLoad,
			Stops:         stops,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelCompute handles POST /api/v1/computes/:id/cancel.
func (s *Server) CancelCompute(ctx echo.Context) error {
	computeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid compute id")
	}

	cmd, err := commands.NewCancelComputeCommand(computeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commands.CancelCompute.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// applyWindowDefault widens an omitted service window to the full day.
func applyWindowDefault(body *NewLocation) {
	if body.WindowStart == 0 && body.WindowEnd == 0 {
		body.WindowEnd = kernel.DayEnd
	}
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
