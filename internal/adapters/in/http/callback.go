package http

import (
	"crypto/subtle"
	"net/http"

	"routeplan/internal/core/application/usecases/commands"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// WebhookSecretHeader carries the shared secret the solver must present
// when posting a callback.
const WebhookSecretHeader = "X-Webhook-Secret"

// HandleSolverCallback handles POST /internal/vrp-callback. An empty
// configured secret disables the check entirely. The endpoint is idempotent
// from the caller's perspective only in the sense that a repeated callback
// for a finished compute gets 409, never a second application.
func (s *Server) HandleSolverCallback(ctx echo.Context) error {
	if s.webhookSecret != "" {
		presented := ctx.Request().Header.Get(WebhookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(s.webhookSecret)) != 1 {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "invalid webhook secret",
			})
		}
	}

	var body SolverCallback
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	computeID, err := kernel.UUIDFromString(body.ComputeID)
	if err != nil {
		return badRequest(ctx, "Invalid compute id")
	}

	routes, err := toRouteResults(body.Routes)
	if err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	cmd, err := commands.NewApplySolverResultCommand(computeID, body.Status, body.Message, routes)
	if err != nil {
		return badRequest(ctx, "Invalid callback data: "+err.Error())
	}

	if err = s.commands.ApplySolverResult.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Ack{OK: true})
}

func toRouteResults(routes []CallbackRoute) ([]commands.RouteResult, error) {
	results := make([]commands.RouteResult, 0, len(routes))
	for _, route := range routes {
		vehicleID, err := kernel.UUIDFromString(route.VehicleID)
		if err != nil {
			return nil, err
		}

		stops := make([]commands.StopResult, 0, len(route.Stops))
		for _, stop := range route.Stops {
			locationID, stopErr := kernel.UUIDFromString(stop.LocationID)
			if stopErr != nil {
				return nil, stopErr
			}
			stops = append(stops, commands.StopResult{
				LocationID:  locationID,
				ArrivalTime: stop.ArrivalTime,
				Demand:      stop.Demand,
			})
		}

		results = append(results, commands.RouteResult{
			VehicleID:     vehicleID,
			TotalDistance: route.TotalDistance,
			Stops:         stops,
		})
	}

	return results, nil
}
