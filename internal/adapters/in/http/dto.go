package http

// Error is the JSON body returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is the JSON body returned when a resource is created with a
// server-generated identifier.
type Created struct {
	ID string `json:"id"`
}

// Ack is the JSON body acknowledging a webhook delivery.
type Ack struct {
	OK bool `json:"ok"`
}

// NewLocation is the request body for creating or updating a location.
type NewLocation struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Pickup      int     `json:"pickup"`
	Delivery    int     `json:"delivery"`
	ServiceTime int     `json:"service_time"`
	WindowStart int     `json:"window_start"`
	WindowEnd   int     `json:"window_end"`
	IsDepot     bool    `json:"is_depot"`
}

// Location is the response body for one catalog location.
type Location struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Pickup      int     `json:"pickup"`
	Delivery    int     `json:"delivery"`
	ServiceTime int     `json:"service_time"`
	WindowStart int     `json:"window_start"`
	WindowEnd   int     `json:"window_end"`
	IsDepot     bool    `json:"is_depot"`
}

// NewVehicle is the request body for creating a vehicle.
type NewVehicle struct {
	Number    string `json:"number"`
	Capacity  int    `json:"capacity"`
	FixedCost int    `json:"fixed_cost"`
}

// Vehicle is the response body for one fleet vehicle.
type Vehicle struct {
	ID        string `json:"id"`
	Number    string `json:"number"`
	Capacity  int    `json:"capacity"`
	FixedCost int    `json:"fixed_cost"`
}

// NewOrder is the request body for creating a planning order.
type NewOrder struct {
	LocationIDs []string `json:"location_ids"`
	VehicleIDs  []string `json:"vehicle_ids"`
}

// Order is the response body for one order summary.
type Order struct {
	ID            string `json:"id"`
	LocationCount int    `json:"location_count"`
	VehicleCount  int    `json:"vehicle_count"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
}

// NewCompute is the request body for dispatching a compute job.
type NewCompute struct {
	OrderID          string `json:"order_id"`
	TimeLimitSeconds int    `json:"time_limit_seconds"`
}

// Compute is the response body for one compute job.
type Compute struct {
	ID               string `json:"id"`
	OrderID          string `json:"order_id"`
	Status           string `json:"status"`
	StartTime        int64  `json:"start_time"`
	EndTime          int64  `json:"end_time,omitempty"`
	FailReason       string `json:"fail_reason,omitempty"`
	TimeLimitSeconds int    `json:"time_limit_seconds"`
}

// Route is the response body for one solved vehicle tour.
type Route struct {
	ID            string      `json:"id"`
	VehicleID     string      `json:"vehicle_id"`
	TotalDistance int         `json:"total_distance"`
	TotalTime     int         `json:"total_time"`
	TotalLoad     int         `json:"total_load"`
	Stops         []RouteStop `json:"stops"`
}

// RouteStop is the response body for one visit within a tour.
type RouteStop struct {
	LocationID  string `json:"location_id"`
	Sequence    int    `json:"sequence"`
	ArrivalTime int    `json:"arrival_time"`
	Demand      int    `json:"demand"`
}

// SolverCallback is the request body the solver posts to the webhook when
// a job reaches its outcome.
type SolverCallback struct {
	ComputeID string          `json:"compute_id"`
	Status    string          `json:"status"`
	Message   string          `json:"message,omitempty"`
	Routes    []CallbackRoute `json:"routes,omitempty"`
}

// CallbackRoute is one vehicle tour within a solver callback.
type CallbackRoute struct {
	VehicleID     string         `json:"vehicle_id"`
	TotalDistance int            `json:"total_distance"`
	Stops         []CallbackStop `json:"stops"`
}

// CallbackStop is one visit within a callback route, in visit order.
type CallbackStop struct {
	LocationID  string `json:"location_id"`
	ArrivalTime int    `json:"arrival_time"`
	Demand      int    `json:"demand"`
}
