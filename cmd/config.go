package cmd

// Config carries every environment-supplied setting of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SolverURL is the base URL of the external VRP engine.
	SolverURL    string
	SolverAPIKey string

	// CallbackBaseURL is the public base URL of this service; the solver
	// webhook endpoint is derived from it.
	CallbackBaseURL string
	// WebhookSecret guards the solver callback endpoint. Empty disables
	// the check.
	WebhookSecret string

	// MatrixAPIURL is the base URL of the distance matrix provider.
	MatrixAPIURL string
	MatrixAPIKey string

	// RedisAddr enables the Redis pair cache in front of Postgres when
	// non-empty.
	RedisAddr string

	// ComputeDeadlineMinutes is how long a compute may stay pending before
	// the expiry sweeper fails it.
	ComputeDeadlineMinutes int
}
