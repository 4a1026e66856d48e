package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"routeplan/cmd"
	httpadapter "routeplan/internal/adapters/in/http"
	"routeplan/internal/adapters/out/postgres/computerepo"
	"routeplan/internal/adapters/out/postgres/locationrepo"
	"routeplan/internal/adapters/out/postgres/orderrepo"
	"routeplan/internal/adapters/out/postgres/pairrepo"
	"routeplan/internal/adapters/out/postgres/routerepo"
	"routeplan/internal/adapters/out/postgres/vehiclerepo"
	"routeplan/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultComputeDeadlineMinutes = 30

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error assembling composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := startJobs(&app, logger)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		SolverURL:              goDotEnvVariable("SOLVER_URL"),
		SolverAPIKey:           goDotEnvVariable("SOLVER_API_KEY"),
		CallbackBaseURL:        goDotEnvVariable("CALLBACK_BASE_URL"),
		WebhookSecret:          goDotEnvVariable("WEBHOOK_SECRET"),
		MatrixAPIURL:           goDotEnvVariable("MATRIX_API_URL"),
		MatrixAPIKey:           goDotEnvVariable("MATRIX_API_KEY"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR"),
		ComputeDeadlineMinutes: goDotEnvIntVariable("COMPUTE_DEADLINE_MINUTES", defaultComputeDeadlineMinutes),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&locationrepo.LocationDTO{},
		&vehiclerepo.VehicleDTO{},
		&orderrepo.OrderDTO{},
		&computerepo.ComputeDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteStopDTO{},
		&pairrepo.PairDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, logger *slog.Logger) *jobs.JobManager {
	expireHandler, err := app.CreateExpireComputesCommandHandler()
	if err != nil {
		log.Fatalf("Error creating expiry handler: %v", err)
	}

	jobManager := jobs.NewJobManager(expireHandler, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	createComputeHandler, err := app.CreateCreateComputeCommandHandler()
	if err != nil {
		log.Fatalf("Error creating compute handler: %v", err)
	}

	createOrderHandler, err := app.CreateCreateOrderCommandHandler()
	if err != nil {
		log.Fatalf("Error creating order handler: %v", err)
	}

	server := httpadapter.NewServer(
		configs.WebhookSecret,
		httpadapter.CommandHandlers{
			CreateLocation:    app.CreateCreateLocationCommandHandler(),
			UpdateLocation:    app.CreateUpdateLocationCommandHandler(),
			DeleteLocation:    app.CreateDeleteLocationCommandHandler(),
			CreateVehicle:     app.CreateCreateVehicleCommandHandler(),
			DeleteVehicle:     app.CreateDeleteVehicleCommandHandler(),
			CreateOrder:       createOrderHandler,
			DeleteOrder:       app.CreateDeleteOrderCommandHandler(),
			CreateCompute:     createComputeHandler,
			ApplySolverResult: app.CreateApplySolverResultCommandHandler(),
			CancelCompute:     app.CreateCancelComputeCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetAllLocations:  app.CreateGetAllLocationsQueryHandler(),
			GetAllVehicles:   app.CreateGetAllVehiclesQueryHandler(),
			GetAllOrders:     app.CreateGetAllOrdersQueryHandler(),
			GetOrder:         app.CreateGetOrderQueryHandler(),
			GetAllComputes:   app.CreateGetAllComputesQueryHandler(),
			GetCompute:       app.CreateGetComputeQueryHandler(),
			GetComputeRoutes: app.CreateGetComputeRoutesQueryHandler(),
		},
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
