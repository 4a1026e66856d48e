package cmd

import (
	"time"

	"routeplan/internal/adapters/out/geomatrix"
	"routeplan/internal/adapters/out/postgres"
	"routeplan/internal/adapters/out/postgres/pairrepo"
	"routeplan/internal/adapters/out/rediscache"
	"routeplan/internal/adapters/out/solver"
	"routeplan/internal/core/application/usecases/commands"
	"routeplan/internal/core/application/usecases/queries"
	"routeplan/internal/core/domain/services"
	"routeplan/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// webhookPath is where the solver posts its results back to this service.
const webhookPath = "/internal/vrp-callback"

// CompositionRoot wires adapters into the application layer. All shared
// dependencies are built once in NewCompositionRoot; the Create methods
// hand out handlers bound to them.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	matrixService *services.MatrixService
	solverClient  ports.SolverClient
	webhookURL    string
	computeMaxAge time.Duration
}

// NewCompositionRoot assembles the dependency graph from the given
// configuration and database connection.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	var pairStore ports.PairStore = pairrepo.NewGormPairStore(gormDB)

	if configs.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

		cached, err := rediscache.NewCachedPairStore(client, pairStore)
		if err != nil {
			return CompositionRoot{}, err
		}
		pairStore = cached
	}

	matrixProvider, err := geomatrix.NewClient(configs.MatrixAPIURL, configs.MatrixAPIKey)
	if err != nil {
		return CompositionRoot{}, err
	}

	matrixService, err := services.NewMatrixService(pairStore, matrixProvider)
	if err != nil {
		return CompositionRoot{}, err
	}

	solverClient, err := solver.NewClient(configs.SolverURL, configs.SolverAPIKey)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		matrixService: matrixService,
		solverClient:  solverClient,
		webhookURL:    configs.CallbackBaseURL + webhookPath,
		computeMaxAge: time.Duration(configs.ComputeDeadlineMinutes) * time.Minute,
	}, nil
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteLocationCommandHandler() commands.DeleteLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() (commands.CreateOrderCommandHandler, error) {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.matrixService)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateComputeCommandHandler() (commands.CreateComputeCommandHandler, error) {
	var f commands.ComputeUoWFactory = FuncComputeUoWFactory(func() commands.ComputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateComputeCommandHandler(
		f, c.matrixService, services.NewRequestBuilder(), c.solverClient, c.webhookURL)
}

func (c *CompositionRoot) CreateCancelComputeCommandHandler() commands.CancelComputeCommandHandler {
	var f commands.ComputeUoWFactory = FuncComputeUoWFactory(func() commands.ComputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelComputeCommandHandler(f)
}

func (c *CompositionRoot) CreateApplySolverResultCommandHandler() commands.ApplySolverResultCommandHandler {
	var f commands.ReconcileUoWFactory = FuncReconcileUoWFactory(func() commands.ReconcileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplySolverResultCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireComputesCommandHandler() (commands.ExpireComputesCommandHandler, error) {
	var f commands.ComputeUoWFactory = FuncComputeUoWFactory(func() commands.ComputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireComputesCommandHandler(f, c.computeMaxAge)
}

func (c *CompositionRoot) CreateGetAllLocationsQueryHandler() queries.GetAllLocationsQueryHandler {
	return queries.NewGetAllLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllComputesQueryHandler() queries.GetAllComputesQueryHandler {
	return queries.NewGetAllComputesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetComputeQueryHandler() queries.GetComputeQueryHandler {
	return queries.NewGetComputeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetComputeRoutesQueryHandler() queries.GetComputeRoutesQueryHandler {
	return queries.NewGetComputeRoutesQueryHandler(c.gormDB)
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncComputeUoWFactory func() commands.ComputeUoW

func (f FuncComputeUoWFactory) Create() commands.ComputeUoW {
	return f()
}

type FuncReconcileUoWFactory func() commands.ReconcileUoW

func (f FuncReconcileUoWFactory) Create() commands.ReconcileUoW {
	return f()
}
