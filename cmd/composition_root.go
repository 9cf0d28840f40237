package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "yardwork/internal/adapters/in/http"
	"yardwork/internal/adapters/out/eventlog"
	"yardwork/internal/adapters/out/memory"
	"yardwork/internal/adapters/out/postgres"
	"yardwork/internal/adapters/out/postgres/ziprepo"
	"yardwork/internal/adapters/out/rabbitmq"
	"yardwork/internal/adapters/out/zipdata"
	"yardwork/internal/core/application/usecases/commands"
	"yardwork/internal/core/application/usecases/queries"
	"yardwork/internal/core/domain/services"
	"yardwork/internal/core/ports"
	"yardwork/internal/jobs"

	"github.com/labstack/echo/v4"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	geo        *services.GeoIndex
	publisher  ports.EventPublisher
	closers    []func() error
}

// NewCompositionRoot opens the stores selected by config, loads the ZIP index and connects the
// event publishers. Close releases whatever was opened, also when construction failed half way.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &CompositionRoot{config: config, logger: logger}

	if err := c.openStorage(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.loadGeo(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.connectPublisher(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	return c, nil
}

func (c *CompositionRoot) openStorage() error {
	switch c.config.Storage.Driver {
	case StorageMemory:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
		c.logger.Info("using in-memory storage")
		return nil
	case StoragePostgres:
		db, err := c.openGorm()
		if err != nil {
			return err
		}
		if c.config.Storage.AutoMigrate {
			if err = postgres.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		c.logger.Info("using PostgreSQL storage", slog.String("host", c.config.Database.Host))
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", c.config.Storage.Driver)
	}
}

func (c *CompositionRoot) openGorm() (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(c.config.Database.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	c.closers = append(c.closers, sqlDB.Close)

	sqlDB.SetMaxOpenConns(c.config.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.config.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.config.Database.ConnMaxLifetime)
	return db, nil
}

func (c *CompositionRoot) zipSource(ctx context.Context) (ports.ZipSource, error) {
	switch c.config.Geo.Source {
	case ZipSourceEmbedded:
		return zipdata.NewEmbeddedSource(), nil
	case ZipSourceFile:
		return zipdata.NewFileSource(c.config.Geo.File), nil
	case ZipSourcePostgres:
		db, err := ziprepo.Connect(ctx, c.config.Database.DSN())
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, db.Close)

		source := ziprepo.NewSource(db, c.logger)
		if err = source.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		if c.config.Geo.SeedFromEmbedded {
			if err = seedZipTable(ctx, source); err != nil {
				return nil, err
			}
		}
		return source, nil
	default:
		return nil, fmt.Errorf("unknown zip source %q", c.config.Geo.Source)
	}
}

// seedZipTable copies the embedded table into an empty zip_locations.
func seedZipTable(ctx context.Context, source *ziprepo.Source) error {
	count, err := source.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	locations, err := zipdata.NewEmbeddedSource().Load(ctx)
	if err != nil {
		return err
	}
	return source.Seed(ctx, locations)
}

func (c *CompositionRoot) loadGeo(ctx context.Context) error {
	source, err := c.zipSource(ctx)
	if err != nil {
		return err
	}
	geo, err := services.NewGeoIndexFromSource(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to load ZIP index: %w", err)
	}
	c.geo = geo
	c.logger.Info("ZIP index loaded",
		slog.String("source", c.config.Geo.Source),
		slog.Int("zips", geo.Size()))
	return nil
}

func (c *CompositionRoot) connectPublisher() error {
	publishers := eventlog.FanOut{eventlog.NewLoggingPublisher(c.logger)}

	if c.config.RabbitMQ.Enabled {
		mq, err := rabbitmq.Dial(rabbitmq.Config{
			URL:            c.config.RabbitMQ.URL,
			Exchange:       c.config.RabbitMQ.Exchange,
			Heartbeat:      c.config.RabbitMQ.Heartbeat,
			PublishTimeout: c.config.RabbitMQ.PublishTimeout,
			PublishRetries: c.config.RabbitMQ.PublishRetries,
			RetryInterval:  c.config.RabbitMQ.RetryInterval,
		}, c.logger)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, mq.Close)
		publishers = append(publishers, mq)
	}

	c.publisher = publishers
	return nil
}

// GeoIndex exposes the loaded ZIP index.
func (c *CompositionRoot) GeoIndex() *services.GeoIndex {
	return c.geo
}

func (c *CompositionRoot) retryPolicy() commands.RetryPolicy {
	return commands.RetryPolicy{
		MaxRetries:      c.config.Claim.MaxRetries,
		InitialInterval: c.config.Claim.InitialInterval,
		MaxInterval:     c.config.Claim.MaxInterval,
	}
}

func (c *CompositionRoot) CreateClaimJobCommandHandler() commands.ClaimJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimJobCommandHandler(f, c.geo, c.publisher, c.retryPolicy(), c.logger)
}

func (c *CompositionRoot) CreateStartJobCommandHandler() commands.StartJobCommandHandler {
	return commands.NewStartJobCommandHandler(c.jobUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.jobUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.jobUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	return commands.NewCreateEmployeeCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateAddCoverageAreaCommandHandler() commands.AddCoverageAreaCommandHandler {
	return commands.NewAddCoverageAreaCommandHandler(c.employeeUoWFactory(), c.geo)
}

func (c *CompositionRoot) CreateDeactivateCoverageAreaCommandHandler() commands.DeactivateCoverageAreaCommandHandler {
	return commands.NewDeactivateCoverageAreaCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateCheckCoverageQueryHandler() queries.CheckCoverageQueryHandler {
	return queries.NewCheckCoverageQueryHandler(c.uowFactory.Create(), c.geo)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.uowFactory.Create())
}

func (c *CompositionRoot) CreateGetJobPoolQueryHandler() queries.GetJobPoolQueryHandler {
	return queries.NewGetJobPoolQueryHandler(c.uowFactory.Create(), c.geo)
}

func (c *CompositionRoot) CreateGetZipsWithinRadiusQueryHandler() queries.GetZipsWithinRadiusQueryHandler {
	return queries.NewGetZipsWithinRadiusQueryHandler(c.geo)
}

// Router assembles the HTTP API over every handler.
func (c *CompositionRoot) Router() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		ClaimJob:               c.CreateClaimJobCommandHandler(),
		StartJob:               c.CreateStartJobCommandHandler(),
		CompleteJob:            c.CreateCompleteJobCommandHandler(),
		CancelJob:              c.CreateCancelJobCommandHandler(),
		CreateJob:              c.CreateCreateJobCommandHandler(),
		CreateEmployee:         c.CreateCreateEmployeeCommandHandler(),
		AddCoverageArea:        c.CreateAddCoverageAreaCommandHandler(),
		DeactivateCoverageArea: c.CreateDeactivateCoverageAreaCommandHandler(),
		CheckCoverage:          c.CreateCheckCoverageQueryHandler(),
		GetJob:                 c.CreateGetJobQueryHandler(),
		GetJobPool:             c.CreateGetJobPoolQueryHandler(),
		GetZipsWithinRadius:    c.CreateGetZipsWithinRadiusQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		RequestTimeout:   c.config.Server.RequestTimeout,
		ValidateRequests: c.config.Server.ValidateRequests,
		Swagger:          c.config.Server.Swagger,
	}, c.logger)
}

// JobManager returns the scheduled jobs enabled by the configuration.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.geo, jobs.ZipRefreshConfig{
		Enabled:  c.config.Geo.RefreshEnabled,
		Schedule: c.config.Geo.RefreshSchedule,
		Timeout:  c.config.Geo.RefreshTimeout,
	}, c.logger)
}

// Close releases connections in reverse order of opening.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) employeeUoWFactory() commands.EmployeeUoWFactory {
	return FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
