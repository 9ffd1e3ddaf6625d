package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "fueldelivery/internal/adapters/in/http"
	"fueldelivery/internal/adapters/out/kafka"
	"fueldelivery/internal/adapters/out/postgres"
	"fueldelivery/internal/adapters/out/postgres/catalogrepo"
	rediscache "fueldelivery/internal/adapters/out/redis"
	"fueldelivery/internal/core/application/usecases/commands"
	"fueldelivery/internal/core/application/usecases/queries"
	"fueldelivery/internal/core/ports"
	"fueldelivery/internal/jobs"
	"fueldelivery/internal/pkg/metrics"
	"fueldelivery/internal/pkg/password"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use cases. Optional infrastructure
// (Redis, Kafka) is used only when configured.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	registry   *prometheus.Registry
	workflow   *metrics.WorkflowMetrics
	jobMetrics *metrics.CronJobMetrics
	uowFactory *postgres.GormUnitOfWorkFactory
	prices     ports.PriceCatalog
	hasher     ports.PasswordHasher
	closers    []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &CompositionRoot{
		config:     cfg,
		gormDB:     gormDB,
		logger:     logger,
		registry:   registry,
		workflow:   metrics.NewWorkflowMetrics(registry),
		jobMetrics: metrics.NewCronJobMetrics(registry),
		hasher:     password.NewBcryptHasher(cfg.BcryptCost),
	}

	c.prices = c.createPriceCatalog()
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, c.createEventPublisher(), logger)
	return c
}

func (c *CompositionRoot) createPriceCatalog() ports.PriceCatalog {
	var catalog ports.PriceCatalog = catalogrepo.NewGormPriceCatalog(c.gormDB)
	if c.config.RedisAddr == "" {
		return catalog
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.config.RedisAddr,
		Password: c.config.RedisPassword,
	})
	c.closers = append(c.closers, client.Close)
	return rediscache.NewCachedPriceCatalog(catalog, client, c.config.PriceCacheTTL, c.logger)
}

func (c *CompositionRoot) createEventPublisher() ports.OrderEventPublisher {
	var publisher ports.OrderEventPublisher
	if brokers := c.config.KafkaBrokers(); len(brokers) > 0 {
		kafkaPublisher := kafka.NewOrderStatusPublisher(brokers, c.config.KafkaOrderChangedTopic)
		c.closers = append(c.closers, kafkaPublisher.Close)
		publisher = kafkaPublisher
	} else {
		publisher = kafka.NewLogPublisher(c.logger)
	}
	return kafka.NewMeteredPublisher(publisher, c.workflow)
}

// Gatherer exposes the service's metrics registry.
func (c *CompositionRoot) Gatherer() prometheus.Gatherer {
	return c.registry
}

// SeedFuelPrices publishes the configured global prices.
func (c *CompositionRoot) SeedFuelPrices(ctx context.Context) error {
	entries, err := c.config.FuelPriceList()
	if err != nil {
		return err
	}
	handler := c.CreateSetFuelPriceCommandHandler()
	for _, entry := range entries {
		cmd, err := commands.NewSetFuelPriceCommand(entry.FuelType, entry.Price)
		if err != nil {
			return fmt.Errorf("fuel price %s: %w", entry.FuelType, err)
		}
		if err = handler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("fuel price %s: %w", entry.FuelType, err)
		}
	}
	return nil
}

// Close releases the optional infrastructure clients.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			RegisterUser:    c.CreateRegisterUserCommandHandler(),
			RegisterStation: c.CreateRegisterStationCommandHandler(),
			PlaceOrder:      c.CreatePlaceOrderCommandHandler(),
			ConfirmOrder:    c.CreateConfirmOrderCommandHandler(),
			AssignAgent:     c.CreateAssignAgentCommandHandler(),
			RejectOrder:     c.CreateRejectOrderCommandHandler(),
			DeliverOrder:    c.CreateDeliverOrderCommandHandler(),
			CancelOrder:     c.CreateCancelOrderCommandHandler(),
			AddAgent:        c.CreateAddAgentCommandHandler(),
			RemoveAgent:     c.CreateRemoveAgentCommandHandler(),
			UpdateInventory: c.CreateUpdateInventoryCommandHandler(),
			ReconcileAgents: c.CreateReconcileAgentsCommandHandler(),
		},
		httpin.Queries{
			Authenticate:       c.CreateAuthenticateQueryHandler(),
			Stations:           c.CreateGetStationsQueryHandler(),
			StationFuelOptions: c.CreateGetStationFuelOptionsQueryHandler(),
			Quote:              c.CreateGetQuoteQueryHandler(),
			UserOrders:         c.CreateGetUserOrdersQueryHandler(),
			ManagerDashboard:   c.CreateGetManagerDashboardQueryHandler(),
		},
		httpin.NewSessionStore(c.config.SessionSecret),
		c.workflow,
		c.logger,
		httpin.Options{
			ValidateRequests: c.config.OpenAPIValidation,
			Gatherer:         c.registry,
		},
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileAgentsCommandHandler(),
		c.config.SweepSchedule,
		c.jobMetrics,
		c.workflow,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.registrationUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateRegisterStationCommandHandler() commands.RegisterStationCommandHandler {
	return commands.NewRegisterStationCommandHandler(c.registrationUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.prices)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateAddAgentCommandHandler() commands.AddAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveAgentCommandHandler() commands.RemoveAgentCommandHandler {
	return commands.NewRemoveAgentCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateUpdateInventoryCommandHandler() commands.UpdateInventoryCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInventoryCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileAgentsCommandHandler() commands.ReconcileAgentsCommandHandler {
	return commands.NewReconcileAgentsCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateSetFuelPriceCommandHandler() commands.SetFuelPriceCommandHandler {
	return commands.NewSetFuelPriceCommandHandler(c.prices)
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.gormDB, c.hasher)
}

func (c *CompositionRoot) CreateGetStationsQueryHandler() queries.GetStationsQueryHandler {
	return queries.NewGetStationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStationFuelOptionsQueryHandler() queries.GetStationFuelOptionsQueryHandler {
	return queries.NewGetStationFuelOptionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.gormDB, c.prices)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetManagerDashboardQueryHandler() queries.GetManagerDashboardQueryHandler {
	return queries.NewGetManagerDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) crossAggregateUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) registrationUoWFactory() commands.RegistrationUoWFactory {
	return FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
