package cmd

import (
	"context"
	"log/slog"

	httpin "orderhub/internal/adapters/in/http"
	"orderhub/internal/adapters/out/postgres"
	"orderhub/internal/adapters/out/postgres/courierrepo"
	"orderhub/internal/adapters/out/postgres/orderrepo"
	"orderhub/internal/adapters/out/sms"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/courier"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/platform"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/core/ports"
	"orderhub/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   platform.Registry
	notifier   ports.AssignmentNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   platform.NewRegistry(),
		notifier:   sms.NewNotifier(logger),
		logger:     logger,
	}
}

// Migrate creates or updates the database schema.
func (c *CompositionRoot) Migrate() error {
	return c.gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&courierrepo.CourierDTO{},
	)
}

// SeedCouriers provisions the courier roster on first start.
// Runs are idempotent: an already populated roster is left untouched.
func (c *CompositionRoot) SeedCouriers(ctx context.Context) error {
	seeds := []struct {
		name  string
		phone string
	}{
		{"Mert Aksoy", "+90 533 111 22 33"},
		{"Elif Arslan", "+90 544 444 55 66"},
		{"Deniz Kurt", "+90 505 777 88 99"},
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	existing, err := courierRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, seed := range seeds {
		newCourier, courierErr := courier.NewCourier(kernel.NewUUID(), seed.name, seed.phone)
		if courierErr != nil {
			return courierErr
		}
		if courierErr = courierRepo.Add(ctx, newCourier); courierErr != nil {
			return courierErr
		}
	}

	return uow.Commit(ctx)
}

func (c *CompositionRoot) CreateCreateWebhookOrderCommandHandler() commands.CreateWebhookOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWebhookOrderCommandHandler(f, services.NewOrderNormalizer(c.registry))
}

func (c *CompositionRoot) CreateCreateManualOrderCommandHandler() commands.CreateManualOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateManualOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchNextOrderCommandHandler() commands.DispatchNextOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNextOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST adapter with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateWebhookOrderCommandHandler(),
		c.CreateCreateManualOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetAllCouriersQueryHandler(),
	)
}

// CreateJobManager assembles the background job runner.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchNextOrderCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
