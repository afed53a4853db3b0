package cmd

import (
	"fmt"

	"jastip/internal/adapters/out/postgres"
	"jastip/internal/adapters/out/supabaseauth"
	"jastip/internal/adapters/out/supabasestorage"
	"jastip/internal/core/application/usecases/commands"
	"jastip/internal/core/application/usecases/queries"
	"jastip/internal/core/domain/model/tariff"
	"jastip/internal/core/domain/services"
	"jastip/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	rates            tariff.Tariff
	proofStorage     ports.ProofStorage
	identityProvider ports.IdentityProvider
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	rates, err := tariff.NewTariff(
		config.TariffBaseFee,
		config.TariffServiceFee,
		config.TariffPerKgRate,
		config.TariffVolumetricDivisor,
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid tariff configuration: %w", err)
	}

	proofStorage, err := supabasestorage.NewClient(
		config.SupabaseURL, config.SupabaseStorageBucket, config.SupabaseServiceKey,
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid storage configuration: %w", err)
	}

	identityProvider, err := supabaseauth.NewClient(config.SupabaseURL, config.SupabaseAnonKey)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid auth configuration: %w", err)
	}

	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		rates:            rates,
		proofStorage:     proofStorage,
		identityProvider: identityProvider,
	}, nil
}

func (c *CompositionRoot) IdentityProvider() ports.IdentityProvider {
	return c.identityProvider
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateProvisionCustomerCommandHandler() commands.ProvisionCustomerCommandHandler {
	return commands.NewProvisionCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerProfileCommandHandler() commands.UpdateCustomerProfileCommandHandler {
	return commands.NewUpdateCustomerProfileCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateLockCustomerAddressCommandHandler() commands.LockCustomerAddressCommandHandler {
	return commands.NewLockCustomerAddressCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateSubmitPreAlertCommandHandler() commands.SubmitPreAlertCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPreAlertCommandHandler(f)
}

func (c *CompositionRoot) CreateReceiveParcelCommandHandler() commands.ReceiveParcelCommandHandler {
	return commands.NewReceiveParcelCommandHandler(
		c.parcelUoWFactory(),
		c.proofStorage,
		services.NewRateCalculator(),
		c.rates,
	)
}

func (c *CompositionRoot) CreateMarkParcelPaidCommandHandler() commands.MarkParcelPaidCommandHandler {
	return commands.NewMarkParcelPaidCommandHandler(c.parcelUoWFactory(), nil)
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	return commands.NewCreateBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceBatchStatusCommandHandler() commands.AdvanceBatchStatusCommandHandler {
	return commands.NewAdvanceBatchStatusCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateAddParcelToBatchCommandHandler() commands.AddParcelToBatchCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddParcelToBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerParcelsQueryHandler() queries.GetCustomerParcelsQueryHandler {
	return queries.NewGetCustomerParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpectedParcelsQueryHandler() queries.GetExpectedParcelsQueryHandler {
	return queries.NewGetExpectedParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatchesQueryHandler() queries.GetBatchesQueryHandler {
	return queries.NewGetBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatchManifestQueryHandler() queries.GetBatchManifestQueryHandler {
	return queries.NewGetBatchManifestQueryHandler(c.gormDB, services.NewManifestBuilder())
}

func (c *CompositionRoot) CreateGetCustomerProfileQueryHandler() queries.GetCustomerProfileQueryHandler {
	return queries.NewGetCustomerProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
