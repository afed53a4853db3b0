package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"jastip/cmd"
	"jastip/internal/adapters/in/http"
	"jastip/internal/adapters/out/postgres/batchrepo"
	"jastip/internal/adapters/out/postgres/customerrepo"
	"jastip/internal/adapters/out/postgres/parcelrepo"
	"jastip/internal/core/domain/model/tariff"
	"jastip/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetBatchesQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),

		TariffBaseFee:           envInt64("TARIFF_BASE_FEE", tariff.DefaultBaseFee),
		TariffServiceFee:        envInt64("TARIFF_SERVICE_FEE", tariff.DefaultServiceFee),
		TariffPerKgRate:         envInt64("TARIFF_PER_KG_RATE", tariff.DefaultPerKgRate),
		TariffVolumetricDivisor: envInt64("TARIFF_VOLUMETRIC_DIVISOR", tariff.DefaultVolumetricDivisor),

		SupabaseURL:           os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:       os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey:    os.Getenv("SUPABASE_SERVICE_KEY"),
		SupabaseStorageBucket: os.Getenv("SUPABASE_STORAGE_BUCKET"),
	}
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&parcelrepo.ParcelDTO{},
		&batchrepo.BatchDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := http.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateProvisionCustomerCommandHandler(),
		app.CreateUpdateCustomerProfileCommandHandler(),
		app.CreateLockCustomerAddressCommandHandler(),
		app.CreateDeleteCustomerCommandHandler(),
		app.CreateSubmitPreAlertCommandHandler(),
		app.CreateReceiveParcelCommandHandler(),
		app.CreateMarkParcelPaidCommandHandler(),
		app.CreateCreateBatchCommandHandler(),
		app.CreateAddParcelToBatchCommandHandler(),
		app.CreateAdvanceBatchStatusCommandHandler(),
		app.CreateGetCustomersQueryHandler(),
		app.CreateGetCustomerParcelsQueryHandler(),
		app.CreateGetExpectedParcelsQueryHandler(),
		app.CreateGetBatchesQueryHandler(),
		app.CreateGetBatchManifestQueryHandler(),
		app.CreateGetCustomerProfileQueryHandler(),
		app.IdentityProvider(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
