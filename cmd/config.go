package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Pricing knobs, in minor currency units. Unset environment variables
	// fall back to the default price list at load time.
	TariffBaseFee           int64
	TariffServiceFee        int64
	TariffPerKgRate         int64
	TariffVolumetricDivisor int64

	SupabaseURL           string
	SupabaseAnonKey       string
	SupabaseServiceKey    string
	SupabaseStorageBucket string
}
