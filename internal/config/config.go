package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/joya-energy/solar-simulation-backend/internal/simulation"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	PVGIS      PVGISConfig
	Share      ShareConfig
	Simulation SimulationConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// PVGISConfig holds the irradiance provider settings. RefreshSchedule is a
// cron expression for the yield-cache refresh.
type PVGISConfig struct {
	BaseURL         string
	RefreshSchedule string
}

// ShareConfig holds the fernet key used to mint result share tokens and the
// token lifetime in hours. An empty key disables sharing.
type ShareConfig struct {
	FernetKey     string
	TokenTTLHours int
}

// SimulationConfig holds the default project parameters and financing rates.
// Every value can be overridden per environment; calculators receive them
// explicitly and never read them ambiently.
type SimulationConfig struct {
	CostPerKwpDt             float64
	ElectricityPriceDtPerKwh float64
	AnnualOpexRate           float64
	DiscountRate             float64
	HorizonYears             int

	CreditAnnualRate        float64
	CreditSelfFinancingRate float64

	LeasingAnnualRate        float64
	LeasingResidualValueRate float64
	LeasingSelfFinancingRate float64
	LeasingOpexMultiplier    float64

	EscoTargetAnnualIRR float64
	EscoOpexBundled     bool

	DurationMonths int
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/solar_simulation.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:4200",
				"http://localhost",
			},
		},
		PVGIS: PVGISConfig{
			BaseURL:         getEnv("PVGIS_BASE_URL", ""),
			RefreshSchedule: getEnv("PVGIS_REFRESH_SCHEDULE", "0 3 * * *"),
		},
		Share: ShareConfig{
			FernetKey:     getEnv("SHARE_FERNET_KEY", ""),
			TokenTTLHours: getEnvInt("SHARE_TOKEN_TTL_HOURS", 72),
		},
		Simulation: SimulationConfig{
			CostPerKwpDt:             getEnvFloat("SIM_COST_PER_KWP_DT", 2500),
			ElectricityPriceDtPerKwh: getEnvFloat("SIM_ELECTRICITY_PRICE_DT", 0.350),
			AnnualOpexRate:           getEnvFloat("SIM_ANNUAL_OPEX_RATE", 0.01),
			DiscountRate:             getEnvFloat("SIM_DISCOUNT_RATE", 0.08),
			HorizonYears:             getEnvInt("SIM_HORIZON_YEARS", 25),

			CreditAnnualRate:        getEnvFloat("SIM_CREDIT_ANNUAL_RATE", 0.08),
			CreditSelfFinancingRate: getEnvFloat("SIM_CREDIT_SELF_FINANCING_RATE", 0.20),

			LeasingAnnualRate:        getEnvFloat("SIM_LEASING_ANNUAL_RATE", 0.095),
			LeasingResidualValueRate: getEnvFloat("SIM_LEASING_RESIDUAL_RATE", 0.05),
			LeasingSelfFinancingRate: getEnvFloat("SIM_LEASING_SELF_FINANCING_RATE", 0.10),
			LeasingOpexMultiplier:    getEnvFloat("SIM_LEASING_OPEX_MULTIPLIER", 1.2),

			EscoTargetAnnualIRR: getEnvFloat("SIM_ESCO_TARGET_IRR", 0.10),
			EscoOpexBundled:     getEnvBool("SIM_ESCO_OPEX_BUNDLED", false),

			DurationMonths: getEnvInt("SIM_DURATION_MONTHS", simulation.DefaultDurationMonths),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// CreditParameters builds the configured credit calculator parameters.
func (c SimulationConfig) CreditParameters() simulation.CreditParameters {
	return simulation.CreditParameters{
		AnnualRate:        c.CreditAnnualRate,
		SelfFinancingRate: c.CreditSelfFinancingRate,
		DurationMonths:    c.DurationMonths,
	}
}

// LeasingParameters builds the configured leasing calculator parameters.
func (c SimulationConfig) LeasingParameters() simulation.LeasingParameters {
	return simulation.LeasingParameters{
		AnnualRate:        c.LeasingAnnualRate,
		ResidualValueRate: c.LeasingResidualValueRate,
		SelfFinancingRate: c.LeasingSelfFinancingRate,
		OpexMultiplier:    c.LeasingOpexMultiplier,
		DurationMonths:    c.DurationMonths,
	}
}

// EscoParameters builds the configured ESCO calculator parameters.
func (c SimulationConfig) EscoParameters() simulation.EscoParameters {
	return simulation.EscoParameters{
		TargetAnnualIRR: c.EscoTargetAnnualIRR,
		OpexBundled:     c.EscoOpexBundled,
		DurationMonths:  c.DurationMonths,
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
