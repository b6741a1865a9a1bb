package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Billing   BillingConfig
	Company   CompanyConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// BillingConfig seeds the invoice numbering sequence on first run.
// Once the sequence row exists these values are ignored.
type BillingConfig struct {
	InvoicePrefix string
	StartNumber   int64
}

// CompanyConfig seeds the company profile on first run.
type CompanyConfig struct {
	Name    string
	Address string
	GSTIN   string
	Phone   string
	Email   string
	DLNo1   string
	DLNo2   string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pharma-pos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "pharma_pos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("BILLING_INVOICE_PREFIX", "TI")
	viper.SetDefault("BILLING_START_NUMBER", 100)
	viper.SetDefault("COMPANY_NAME", "Gopi Distributors")
	viper.SetDefault("COMPANY_ADDRESS", "")
	viper.SetDefault("COMPANY_GSTIN", "")
	viper.SetDefault("COMPANY_PHONE", "")
	viper.SetDefault("COMPANY_EMAIL", "")
	viper.SetDefault("COMPANY_DL_NO_1", "")
	viper.SetDefault("COMPANY_DL_NO_2", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Billing: BillingConfig{
			InvoicePrefix: viper.GetString("BILLING_INVOICE_PREFIX"),
			StartNumber:   viper.GetInt64("BILLING_START_NUMBER"),
		},
		Company: CompanyConfig{
			Name:    viper.GetString("COMPANY_NAME"),
			Address: viper.GetString("COMPANY_ADDRESS"),
			GSTIN:   viper.GetString("COMPANY_GSTIN"),
			Phone:   viper.GetString("COMPANY_PHONE"),
			Email:   viper.GetString("COMPANY_EMAIL"),
			DLNo1:   viper.GetString("COMPANY_DL_NO_1"),
			DLNo2:   viper.GetString("COMPANY_DL_NO_2"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
