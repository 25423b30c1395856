// Package config reads the service settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"

	AuthModeToken    = "token"
	AuthModeDisabled = "disabled"
)

type Config struct {
	Port    string
	GinMode string

	StorageDriver string
	SQLitePath    string
	SQLDebug      bool

	QuotePrefix       string
	QuoteValidityDays int
	QuoteTaxRate      float64

	AuthMode  string
	APITokens string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	// MercadoPagoTestPayerEmail is the sandbox payer used when a payment
	// request names none.
	MercadoPagoTestPayerEmail string
}

// Load reads the environment. Invalid numbers fall back to their defaults.
func Load() Config {
	cfg := Config{
		Port:                   getenvDefault("PORT", "8080"),
		GinMode:                os.Getenv("GIN_MODE"),
		StorageDriver:          strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		SQLitePath:             getenvDefault("SQLITE_PATH", "carrozzeria.db"),
		SQLDebug:               getenvBool("SQL_DEBUG"),
		QuotePrefix:            getenvDefault("QUOTE_PREFIX", "PRV"),
		QuoteValidityDays:      getenvInt("QUOTE_VALIDITY_DAYS", 30),
		QuoteTaxRate:           getenvFloat("QUOTE_TAX_RATE", 22),
		AuthMode:               strings.ToLower(getenvDefault("AUTH_MODE", AuthModeToken)),
		APITokens:              os.Getenv("API_TOKENS"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK"),

		MercadoPagoTestPayerEmail: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
	}
	if cfg.StorageDriver != StorageDynamoDB && cfg.StorageDriver != StorageSQLite {
		log.Printf("[config] unknown STORAGE_DRIVER=%s, using %s", cfg.StorageDriver, StorageDynamoDB)
		cfg.StorageDriver = StorageDynamoDB
	}
	if cfg.AuthMode != AuthModeToken && cfg.AuthMode != AuthModeDisabled {
		log.Printf("[config] unknown AUTH_MODE=%s, using %s", cfg.AuthMode, AuthModeToken)
		cfg.AuthMode = AuthModeToken
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		log.Printf("[config] invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return v
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
