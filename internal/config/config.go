package config

import (
	"fmt"
	"os"
	"strings"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

const (
	ValidationStrict     = "strict"
	ValidationPermissive = "permissive"
)

type Config struct {
	Env      string `yaml:"env" validate:"required"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn warning error"`

	// Currency every product price and cart total is expressed in.
	Currency string `yaml:"currency" validate:"required,iso4217"`
	// Validation is either "strict" or "permissive"; permissive carts accept
	// any size and any quantity.
	Validation string `yaml:"validation" validate:"oneof=strict permissive"`
}

func Default() Config {
	return Config{
		Env:        "dev",
		LogLevel:   "info",
		Currency:   "USD",
		Validation: ValidationStrict,
	}
}

// Load reads path over the defaults, then applies SHOECART_* environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("os.ReadFile: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml.Unmarshal: %w", err)
		}
	}

	cfg.Env = getEnv("SHOECART_ENV", cfg.Env)
	cfg.LogLevel = getEnv("SHOECART_LOG_LEVEL", cfg.LogLevel)
	cfg.Currency = getEnv("SHOECART_CURRENCY", cfg.Currency)
	cfg.Validation = getEnv("SHOECART_VALIDATION", cfg.Validation)

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Validation = strings.ToLower(strings.TrimSpace(cfg.Validation))
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate.Struct: %w", err)
	}

	return nil
}

func (c Config) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}

	return unit, nil
}

func (c Config) Permissive() bool {
	return c.Validation == ValidationPermissive
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
