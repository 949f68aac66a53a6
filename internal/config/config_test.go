package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/shoecart/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		env       map[string]string
		want      config.Config
		wantError string
	}{
		{
			name: "defaults without file: ok",
			want: config.Default(),
		},
		{
			name: "file overrides defaults: ok",
			file: "env: prod\nlog_level: warn\ncurrency: EUR\nvalidation: permissive\n",
			want: config.Config{Env: "prod", LogLevel: "warn", Currency: "EUR", Validation: "permissive"},
		},
		{
			name: "env overrides file: ok",
			file: "currency: EUR\n",
			env:  map[string]string{"SHOECART_CURRENCY": "GBP", "SHOECART_LOG_LEVEL": "debug"},
			want: config.Config{Env: "dev", LogLevel: "debug", Currency: "GBP", Validation: "strict"},
		},
		{
			name: "env values in any case: ok",
			env: map[string]string{
				"SHOECART_LOG_LEVEL":  " DEBUG ",
				"SHOECART_CURRENCY":   "eur",
				"SHOECART_VALIDATION": "Permissive",
			},
			want: config.Config{Env: "dev", LogLevel: "debug", Currency: "EUR", Validation: "permissive"},
		},
		{
			name:      "unknown validation mode: error",
			file:      "validation: lenient\n",
			wantError: "validate.Struct",
		},
		{
			name:      "unknown currency: error",
			env:       map[string]string{"SHOECART_CURRENCY": "ABC"},
			wantError: "validate.Struct",
		},
		{
			name:      "malformed file: error",
			file:      "currency: [",
			wantError: "yaml.Unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var path string
			if tt.file != "" {
				path = filepath.Join(t.TempDir(), "shoecart.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o600))
			}

			cfg, err := config.Load(path)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCurrencyUnit(t *testing.T) {
	cfg := config.Default()

	unit, err := cfg.CurrencyUnit()
	require.NoError(t, err)
	assert.Equal(t, currency.USD.String(), unit.String())
	assert.False(t, cfg.Permissive())
}
