package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Inventory InventoryConfig
	Payroll   PayrollConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// InventoryConfig límites de stock usados cuando el producto no los indica.
type InventoryConfig struct {
	MinStock int
	MaxStock int
}

// PayrollConfig valores por defecto para el costo laboral.
type PayrollConfig struct {
	HourlyWage         decimal.Decimal
	FixedOverhead      decimal.Decimal // cargas fijas mensuales del empleador
	CommissionRate     decimal.Decimal // por contrato cerrado
	CommissionEligible bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, INVENTORY_MAX_STOCK, PAYROLL_HOURLY_WAGE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	hourlyWage, err := getDecimal(v, "PAYROLL_HOURLY_WAGE", "100")
	if err != nil {
		return nil, err
	}
	overhead, err := getDecimal(v, "PAYROLL_FIXED_OVERHEAD", "1000")
	if err != nil {
		return nil, err
	}
	commissionRate, err := getDecimal(v, "PAYROLL_COMMISSION_RATE", "100")
	if err != nil {
		return nil, err
	}
	minStock, err := getInt(v, "INVENTORY_MIN_STOCK", 10)
	if err != nil {
		return nil, err
	}
	maxStock, err := getInt(v, "INVENTORY_MAX_STOCK", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "costos-inventario"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Inventory: InventoryConfig{
			MinStock: minStock,
			MaxStock: maxStock,
		},
		Payroll: PayrollConfig{
			HourlyWage:         hourlyWage,
			FixedOverhead:      overhead,
			CommissionRate:     commissionRate,
			CommissionEligible: getBool(v, "PAYROLL_COMMISSION_ELIGIBLE", true),
		},
	}
	if cfg.Inventory.MinStock < 0 || cfg.Inventory.MaxStock < 0 {
		return nil, fmt.Errorf("config: límites de stock negativos (min=%d, max=%d)", cfg.Inventory.MinStock, cfg.Inventory.MaxStock)
	}
	if cfg.Inventory.MinStock > cfg.Inventory.MaxStock {
		return nil, fmt.Errorf("config: INVENTORY_MIN_STOCK (%d) mayor que INVENTORY_MAX_STOCK (%d)", cfg.Inventory.MinStock, cfg.Inventory.MaxStock)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return 0, fmt.Errorf("config: %s inválido: %w", key, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	raw := def
	if v.IsSet(key) {
		raw = v.GetString(key)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s inválido: %w", key, err)
	}
	return d, nil
}
