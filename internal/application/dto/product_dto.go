package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear un producto. MinStock/MaxStock nil toman los límites configurados.
type ProductRequest struct {
	Code      string          `json:"code" mapstructure:"codigo"`
	Name      string          `json:"name" mapstructure:"nome"`
	Price     decimal.Decimal `json:"price" mapstructure:"preco"`
	Quantity  int             `json:"quantity" mapstructure:"quantidade"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty" mapstructure:"data_validade"`
	MinStock  *int            `json:"min_stock,omitempty" mapstructure:"estoque_minimo"`
	MaxStock  *int            `json:"max_stock,omitempty" mapstructure:"estoque_maximo"`
}

// ProductSummary cifras derivadas de un producto en una fecha de referencia.
type ProductSummary struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	MinStock     int             `json:"min_stock"`
	MaxStock     int             `json:"max_stock"`
	TotalValue   decimal.Decimal `json:"total_value"` // Price * Quantity
	LowStock     bool            `json:"low_stock"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
	WithinExpiry bool            `json:"within_expiry"`
}
