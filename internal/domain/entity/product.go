package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/costos-inventario/internal/domain"
	"github.com/jhoicas/costos-inventario/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// Límites de stock por defecto cuando no se indican al crear el producto.
const (
	DefaultMinStock = 10
	DefaultMaxStock = 100
)

// Product representa un producto del inventario con su stock disponible.
// Los campos son públicos: una asignación directa no se valida, solo las operaciones de stock
// garantizan 0 <= Quantity <= MaxStock.
type Product struct {
	Code      string          // código del producto (la unicidad no se verifica aquí)
	Name      string
	Price     decimal.Decimal // precio unitario
	Quantity  int
	ExpiresAt *time.Time // nil = sin fecha de vencimiento
	MinStock  int
	MaxStock  int
}

// ProductParams entrada para NewProduct. Los punteros nil toman el valor por defecto.
type ProductParams struct {
	Code      string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	ExpiresAt *time.Time
	MinStock  *int
	MaxStock  *int
}

// NewProduct valida precio y cantidad iniciales (no negativos) y construye el producto.
// El código no se valida y la cantidad inicial puede superar MaxStock.
func NewProduct(p ProductParams) (*Product, error) {
	if p.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if p.Quantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	minStock, maxStock := DefaultMinStock, DefaultMaxStock
	if p.MinStock != nil {
		minStock = *p.MinStock
	}
	if p.MaxStock != nil {
		maxStock = *p.MaxStock
	}
	return &Product{
		Code:      p.Code,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		ExpiresAt: p.ExpiresAt,
		MinStock:  minStock,
		MaxStock:  maxStock,
	}, nil
}

// AddStock suma amount al stock. Falla con ErrInvalidInput si amount <= 0
// y con ErrCapacityExceeded si se superaría MaxStock; en ambos casos no modifica el stock.
func (p *Product) AddStock(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	if !inventory.FitsCapacity(p.Quantity, amount, p.MaxStock) {
		return fmt.Errorf("%w: %d + %d > %d", domain.ErrCapacityExceeded, p.Quantity, amount, p.MaxStock)
	}
	p.Quantity += amount
	return nil
}

// RemoveStock descuenta amount del stock. Si no hay stock suficiente devuelve false
// sin modificar la cantidad; eso no es un error.
func (p *Product) RemoveStock(amount int) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	if p.Quantity-amount < 0 {
		return false, nil
	}
	p.Quantity -= amount
	return true, nil
}

// IsLowStock indica si el stock está por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return inventory.IsBelowMinimum(p.Quantity, p.MinStock)
}

// TotalValue valor del stock a precio unitario.
func (p *Product) TotalValue() decimal.Decimal {
	return inventory.StockValue(p.Price, p.Quantity)
}

// IsWithinExpiry indica si el producto sigue vigente en la fecha ref (ref cero = ahora).
// El mismo instante de vencimiento todavía es válido. Sin fecha de vencimiento siempre es true.
func (p *Product) IsWithinExpiry(ref time.Time) bool {
	if p.ExpiresAt == nil {
		return true
	}
	if ref.IsZero() {
		ref = time.Now()
	}
	return !ref.After(*p.ExpiresAt)
}
