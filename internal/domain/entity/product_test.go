package entity_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/costos-inventario/internal/domain"
	"github.com/jhoicas/costos-inventario/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func intPtr(v int) *int { return &v }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtenido %s", want, got.String())
}

// newMilk construye "Leite Integral": 5.99, 50 unidades, vence mañana, límites 10/100.
func newMilk(t *testing.T, expiresAt time.Time) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(entity.ProductParams{
		Code:      "001",
		Name:      "Leite Integral",
		Price:     decimal.RequireFromString("5.99"),
		Quantity:  50,
		ExpiresAt: &expiresAt,
		MinStock:  intPtr(10),
		MaxStock:  intPtr(100),
	})
	require.NoError(t, err)
	return p
}

func newRice(t *testing.T) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(entity.ProductParams{
		Code:     "002",
		Name:     "Arroz",
		Price:    decimal.RequireFromString("15.90"),
		Quantity: 100,
	})
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción
// ──────────────────────────────────────────────────────────────────────────────

func TestNewProduct_Inicializacion(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	p := newMilk(t, tomorrow)

	assert.Equal(t, "001", p.Code)
	assert.Equal(t, "Leite Integral", p.Name)
	assertDecimal(t, "5.99", p.Price)
	assert.Equal(t, 50, p.Quantity)
	require.NotNil(t, p.ExpiresAt)
	assert.True(t, tomorrow.Equal(*p.ExpiresAt))
}

func TestNewProduct_ValoresPorDefecto(t *testing.T) {
	p := newRice(t)
	assert.Equal(t, entity.DefaultMinStock, p.MinStock)
	assert.Equal(t, entity.DefaultMaxStock, p.MaxStock)
	assert.Nil(t, p.ExpiresAt)
}

func TestNewProduct_EntradaInvalida(t *testing.T) {
	cases := []struct {
		name    string
		params  entity.ProductParams
		wantErr error
	}{
		{"precio negativo", entity.ProductParams{Code: "x", Price: decimal.NewFromInt(-1)}, domain.ErrInvalidInput},
		{"cantidad negativa", entity.ProductParams{Code: "x", Quantity: -1}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := entity.NewProduct(tc.params)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// Código vacío y cantidad inicial sobre el máximo se aceptan; solo AddStock controla la capacidad.
func TestNewProduct_SinValidacionDeCodigoNiCapacidad(t *testing.T) {
	p, err := entity.NewProduct(entity.ProductParams{Quantity: 11, MaxStock: intPtr(10)})
	require.NoError(t, err)
	assert.Empty(t, p.Code)
	assert.Equal(t, 11, p.Quantity)

	assert.ErrorIs(t, p.AddStock(1), domain.ErrCapacityExceeded)
	assert.Equal(t, 11, p.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestAddStock(t *testing.T) {
	p := newMilk(t, time.Now().AddDate(0, 0, 1))

	require.NoError(t, p.AddStock(20))
	assert.Equal(t, 70, p.Quantity)

	err := p.AddStock(-5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 70, p.Quantity)

	err = p.AddStock(0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 70, p.Quantity)

	// 70 + 50 excede el máximo de 100
	err = p.AddStock(50)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 70, p.Quantity, "no debe alterar el stock")

	err = p.AddStock(math.MaxInt)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 70, p.Quantity, "una entrada enorme no debe desbordar la cantidad")
}

func TestAddStock_HastaElMaximo(t *testing.T) {
	p := newMilk(t, time.Now().AddDate(0, 0, 1))
	require.NoError(t, p.AddStock(50))
	assert.Equal(t, p.MaxStock, p.Quantity)

	assert.ErrorIs(t, p.AddStock(1), domain.ErrCapacityExceeded)
}

func TestRemoveStock(t *testing.T) {
	p := newMilk(t, time.Now().AddDate(0, 0, 1))

	ok, err := p.RemoveStock(20)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30, p.Quantity)

	// sin stock suficiente
	ok, err = p.RemoveStock(50)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 30, p.Quantity, "no debe alterar el stock")

	ok, err = p.RemoveStock(-10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, ok)
	assert.Equal(t, 30, p.Quantity)

	ok, err = p.RemoveStock(30)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, p.Quantity)
}

func TestIsLowStock(t *testing.T) {
	p := newMilk(t, time.Now().AddDate(0, 0, 1))
	assert.False(t, p.IsLowStock())

	p.Quantity = 5
	assert.True(t, p.IsLowStock())

	p.Quantity = 10
	assert.False(t, p.IsLowStock(), "igual al mínimo no es stock bajo")

	p.Quantity = 9
	assert.True(t, p.IsLowStock())
}

// ──────────────────────────────────────────────────────────────────────────────
// Valoración y vencimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalValue(t *testing.T) {
	assertDecimal(t, "299.5", newMilk(t, time.Now().AddDate(0, 0, 1)).TotalValue())
	assertDecimal(t, "1590", newRice(t).TotalValue())
}

func TestIsWithinExpiry(t *testing.T) {
	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	p := newMilk(t, tomorrow)

	assert.True(t, p.IsWithinExpiry(time.Time{}), "fecha cero usa el instante actual")
	assert.True(t, p.IsWithinExpiry(now))
	assert.True(t, p.IsWithinExpiry(tomorrow), "el día de vencimiento todavía es válido")
	assert.False(t, p.IsWithinExpiry(tomorrow.AddDate(0, 0, 1)))
	assert.False(t, p.IsWithinExpiry(tomorrow.Add(time.Nanosecond)))
}

func TestIsWithinExpiry_SinVencimiento(t *testing.T) {
	p := newRice(t)
	for _, ref := range []time.Time{
		{},
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2999, 12, 31, 0, 0, 0, 0, time.UTC),
	} {
		assert.True(t, p.IsWithinExpiry(ref))
	}
}
