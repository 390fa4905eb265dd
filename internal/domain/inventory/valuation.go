package inventory

import "github.com/shopspring/decimal"

// StockValue implementa la valoración del stock a precio unitario (servicio de dominio).
// Valor = PrecioUnitario * Cantidad
func StockValue(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// FitsCapacity indica si una entrada cabe sin superar la capacidad máxima.
// Se compara contra el espacio libre para que current+amount no desborde int.
func FitsCapacity(current, amount, maxStock int) bool {
	return amount <= maxStock-current
}

// IsBelowMinimum es estricto: con stock igual al mínimo no se considera bajo.
func IsBelowMinimum(current, minStock int) bool {
	return current < minStock
}
