// Package payroll contiene las fórmulas de costo laboral (servicio de dominio, sin estado).
// Todas las funciones son puras y operan sobre decimal.Decimal.
package payroll

import "github.com/shopspring/decimal"

// overtimeMultiplier recargo fijo aplicado a las horas extra.
var overtimeMultiplier = decimal.NewFromFloat(1.5)

// OvertimePay = HorasExtra * ValorHora * 1.5
func OvertimePay(overtimeHours, hourlyWage decimal.Decimal) decimal.Decimal {
	return overtimeHours.Mul(hourlyWage).Mul(overtimeMultiplier)
}

// GrossPay = ValorHora * HorasNormales + OvertimePay
func GrossPay(hourlyWage, regularHours, overtimeHours decimal.Decimal) decimal.Decimal {
	return hourlyWage.Mul(regularHours).Add(OvertimePay(overtimeHours, hourlyWage))
}

// Commission devuelve ValorComision * ContratosCerrados, o cero si no aplica.
func Commission(eligible bool, rate decimal.Decimal, closedContracts int) decimal.Decimal {
	if !eligible {
		return decimal.Zero
	}
	return rate.Mul(decimal.NewFromInt(int64(closedContracts)))
}

// Benefits = ValeAlimentacion + ValeTransporte
func Benefits(mealAllowance, transportAllowance decimal.Decimal) decimal.Decimal {
	return mealAllowance.Add(transportAllowance)
}

// TotalCost = GrossPay + CostoFijo + Benefits.
// La comisión no forma parte del costo total.
func TotalCost(grossPay, fixedOverhead, benefits decimal.Decimal) decimal.Decimal {
	return grossPay.Add(fixedOverhead).Add(benefits)
}
