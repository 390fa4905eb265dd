package entity

import (
	"errors"
	"fmt"

	"github.com/jhoicas/costos-inventario/internal/domain"
	"github.com/jhoicas/costos-inventario/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// DefaultCommissionEligible valor de CommissionEligible cuando no se indica.
const DefaultCommissionEligible = true

// Valores por defecto de EmployeeParams.
var (
	defaultHourlyWage     = decimal.NewFromInt(100)
	defaultFixedOverhead  = decimal.NewFromInt(1000)
	defaultCommissionRate = decimal.NewFromInt(100)
)

// Employee representa a un empleado desde el punto de vista del costo laboral.
// Es inmutable: solo se construye con NewEmployee, que valida todos los campos.
type Employee struct {
	name               string
	id                 int
	hourlyWage         decimal.Decimal
	regularHours       decimal.Decimal
	overtimeHours      decimal.Decimal
	fixedOverhead      decimal.Decimal // cargas fijas mensuales del empleador
	commissionEligible bool
	commissionRate     decimal.Decimal // por contrato cerrado
	closedContracts    int
	mealAllowance      decimal.Decimal
	transportAllowance decimal.Decimal
}

// EmployeeParams entrada para NewEmployee. Los punteros nil toman el valor por defecto
// (valor hora 100, costo fijo 1000, comisión 100 habilitada, el resto en cero).
type EmployeeParams struct {
	Name               string
	ID                 int
	HourlyWage         *decimal.Decimal
	RegularHours       *decimal.Decimal
	OvertimeHours      *decimal.Decimal
	FixedOverhead      *decimal.Decimal
	CommissionEligible *bool
	CommissionRate     *decimal.Decimal
	ClosedContracts    int
	MealAllowance      *decimal.Decimal
	TransportAllowance *decimal.Decimal
}

// NewEmployee aplica los valores por defecto y rechaza valores negativos en valor hora,
// horas, horas extra, contratos cerrados y vales. Todos los campos inválidos se reportan juntos.
func NewEmployee(p EmployeeParams) (Employee, error) {
	e := Employee{
		name:               p.Name,
		id:                 p.ID,
		hourlyWage:         orDefault(p.HourlyWage, defaultHourlyWage),
		regularHours:       orDefault(p.RegularHours, decimal.Zero),
		overtimeHours:      orDefault(p.OvertimeHours, decimal.Zero),
		fixedOverhead:      orDefault(p.FixedOverhead, defaultFixedOverhead),
		commissionEligible: DefaultCommissionEligible,
		commissionRate:     orDefault(p.CommissionRate, defaultCommissionRate),
		closedContracts:    p.ClosedContracts,
		mealAllowance:      orDefault(p.MealAllowance, decimal.Zero),
		transportAllowance: orDefault(p.TransportAllowance, decimal.Zero),
	}
	if p.CommissionEligible != nil {
		e.commissionEligible = *p.CommissionEligible
	}

	var errs []error
	checks := []struct {
		field    string
		negative bool
	}{
		{"salario por hora", e.hourlyWage.IsNegative()},
		{"horas trabajadas", e.regularHours.IsNegative()},
		{"horas extra", e.overtimeHours.IsNegative()},
		{"contratos cerrados", e.closedContracts < 0},
		{"vale de alimentación", e.mealAllowance.IsNegative()},
		{"vale de transporte", e.transportAllowance.IsNegative()},
	}
	for _, c := range checks {
		if c.negative {
			errs = append(errs, fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, c.field))
		}
	}
	if len(errs) > 0 {
		return Employee{}, errors.Join(errs...)
	}
	return e, nil
}

func orDefault(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

func (e Employee) Name() string                        { return e.name }
func (e Employee) ID() int                             { return e.id }
func (e Employee) HourlyWage() decimal.Decimal         { return e.hourlyWage }
func (e Employee) RegularHours() decimal.Decimal       { return e.regularHours }
func (e Employee) OvertimeHours() decimal.Decimal      { return e.overtimeHours }
func (e Employee) FixedOverhead() decimal.Decimal      { return e.fixedOverhead }
func (e Employee) CommissionEligible() bool            { return e.commissionEligible }
func (e Employee) CommissionRate() decimal.Decimal     { return e.commissionRate }
func (e Employee) ClosedContracts() int                { return e.closedContracts }
func (e Employee) MealAllowance() decimal.Decimal      { return e.mealAllowance }
func (e Employee) TransportAllowance() decimal.Decimal { return e.transportAllowance }

// OvertimePay valor de las horas extra (1.5x el valor hora).
func (e Employee) OvertimePay() decimal.Decimal {
	return payroll.OvertimePay(e.overtimeHours, e.hourlyWage)
}

// GrossPay salario bruto: horas normales más horas extra.
func (e Employee) GrossPay() decimal.Decimal {
	return payroll.GrossPay(e.hourlyWage, e.regularHours, e.overtimeHours)
}

// Commission comisión por contratos cerrados; cero si el empleado no comisiona.
func (e Employee) Commission() decimal.Decimal {
	return payroll.Commission(e.commissionEligible, e.commissionRate, e.closedContracts)
}

// Benefits suma de vales.
func (e Employee) Benefits() decimal.Decimal {
	return payroll.Benefits(e.mealAllowance, e.transportAllowance)
}

// TotalCost costo total para la empresa: bruto + costo fijo + beneficios.
// No incluye la comisión; ver TotalCostWithCommission.
func (e Employee) TotalCost() decimal.Decimal {
	return payroll.TotalCost(e.GrossPay(), e.fixedOverhead, e.Benefits())
}

// TotalCostWithCommission TotalCost más la comisión del periodo.
func (e Employee) TotalCostWithCommission() decimal.Decimal {
	return e.TotalCost().Add(e.Commission())
}
