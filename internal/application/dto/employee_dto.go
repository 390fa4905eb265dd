package dto

import "github.com/shopspring/decimal"

// EmployeeRequest entrada para crear un empleado. Los punteros nil toman los valores configurados.
type EmployeeRequest struct {
	Name               string           `json:"name" mapstructure:"nome"`
	ID                 int              `json:"id" mapstructure:"matricula"`
	HourlyWage         *decimal.Decimal `json:"hourly_wage,omitempty" mapstructure:"salario_hora"`
	RegularHours       *decimal.Decimal `json:"regular_hours,omitempty" mapstructure:"horas_trabalhadas"`
	OvertimeHours      *decimal.Decimal `json:"overtime_hours,omitempty" mapstructure:"horas_extras"`
	FixedOverhead      *decimal.Decimal `json:"fixed_overhead,omitempty" mapstructure:"custo_empregador"`
	CommissionEligible *bool            `json:"commission_eligible,omitempty" mapstructure:"tem_comissao"`
	CommissionRate     *decimal.Decimal `json:"commission_rate,omitempty" mapstructure:"valor_comissao"`
	ClosedContracts    int              `json:"closed_contracts" mapstructure:"contratos_fechados"`
	MealAllowance      *decimal.Decimal `json:"meal_allowance,omitempty" mapstructure:"vale_refeicao"`
	TransportAllowance *decimal.Decimal `json:"transport_allowance,omitempty" mapstructure:"vale_transporte"`
}

// EmployeeCostSummary desglose del costo laboral de un empleado.
type EmployeeCostSummary struct {
	Name                    string          `json:"name"`
	ID                      int             `json:"id"`
	OvertimePay             decimal.Decimal `json:"overtime_pay"`
	GrossPay                decimal.Decimal `json:"gross_pay"`
	Commission              decimal.Decimal `json:"commission"`
	Benefits                decimal.Decimal `json:"benefits"`
	TotalCost               decimal.Decimal `json:"total_cost"` // sin comisión
	TotalCostWithCommission decimal.Decimal `json:"total_cost_with_commission"`
}
