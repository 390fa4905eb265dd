package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/costos-inventario/internal/application/dto"
	"github.com/jhoicas/costos-inventario/internal/domain/entity"
	"github.com/jhoicas/costos-inventario/pkg/config"
	"github.com/jhoicas/costos-inventario/pkg/logger"
)

// PayrollUseCase alta de empleados y desglose de su costo laboral.
type PayrollUseCase struct {
	cfg config.PayrollConfig
	log *logger.Logger
}

// NewPayrollUseCase construye el caso de uso.
func NewPayrollUseCase(cfg config.PayrollConfig, log *logger.Logger) *PayrollUseCase {
	return &PayrollUseCase{cfg: cfg, log: log}
}

// Create valida y construye el empleado. Valor hora, costo fijo y comisión no indicados
// se toman de la configuración.
func (uc *PayrollUseCase) Create(in dto.EmployeeRequest) (entity.Employee, error) {
	eligible := uc.cfg.CommissionEligible
	if in.CommissionEligible != nil {
		eligible = *in.CommissionEligible
	}
	e, err := entity.NewEmployee(entity.EmployeeParams{
		Name:               in.Name,
		ID:                 in.ID,
		HourlyWage:         withDefault(in.HourlyWage, uc.cfg.HourlyWage),
		RegularHours:       in.RegularHours,
		OvertimeHours:      in.OvertimeHours,
		FixedOverhead:      withDefault(in.FixedOverhead, uc.cfg.FixedOverhead),
		CommissionEligible: &eligible,
		CommissionRate:     withDefault(in.CommissionRate, uc.cfg.CommissionRate),
		ClosedContracts:    in.ClosedContracts,
		MealAllowance:      in.MealAllowance,
		TransportAllowance: in.TransportAllowance,
	})
	if err != nil {
		uc.log.Warn().Err(err).Int("employee_id", in.ID).Msg("empleado rechazado")
		return entity.Employee{}, err
	}
	return e, nil
}

// Summarize desglose del costo laboral. TotalCost excluye la comisión.
func (uc *PayrollUseCase) Summarize(e entity.Employee) dto.EmployeeCostSummary {
	out := dto.EmployeeCostSummary{
		Name:                    e.Name(),
		ID:                      e.ID(),
		OvertimePay:             e.OvertimePay(),
		GrossPay:                e.GrossPay(),
		Commission:              e.Commission(),
		Benefits:                e.Benefits(),
		TotalCost:               e.TotalCost(),
		TotalCostWithCommission: e.TotalCostWithCommission(),
	}
	uc.log.Debug().
		Int("employee_id", out.ID).
		Str("gross_pay", out.GrossPay.String()).
		Str("total_cost", out.TotalCost.String()).
		Msg("costo laboral calculado")
	return out
}

func withDefault(v *decimal.Decimal, def decimal.Decimal) *decimal.Decimal {
	if v != nil {
		return v
	}
	return &def
}
