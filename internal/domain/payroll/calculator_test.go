package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/costos-inventario/internal/domain/payroll"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestOvertimePay(t *testing.T) {
	cases := []struct {
		hours, wage, want string
	}{
		{"10", "50", "750"},
		{"0", "50", "0"},
		{"2.5", "20", "75"},
	}
	for _, tc := range cases {
		got := payroll.OvertimePay(d(tc.hours), d(tc.wage))
		assert.Truef(t, d(tc.want).Equal(got), "horas=%s valor=%s: esperado %s, obtenido %s", tc.hours, tc.wage, tc.want, got)
	}
}

func TestGrossPay(t *testing.T) {
	got := payroll.GrossPay(d("50"), d("160"), d("10"))
	assert.True(t, d("8750").Equal(got), got.String())
}

func TestCommission(t *testing.T) {
	assert.True(t, d("600").Equal(payroll.Commission(true, d("200"), 3)))
	assert.True(t, payroll.Commission(false, d("200"), 5).IsZero())
	assert.True(t, payroll.Commission(true, d("200"), 0).IsZero())
}

func TestTotalCost_SinComision(t *testing.T) {
	got := payroll.TotalCost(d("8375"), d("1500"), payroll.Benefits(d("300"), d("200")))
	assert.True(t, d("10375").Equal(got), got.String())
}
