package cli

import (
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/costos-inventario/internal/application/dto"
)

// Printer escribe los resúmenes en texto, con números en el formato del idioma indicado.
type Printer struct {
	out io.Writer
	p   *message.Printer
	sep string // separador decimal del idioma
}

// NewPrinter construye el printer. Con language.Und usa pt-BR.
func NewPrinter(out io.Writer, lang language.Tag) *Printer {
	if lang == language.Und {
		lang = language.BrazilianPortuguese
	}
	p := message.NewPrinter(lang)
	sep := strings.TrimSuffix(strings.TrimPrefix(p.Sprintf("%.1f", 0.5), "0"), "5")
	return &Printer{out: out, p: p, sep: sep}
}

// Product imprime el resumen de un producto.
func (pr *Printer) Product(s dto.ProductSummary) {
	pr.p.Fprintf(pr.out, "Produto %s - %s\n", s.Code, s.Name)
	pr.p.Fprintf(pr.out, "  quantidade:     %d (min %d, max %d)\n", s.Quantity, s.MinStock, s.MaxStock)
	pr.p.Fprintf(pr.out, "  valor total:    %s\n", pr.money(s.TotalValue))
	pr.p.Fprintf(pr.out, "  estoque baixo:  %s\n", yesNo(s.LowStock))
	if s.ExpiresAt != nil {
		pr.p.Fprintf(pr.out, "  validade:       %s\n", s.ExpiresAt.Format("2006-01-02"))
	}
	pr.p.Fprintf(pr.out, "  dentro do prazo: %s\n", yesNo(s.WithinExpiry))
}

// Employee imprime el desglose de costo de un empleado.
func (pr *Printer) Employee(s dto.EmployeeCostSummary) {
	pr.p.Fprintf(pr.out, "Funcionario %d - %s\n", s.ID, s.Name)
	pr.p.Fprintf(pr.out, "  horas extras:   %s\n", pr.money(s.OvertimePay))
	pr.p.Fprintf(pr.out, "  salario bruto:  %s\n", pr.money(s.GrossPay))
	pr.p.Fprintf(pr.out, "  beneficios:     %s\n", pr.money(s.Benefits))
	pr.p.Fprintf(pr.out, "  custo total:    %s\n", pr.money(s.TotalCost))
	pr.p.Fprintf(pr.out, "  comissao:       %s\n", pr.money(s.Commission))
	pr.p.Fprintf(pr.out, "  custo + comissao: %s\n", pr.money(s.TotalCostWithCommission))
}

// money formatea con dos decimales sin pasar por float: la parte entera con el
// agrupamiento del idioma y los centavos tomados de StringFixed.
func (pr *Printer) money(d decimal.Decimal) string {
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	abs := d.Abs().Round(2)
	fixed := abs.StringFixed(2)
	cents := fixed[len(fixed)-2:]
	return sign + pr.p.Sprintf("%d", abs.IntPart()) + pr.sep + cents
}

func yesNo(b bool) string {
	if b {
		return "sim"
	}
	return "nao"
}
