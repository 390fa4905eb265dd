// report imprime las cifras derivadas de un producto y de un empleado descritos en un archivo.
//
// Uso: go run ./cmd/report [ruta/ficha.yaml]
// Por defecto busca ficha.yaml en el directorio actual. Ver internal/infrastructure/ficha
// para las claves aceptadas.
package main

import (
	"os"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/costos-inventario/internal/application/usecase"
	"github.com/jhoicas/costos-inventario/internal/infrastructure/ficha"
	"github.com/jhoicas/costos-inventario/internal/interfaces/cli"
	"github.com/jhoicas/costos-inventario/pkg/config"
	"github.com/jhoicas/costos-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando reporte")

	path := "ficha.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	f, err := ficha.Read(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("leer ficha")
		os.Exit(1)
	}

	stockUC := usecase.NewStockUseCase(cfg.Inventory, log)
	payrollUC := usecase.NewPayrollUseCase(cfg.Payroll, log)
	printer := cli.NewPrinter(os.Stdout, language.Und)

	failed := false
	if f.Product != nil {
		p, err := stockUC.Create(*f.Product)
		if err != nil {
			failed = true
		} else {
			printer.Product(stockUC.Summarize(p, time.Now()))
		}
	}
	if f.Employee != nil {
		e, err := payrollUC.Create(*f.Employee)
		if err != nil {
			failed = true
		} else {
			printer.Employee(payrollUC.Summarize(e))
		}
	}
	if failed {
		os.Exit(1)
	}
}
