// Package ficha lee desde archivo (YAML, JSON, TOML o env) la ficha de un producto
// y de un empleado. Las claves siguen los formularios en portugués:
//
//	produto:
//	  codigo: "001"
//	  preco: 5.99
//	funcionario:
//	  nome: Marta
//	  salario_hora: 50
package ficha

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jhoicas/costos-inventario/internal/application/dto"
)

// Claves raíz del archivo.
const (
	KeyProduct  = "produto"
	KeyEmployee = "funcionario"
)

// Ficha contenido del archivo. Cualquiera de las dos secciones puede faltar.
type Ficha struct {
	Product  *dto.ProductRequest
	Employee *dto.EmployeeRequest
}

// Read lee el archivo en path. El formato se deduce de la extensión.
func Read(path string) (*Ficha, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("ficha: leer %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Ficha, error) {
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decimalHook,
		timeHook,
	))

	out := &Ficha{}
	if v.IsSet(KeyProduct) {
		var p dto.ProductRequest
		if err := v.UnmarshalKey(KeyProduct, &p, hook); err != nil {
			return nil, fmt.Errorf("ficha: %s: %w", KeyProduct, err)
		}
		out.Product = &p
	}
	if v.IsSet(KeyEmployee) {
		var e dto.EmployeeRequest
		if err := v.UnmarshalKey(KeyEmployee, &e, hook); err != nil {
			return nil, fmt.Errorf("ficha: %s: %w", KeyEmployee, err)
		}
		out.Employee = &e
	}
	if out.Product == nil && out.Employee == nil {
		return nil, fmt.Errorf("ficha: se esperaba %q o %q", KeyProduct, KeyEmployee)
	}
	return out, nil
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHook convierte números y textos a decimal.Decimal.
func decimalHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}
	switch n := data.(type) {
	case string:
		return decimal.NewFromString(n)
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	default:
		return data, nil
	}
}

var timeType = reflect.TypeOf(time.Time{})

// timeHook acepta fecha y hora RFC3339 o solo fecha (2006-01-02, medianoche UTC).
func timeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if to != timeType || !ok {
		return data, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
