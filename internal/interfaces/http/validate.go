package http

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate valida la forma de los cuerpos de entrada (campos requeridos,
// rangos numéricos) antes de que el comando llegue a los casos de uso, que
// asumen entradas bien formadas.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// decimal.Decimal no es un tipo numérico nativo para el validador;
	// se registra como float64 para que gt/gte funcionen sobre price.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}
