package api

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validatePositive проверяет, что целочисленное поле строго больше нуля. В отличие от gt=0 не пропускает
// поле другого типа.
func validatePositive(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() > 0
	default:
		return false
	}
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("positive", validatePositive); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
