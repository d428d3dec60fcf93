package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// amountGreaterThanZero implements the `amountgt0` binding rule for
// decimal.Decimal fields. Monetary amounts must be strictly positive;
// their sign is carried by the transaction kind, never the amount.
func amountGreaterThanZero(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return amount.GreaterThan(decimal.Zero)
}

// RegisterCustomValidations installs the application's custom binding
// rules on gin's validator engine. Call once at startup before serving.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("amountgt0", amountGreaterThanZero)
}
