package dto

import (
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs domain validators on gin's binding engine.
// Call once at startup, before serving requests.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
			return domain.PaymentMethod(fl.Field().String()).IsValid()
		})
	}
}
