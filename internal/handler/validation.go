package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs custom binding rules on gin's validator
// engine. Call once at startup before serving requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("phone", validPhone)
}

// validPhone accepts local phone numbers: digits only, 9 to 11 long, with
// an optional leading +.
func validPhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if len(phone) > 0 && phone[0] == '+' {
		phone = phone[1:]
	}
	if len(phone) < 9 || len(phone) > 11 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
