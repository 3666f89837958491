package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var nicRe = regexp.MustCompile(`^\d{9}[vVxX]$|^\d{12}$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	// national identity card: old 9 digits + letter, or new 12 digits
	_ = v.RegisterValidation("nic", func(fl validator.FieldLevel) bool {
		return nicRe.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
