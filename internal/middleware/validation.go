package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/technova/placement/internal/pkg/validation"
)

// RegisterValidators installs the custom binding rules on gin's validator
// and makes field errors report JSON or form names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return v.RegisterValidation("branch", func(fl validator.FieldLevel) bool {
		return validation.IsValidBranch(fl.Field().String())
	})
}
