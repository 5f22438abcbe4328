package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	remPattern      = regexp.MustCompile(`^\d+(\.\d+)?rem$`)
	// Letters only, minus c, i and m: Bubble Tea reports ctrl+c as the quit
	// chord and ctrl+i / ctrl+m as tab and enter, and digits have no ctrl form.
	shortcutPattern = regexp.MustCompile(`^[abd-hj-ln-z]$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report yaml keys rather than Go field names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("rem", func(fl validator.FieldLevel) bool {
			return remPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("shortcut_key", func(fl validator.FieldLevel) bool {
			return shortcutPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
