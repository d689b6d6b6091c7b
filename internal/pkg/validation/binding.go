package validation

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var bindingRulesOnce sync.Once

// RegisterBindingRules installs the trim-aware rules on gin's binding
// validator. notblank rejects values that are empty after trimming and
// trimmin=N applies a minimum length to the trimmed value. Safe to call
// more than once.
func RegisterBindingRules() {
	bindingRulesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("trimmin", trimMin)
	})
}

func notBlank(fl validator.FieldLevel) bool {
	return !IsBlank(fl.Field().String())
}

func trimMin(fl validator.FieldLevel) bool {
	floor, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= floor
}
