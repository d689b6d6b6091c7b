package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindingRulesForm struct {
	Name    string `binding:"required,notblank"`
	Message string `binding:"required,trimmin=10"`
}

func bindingValidator(t *testing.T) *validator.Validate {
	t.Helper()
	RegisterBindingRules()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestNotBlankRejectsWhitespace(t *testing.T) {
	v := bindingValidator(t)

	err := v.Struct(bindingRulesForm{Name: "   \t", Message: "long enough message"})
	require.Error(t, err)

	violations := err.(validator.ValidationErrors)
	require.Len(t, violations, 1)
	assert.Equal(t, "notblank", violations[0].Tag())
}

func TestTrimMinCountsTrimmedRunes(t *testing.T) {
	v := bindingValidator(t)

	// 5 runes after trimming, 12 before.
	err := v.Struct(bindingRulesForm{Name: "Ada", Message: "   short    "})
	require.Error(t, err)

	violations := err.(validator.ValidationErrors)
	require.Len(t, violations, 1)
	assert.Equal(t, "trimmin", violations[0].Tag())

	assert.NoError(t, v.Struct(bindingRulesForm{Name: "Ada", Message: " exactly10c "}))
}
