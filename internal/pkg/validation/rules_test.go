package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCategoryRule(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterRules(v))

	type request struct {
		Category string `validate:"required,filtercategory"`
	}

	assert.NoError(t, v.Struct(request{Category: "paymentAmount"}))

	err := v.Struct(request{Category: "color"})
	require.Error(t, err)
	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, TagFilterCategory, fieldErrs[0].Tag())
}

func TestRegisterBindingRules(t *testing.T) {
	assert.NoError(t, RegisterBindingRules())
}
