package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/grantsphere/internal/catalog"
)

// Validation limits
const (
	// QueryMaxLength bounds the search text
	QueryMaxLength = 200

	// OptionMaxLength bounds a single filter option value
	OptionMaxLength = 200
)

// TagFilterCategory validates a filter category key
const TagFilterCategory = "filtercategory"

// RegisterRules adds the catalog validation tags to v
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation(TagFilterCategory, validateFilterCategory)
}

// RegisterBindingRules adds the catalog validation tags to gin's binding
// validator
func RegisterBindingRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterRules(v)
}

func validateFilterCategory(fl validator.FieldLevel) bool {
	_, err := catalog.ParseCategory(fl.Field().String())
	return err == nil
}
