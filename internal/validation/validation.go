package validation

import (
	"github.com/go-playground/validator/v10"
)

// package-wide validator instance; custom tags are registered in init()
// of custom_tag.go so every package sees the same tag set.
var validate = validator.New()

func MustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func MustRegisterAlias(tag string, alias string) {
	validate.RegisterAlias(tag, alias)
}

// Var reports whether a single value passes the given tag.
func Var(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}
