package service

import "github.com/go-playground/validator/v10"

// validate holds the cached struct and tag metadata; safe for concurrent use.
var validate = validator.New()

func isEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}
