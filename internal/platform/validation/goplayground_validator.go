package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// TagMaxBytes limits a string by its encoded length, e.g. maxbytes=72.
	TagMaxBytes = "maxbytes"

	MsgInvalidEmail      = "Please enter a valid email address"
	MsgPasswordsMismatch = "Passwords don't match"
)

var _ Validator = (*GoPlaygroundValidator)(nil)

type GoPlaygroundValidator struct {
	v *validator.Validate
}

func NewGoPlaygroundValidator() *GoPlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// register function to get tag name from json tags.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(TagMaxBytes, maxBytes); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", TagMaxBytes, err))
	}

	return &GoPlaygroundValidator{
		v: v,
	}
}

// ValidateStruct checks every field of s and collects all violations.
func (va *GoPlaygroundValidator) ValidateStruct(s any) map[string][]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return map[string][]string{"": {err.Error()}}
	}

	errMap := make(map[string][]string, len(valErrs))
	for _, e := range valErrs {
		path := fieldPath(e)
		errMap[path] = append(errMap[path], validationMessage(e))
	}

	return errMap
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return len(field.String()) <= limit
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return e.Field()
}

func validationMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return MsgInvalidEmail
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case TagMaxBytes:
		return fmt.Sprintf("%s must be at most %s bytes long", field, e.Param())
	case "eqfield":
		return MsgPasswordsMismatch
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
