package helper

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator reports field errors under their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationError maps field names to the rules they failed.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// ValidateStruct runs v.Struct and converts failures into *ValidationError.
func ValidateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := map[string][]string{}
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], ruleOf(fe))
	}
	return &ValidationError{Fields: fields}
}

func ruleOf(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}

func rulesOf(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{"invalid"}
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, ruleOf(fe))
	}
	return out
}
