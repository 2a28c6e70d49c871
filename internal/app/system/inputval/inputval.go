// internal/app/system/inputval/inputval.go

// Package inputval validates request input structs using
// go-playground/validator struct tags. Fields carry an optional `label`
// tag used to build the user-facing message, so handlers can surface the
// first failure without translating validator internals.
package inputval

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validator instances are designed to be shared; one per process.
var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report the label tag (falling back to the field name) in errors.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
}

// Result collects validation failures for one input struct.
type Result struct {
	messages []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.messages) > 0 }

// First returns the first failure message, or "".
func (r Result) First() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[0]
}

// All returns every failure message.
func (r Result) All() []string { return r.messages }

// Validate runs the struct's validate tags and converts failures into
// plain messages.
func Validate(input interface{}) Result {
	err := validate.Struct(input)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{messages: []string{"invalid input"}}
	}

	var res Result
	for _, fe := range verrs {
		res.messages = append(res.messages, message(fe))
	}
	return res
}

func message(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	default:
		return fmt.Sprintf("%s is invalid", strings.ToLower(name))
	}
}
