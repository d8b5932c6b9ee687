// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()

		// report json names in error paths
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
			}
			return name
		})

		// decimals validate as float64 so min/max/gte work
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})

		validate = v
	})
	return validate
}

// Normalizer lets a DTO trim or default its fields before validation.
type Normalizer interface {
	Normalize()
}

// AnyFieldChecker is implemented by partial-update DTOs.
type AnyFieldChecker interface {
	HasAnyField() bool
}

/* ===============================
   Typed request pipeline
=================================*/

// BindBody parses, normalizes and validates the JSON body into T.
func BindBody[T any](c *fiber.Ctx) (T, error) {
	var req T
	if err := c.BodyParser(&req); err != nil {
		return req, NewValidationError("body", "Invalid request body")
	}
	return finish(req)
}

// BindQuery parses, normalizes and validates the query string into T.
func BindQuery[T any](c *fiber.Ctx) (T, error) {
	var req T
	if err := c.QueryParser(&req); err != nil {
		return req, NewValidationError("query", "Invalid query parameters")
	}
	return finish(req)
}

// BindUpdate is BindBody plus the "at least one field" rule.
func BindUpdate[T AnyFieldChecker](c *fiber.Ctx) (T, error) {
	req, err := BindBody[T](c)
	if err != nil {
		return req, err
	}
	if err := RequireAnyField(req); err != nil {
		return req, err
	}
	return req, nil
}

func RequireAnyField(req AnyFieldChecker) error {
	if !req.HasAnyField() {
		return NewValidationError("body", "At least one field must be provided")
	}
	return nil
}

func finish[T any](req T) (T, error) {
	if n, ok := any(&req).(Normalizer); ok {
		n.Normalize()
	}
	if err := ValidateStruct(req); err != nil {
		return req, err
	}
	return req, nil
}

// ValidateStruct runs the shared validator and converts failures into a
// *ValidationError with one entry per field.
func ValidateStruct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Path:    fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min", "gte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("%s must have at least %s items", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must match the format %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
	}
}
