package controllers

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"bonded-wms/types"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// newValidator teaches the validator about dates and decimals. A zero date
// counts as missing; decimals are checked as their string form so that an
// explicit 0 still satisfies required.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d := field.Interface().(types.Date)
		if d.IsZero() {
			return nil
		}
		return d.Time
	}, types.Date{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return field.Interface().(decimal.Decimal).String()
	}, decimal.Decimal{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d := field.Interface().(decimal.NullDecimal)
		if !d.Valid {
			return nil
		}
		return d.Decimal.String()
	}, decimal.NullDecimal{})

	_ = v.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
	// digits=P_S limits a decimal to P digits of which S follow the point,
	// the shape of a DECIMAL(P,S) column.
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		precision, scale, err := parseDigits(fl.Param())
		if err != nil {
			panic(err)
		}
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && decimalFits(d, precision, scale)
	})
	return v
}

func parseDigits(param string) (int, int, error) {
	p, s, ok := strings.Cut(param, "_")
	if !ok {
		return 0, 0, fmt.Errorf("digits param %q must look like 12_2", param)
	}
	precision, err := strconv.Atoi(p)
	if err != nil {
		return 0, 0, fmt.Errorf("digits param %q: %w", param, err)
	}
	scale, err := strconv.Atoi(s)
	if err != nil || scale > precision {
		return 0, 0, fmt.Errorf("digits param %q: bad scale", param)
	}
	return precision, scale, nil
}

// decimalFits reports whether d has at most precision-scale whole digits
// and at most scale decimal places. Trailing zeros after the point do not
// count.
func decimalFits(d decimal.Decimal, precision, scale int) bool {
	whole, frac, _ := strings.Cut(d.Abs().String(), ".")
	whole = strings.TrimLeft(whole, "0")
	return len(whole) <= precision-scale && len(frac) <= scale
}

func validateStruct(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, fieldMessage(e))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "nonnegative":
		return e.Field() + " must not be negative"
	case "digits":
		precision, scale, _ := parseDigits(e.Param())
		return fmt.Sprintf("%s must have at most %d digits with at most %d decimal places", e.Field(), precision, scale)
	}
	return fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag())
}
