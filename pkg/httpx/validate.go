package httpx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ecommerce_record_service/pkg/apperr"
)

// Validator checks request DTOs against their `validate` tags and reports
// failures keyed by JSON field name.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimals are checked as float64 so gte/lte work on them
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("max_scale", maxScale)
	_ = v.RegisterValidation("max_int_digits", maxIntDigits)
	return &Validator{v: v}
}

// maxScale rejects decimals with more fractional digits than the param.
func maxScale(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	return d.Equal(d.Truncate(int32(places)))
}

// maxIntDigits rejects decimals with more integer digits than the param.
func maxIntDigits(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	digits, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	return d.Abs().LessThan(decimal.New(1, int32(digits)))
}

// decimalField reads the decimal straight off the parent struct, since the
// registered type func has already turned fl.Field() into a float64.
func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	f := reflect.Indirect(reflect.Indirect(fl.Parent()).FieldByName(fl.StructFieldName()))
	if !f.IsValid() {
		return decimal.Decimal{}, false
	}
	d, ok := f.Interface().(decimal.Decimal)
	return d, ok
}

// Struct returns nil or an *apperr.ValidationError.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &apperr.ValidationError{Fields: map[string]string{"body": err.Error()}}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = describe(fe)
	}
	return &apperr.ValidationError{Fields: fields}
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max_scale":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	case "max_int_digits":
		return fmt.Sprintf("must have at most %s digits before the decimal point", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "failed on " + fe.Tag()
	}
}
