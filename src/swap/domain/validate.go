package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	_ = v.RegisterValidation("hexaddr", func(fl validator.FieldLevel) bool {
		return common.IsHexAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		return IsPositiveAmount(fl.Field().String())
	})
	return v
}

// IsPositiveAmount reports whether s is a canonical base-unit integer greater than zero.
// s is forwarded upstream verbatim, so signs, fractions, exponents, padding and
// leading zeros are all rejected.
func IsPositiveAmount(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() || d.Exponent() < 0 {
		return false
	}
	return d.String() == s
}

func (i SwapIntent) Validate() error   { return validateStruct(i) }
func (q BalanceQuery) Validate() error { return validateStruct(q) }
func (q GasQuery) Validate() error     { return validateStruct(q) }

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "gt":
		msg = fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	case "hexaddr":
		msg = fmt.Sprintf("must be a 20-byte hex address, got %q", fe.Value())
	case "positive_amount":
		msg = fmt.Sprintf("must be a positive integer in base units, got %q", fe.Value())
	default:
		msg = fmt.Sprintf("failed %s validation", fe.Tag())
	}
	return &ValidationError{Field: fe.Field(), Message: msg}
}
