package records

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"alkhair/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateInput runs the struct tag rules and turns failures into a
// *types.ValidationError naming the fields.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	verr := &types.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fe.Field())
	}
	return verr
}

func requirePositive(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &types.ValidationError{Fields: []string{field}, Reason: "must be greater than zero"}
	}
	return nil
}

func trim(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}
