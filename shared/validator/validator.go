package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"friendlydate/shared/datefmt"
	"friendlydate/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const maxSeparatorRunes = 3

var validate *val.Validate

func registerFormatCodeValidation(field val.FieldLevel) bool {
	_, ok := datefmt.ParseFormatCode(field.Field().String())

	return ok
}

func registerTimezoneModeValidation(field val.FieldLevel) bool {
	switch datefmt.TimezoneMode(field.Field().String()) {
	case datefmt.TimezoneDevice, datefmt.TimezoneUTC, datefmt.TimezoneLocal:
		return true
	default:
		return false
	}
}

func registerSeparatorValidation(field val.FieldLevel) bool {
	sep := field.Field().String()
	if utf8.RuneCountInString(sep) > maxSeparatorRunes {
		return false
	}

	for _, r := range sep {
		if !unicode.IsPrint(r) {
			return false
		}
	}

	return true
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validations := map[string]val.Func{
		"formatcode": registerFormatCodeValidation,
		"tzmode":     registerTimezoneModeValidation,
		"separator":  registerSeparatorValidation,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
