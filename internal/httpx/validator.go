package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookreview/internal/platform/apperr"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report json names ("title") rather than Go field names ("Title").
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

func label(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func messageFor(fe validator.FieldError) string {
	name := label(fe.Field())
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters long", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s cannot exceed %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", name, fe.Param())
	case "alphanum":
		return fmt.Sprintf("%s must only contain alphanumeric characters", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// ValidateStruct runs the validate tags on s and returns one detail per
// violated constraint, in field order.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, ErrorDetail{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return details
}

// DecodeAndValidate decodes a JSON body into dst, applies its mod and default
// tags, and validates it. A bad body yields an apperr validation error whose
// message is the first violated constraint.
func DecodeAndValidate(r *http.Request, dst interface{}) ([]ErrorDetail, error) {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &typeErr):
			msg := fmt.Sprintf("%s is invalid", label(typeErr.Field))
			switch typeErr.Type.Kind() {
			case reflect.Int, reflect.Int64, reflect.Int32, reflect.Ptr:
				msg = fmt.Sprintf("%s must be an integer", label(typeErr.Field))
			case reflect.String:
				msg = fmt.Sprintf("%s must be a string", label(typeErr.Field))
			}
			return nil, apperr.Validation(msg)
		case errors.As(err, &maxErr):
			return nil, apperr.Validation("Request body too large")
		case errors.Is(err, io.EOF):
			return nil, apperr.Validation("Request body is required")
		default:
			return nil, apperr.Validation("Invalid request body")
		}
	}

	if err := normalize(r.Context(), dst); err != nil {
		return nil, err
	}

	if details := ValidateStruct(dst); len(details) > 0 {
		return details, apperr.Validation(details[0].Message)
	}
	return nil, nil
}
