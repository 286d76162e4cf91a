package commons

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "radagast/internal/errors"
)

// NewValidator builds the shared validator. Field names in validation
// details come from the json tag, not the Go field name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body, reporting malformed or empty bodies
// as validation errors.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
	}
	return nil
}

// ValidateStruct runs the validator and maps its findings onto field-level
// validation details.
func ValidateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewInternalError("validating request", err)
	}

	details := make([]apperrors.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperrors.ValidationDetail{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the %q rule", fe.Tag()),
		})
	}
	return apperrors.NewValidationError("validation failed", details...)
}

// URLUUID parses a uuid path parameter.
func URLUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("invalid "+name, apperrors.ValidationDetail{
			Field:   name,
			Message: name + " must be a valid uuid",
		})
	}
	return id, nil
}

// ParseIDList parses a comma-separated id list from a path segment.
func ParseIDList(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, apperrors.NewValidationError("parameter ids is required", apperrors.ValidationDetail{
			Field:   "ids",
			Message: "ids must be a comma-separated list of uuids",
		})
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, apperrors.NewValidationError("invalid id in list", apperrors.ValidationDetail{
				Field:   "ids",
				Message: fmt.Sprintf("%q is not a valid uuid", strings.TrimSpace(part)),
			})
		}
		ids = append(ids, id)
	}
	return ids, nil
}
