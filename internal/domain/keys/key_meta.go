package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textseal/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// KeyMeta describes a key artifact written to disk. It never holds key bytes;
// it records which algorithm and role a key file belongs to.
type KeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,signformat"`
	Type            string    `validate:"required,oneof=symmetric private public"`
	FilePath        string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyMeta struct
func (k *KeyMeta) Validate() error {
	return validateStruct(k)
}

// KeyQuery filters and orders catalog listings
type KeyQuery struct {
	Algorithm       string    `validate:"omitempty,signformat"`
	Type            string    `validate:"omitempty,oneof=symmetric private public"`
	DateTimeCreated time.Time `validate:"omitempty"`
	Limit           int       `validate:"omitempty,gte=0"`
	Offset          int       `validate:"omitempty,gte=0"`
	SortBy          string    `validate:"omitempty,oneof=id algorithm type date_time_created"`
	SortOrder       string    `validate:"omitempty,oneof=asc desc"`
}

// NewKeyQuery creates a KeyQuery with default values
func NewKeyQuery() *KeyQuery {
	return &KeyQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating KeyQuery struct
func (q *KeyQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
	validate := validator.New()
	if err := validate.RegisterValidation("signformat", validators.SignFormatValidation); err != nil {
		return fmt.Errorf("failed to register validation: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
