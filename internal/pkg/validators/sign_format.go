// Package validators holds custom go-playground/validator rules.
package validators

import (
	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/go-playground/validator/v10"
)

// SignFormatValidation accepts the names of supported signing formats (blake3, ed25519).
func SignFormatValidation(fl validator.FieldLevel) bool {
	_, err := textcrypto.ParseSignFormat(fl.Field().String())
	return err == nil
}
