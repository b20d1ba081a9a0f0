package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// HTTPSettings holds the settings of the static file server
type HTTPSettings struct {
	Dir          string   `mapstructure:"dir" validate:"required,dir"`
	Port         int      `mapstructure:"port" validate:"gte=0,lte=65535"`
	AllowOrigins []string `mapstructure:"allow_origins" validate:"dive,required"`
}

// Validate checks that all fields in HTTPSettings are valid
func (s *HTTPSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for HTTPSettings: %w", err)
	}

	return nil
}
