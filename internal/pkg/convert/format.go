package convert

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedOutputFormat is returned for an unknown output format name.
var ErrUnsupportedOutputFormat = errors.New("unsupported output format")

// OutputFormat selects the document a CSV table is rendered to.
type OutputFormat int

const (
	JSON OutputFormat = iota
	YAML
)

func (f OutputFormat) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// ParseOutputFormat parses json or yaml, case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOutputFormat, s)
	}
}

// Set implements pflag.Value.
func (f *OutputFormat) Set(s string) error {
	parsed, err := ParseOutputFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *OutputFormat) Type() string {
	return "output-format"
}
