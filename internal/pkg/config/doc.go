// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file, overridden by TEXTSEAL_* environment
// variables and validated before use. Only logging and the key catalog database are
// configurable; algorithm choice is always a per-call flag.
package config
