// Package convert turns CSV input into JSON or YAML documents.
package convert
