// Package models contains the GORM database models of the key catalog.
// They are kept apart from the domain entities so that storage tags stay out of the domain layer.
package models
