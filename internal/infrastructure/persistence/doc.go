// Package persistence provides the GORM implementation of the key catalog.
// It supports sqlite (file or in-memory) and PostgreSQL and never stores key bytes,
// only which algorithm and role a key file on disk belongs to.
package persistence
