package config

// Supported key catalog database types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)
