package config

// Log levels accepted in logger.log_level. critical maps to the error level.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log destinations accepted in logger.log_type. Console output goes to stderr.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation defaults applied to a file logger when the config leaves them out
const (
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// Rotation bounds of a file logger
const (
	maxLogSizeMB  = 100
	maxLogBackups = 10
	maxLogAgeDays = 365
)
