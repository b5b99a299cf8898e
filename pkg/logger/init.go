package logger

import (
	"os"
)

// Init initializes the global logger from the LOG_LEVEL environment variable,
// defaulting to INFO.
func Init() {
	InitWithString(os.Getenv("LOG_LEVEL"))
}

// InitWithString initializes the global logger with a string level
func InitWithString(levelStr string) {
	SetLogLevelFromString(levelStr)
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return enabled(DEBUG)
}
