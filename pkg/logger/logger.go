package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

var (
	mu           sync.RWMutex
	currentLevel = INFO
	debugLogger  *log.Logger
	infoLogger   *log.Logger
	warnLogger   *log.Logger
	errorLogger  *log.Logger
)

func init() {
	debugLogger = log.New(os.Stdout, "[DEBUG] ", log.LstdFlags)
	infoLogger = log.New(os.Stdout, "[INFO] ", log.LstdFlags)
	warnLogger = log.New(os.Stdout, "[WARN] ", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "[ERROR] ", log.LstdFlags)
}

// SetOutput redirects every level to w. Mostly useful in tests.
func SetOutput(w io.Writer) {
	debugLogger.SetOutput(w)
	infoLogger.SetOutput(w)
	warnLogger.SetOutput(w)
	errorLogger.SetOutput(w)
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	mu.Lock()
	currentLevel = level
	mu.Unlock()
}

// ParseLevel maps a level name (case-insensitive) to a LogLevel.
func ParseLevel(levelStr string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", levelStr)
	}
}

// SetLogLevelFromString sets the global log level from a string, falling back to INFO.
func SetLogLevelFromString(levelStr string) {
	level, _ := ParseLevel(levelStr)
	SetLogLevel(level)
}

// GetLogLevel returns the current log level
func GetLogLevel() LogLevel {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

func enabled(level LogLevel) bool {
	return GetLogLevel() <= level
}

// Debug logs a debug message if debug level is enabled
func Debug(format string, v ...interface{}) {
	if enabled(DEBUG) {
		debugLogger.Printf(format, v...)
	}
}

// Info logs an info message if info level is enabled
func Info(format string, v ...interface{}) {
	if enabled(INFO) {
		infoLogger.Printf(format, v...)
	}
}

// Warn logs a warning message if warn level is enabled
func Warn(format string, v ...interface{}) {
	if enabled(WARN) {
		warnLogger.Printf(format, v...)
	}
}

// Error logs an error message if error level is enabled
func Error(format string, v ...interface{}) {
	if enabled(ERROR) {
		errorLogger.Printf(format, v...)
	}
}

// Resty adapts the package logger to resty's Logger interface.
type Resty struct{}

func (Resty) Debugf(format string, v ...interface{}) { Debug(format, v...) }
func (Resty) Warnf(format string, v ...interface{})  { Warn(format, v...) }
func (Resty) Errorf(format string, v ...interface{}) { Error(format, v...) }
