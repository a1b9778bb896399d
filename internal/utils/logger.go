package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Log levels
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	DEBUG = "DEBUG"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger struct
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// getDefaultLogFilePath returns the default log file path
func getDefaultLogFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}
	logDir := filepath.Join(homeDir, ".linkedlist")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}
	return filepath.Join(logDir, "linkedlist.log")
}

// New creates a standalone logger writing every level to out.
// Debug lines are dropped unless debugMode is set.
func New(out io.Writer, debugMode bool) *Logger {
	debugWriter := io.Discard
	if debugMode {
		debugWriter = out
	}
	return newLogger(out, debugWriter)
}

func newLogger(out, debugOut io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(out, "["+INFO+"] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(out, "["+WARN+"] ", log.Ldate|log.Ltime),
		errorLogger: log.New(out, "["+ERROR+"] ", log.Ldate|log.Ltime),
		debugLogger: log.New(debugOut, "["+DEBUG+"] ", log.Ldate|log.Ltime),
	}
}

// NewLogger creates the process wide logger (singleton). Output goes to the
// log file and the console; debug output reaches the console only in debug mode.
func NewLogger(logFilePath string, debugMode bool) *Logger {
	once.Do(func() {
		if logFilePath == "" {
			logFilePath = getDefaultLogFilePath()
		}

		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}

		multiWriter := io.MultiWriter(file, os.Stdout)

		var debugWriter io.Writer = file
		if debugMode {
			debugWriter = multiWriter
		}
		instance = newLogger(multiWriter, debugWriter)
	})
	return instance
}

// GetLogger retrieves the singleton logger instance
func GetLogger() *Logger {
	if instance == nil {
		log.Fatalf("Logger has not been initialized. Call NewLogger() first.")
	}
	return instance
}

// Logging methods
func (l *Logger) Info(message string) {
	l.infoLogger.Println(message)
}

func (l *Logger) Warn(message string) {
	l.warnLogger.Println(message)
}

func (l *Logger) Error(message string) {
	l.errorLogger.Println(message)
}

func (l *Logger) Debug(message string) {
	l.debugLogger.Println(message)
}
