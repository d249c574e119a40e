package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// LogManager handles structured logging to the console and a per-run log file
type LogManager struct {
	logFile     *os.File
	logger      *slog.Logger
	level       *slog.LevelVar
	logsDir     string
	logFilePath string
}

// NewLogManager creates a log manager writing to stdout and logs/<timestamp>.log.
// If the file cannot be created it falls back to console-only output.
func NewLogManager(logsDir string, debug bool) *LogManager {
	lm := &LogManager{
		level:   new(slog.LevelVar),
		logsDir: logsDir,
	}
	lm.SetDebug(debug)

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Printf("Warning: Failed to create logs directory: %v\n", err)
		lm.logger = newTextLogger(os.Stdout, lm.level)
		return lm
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	lm.logFilePath = filepath.Join(logsDir, fmt.Sprintf("mediahotkeys_%s.log", timestamp))

	file, err := os.OpenFile(lm.logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("Warning: Failed to open log file: %v\n", err)
		lm.logFilePath = ""
		lm.logger = newTextLogger(os.Stdout, lm.level)
		return lm
	}
	lm.logFile = file
	lm.logger = newTextLogger(io.MultiWriter(os.Stdout, file), lm.level)

	lm.LogInfo("Log file created", "path", lm.logFilePath)
	return lm
}

// newWriterLogManager builds a log manager over an arbitrary writer, without a log file
func newWriterLogManager(w io.Writer, debug bool) *LogManager {
	lm := &LogManager{level: new(slog.LevelVar)}
	lm.SetDebug(debug)
	lm.logger = newTextLogger(w, lm.level)
	return lm
}

func newTextLogger(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetDebug toggles debug-level output
func (lm *LogManager) SetDebug(debug bool) {
	if debug {
		lm.level.Set(slog.LevelDebug)
	} else {
		lm.level.Set(slog.LevelInfo)
	}
}

// Logger exposes the underlying slog logger
func (lm *LogManager) Logger() *slog.Logger {
	return lm.logger
}

// LogDebug logs a debug message
func (lm *LogManager) LogDebug(message string, keyValuePairs ...any) {
	lm.logger.Debug(message, keyValuePairs...)
}

// LogInfo logs an informational message
func (lm *LogManager) LogInfo(message string, keyValuePairs ...any) {
	lm.logger.Info(message, keyValuePairs...)
}

// LogWarning logs a warning message
func (lm *LogManager) LogWarning(message string, keyValuePairs ...any) {
	lm.logger.Warn(message, keyValuePairs...)
}

// LogError logs an error message
func (lm *LogManager) LogError(message string, err error, keyValuePairs ...any) {
	if err != nil {
		keyValuePairs = append([]any{"error", err}, keyValuePairs...)
	}
	lm.logger.Error(message, keyValuePairs...)
}

// LogDispatch logs a dispatched media action
func (lm *LogManager) LogDispatch(action MediaAction, target TargetMode, keyValuePairs ...any) {
	lm.LogDebug("Media action dispatched", append([]any{"action", action.String(), "target", target.String()}, keyValuePairs...)...)
}

// GetLogFilePath returns the current log file path, empty when logging to console only
func (lm *LogManager) GetLogFilePath() string {
	return lm.logFilePath
}

// LogsDir returns the directory holding log files
func (lm *LogManager) LogsDir() string {
	return lm.logsDir
}

// ListLogFiles returns all log files in the logs directory
func (lm *LogManager) ListLogFiles() ([]string, error) {
	return filepath.Glob(filepath.Join(lm.logsDir, "mediahotkeys_*.log"))
}

// Close closes the log file
func (lm *LogManager) Close() {
	if lm.logFile != nil {
		lm.LogInfo("Closing log file")
		lm.logFile.Close()
		lm.logFile = nil
	}
}
