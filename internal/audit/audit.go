// Package audit records mutating operations (focus mode toggles, block list
// changes, imports) as JSON lines for later review.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EventType represents the type of audit event
type EventType string

const (
	EventBlockEnabled  EventType = "BLOCK_ENABLED"
	EventBlockDisabled EventType = "BLOCK_DISABLED"
	EventListChanged   EventType = "LIST_CHANGED"
	EventRulesImported EventType = "RULES_IMPORTED"
)

// Event represents an audit log entry
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	Type      EventType              `json:"type"`
	Severity  string                 `json:"severity"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	ProcessID int                    `json:"process_id"`
}

// Logger handles audit logging
type Logger struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Initialize sets up the audit logger in the given directory. One log file
// per day, append-only.
func Initialize(dir string) error {
	var err error
	once.Do(func() {
		if mkErr := os.MkdirAll(dir, 0700); mkErr != nil {
			err = mkErr
			return
		}

		logFile := fmt.Sprintf("audit-%s.log", time.Now().Format("2006-01-02"))
		file, openErr := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if openErr != nil {
			err = openErr
			return
		}

		defaultLogger = &Logger{
			file:    file,
			encoder: json.NewEncoder(file),
		}
	})

	return err
}

// Log records an audit event. When the logger is not initialized the event
// degrades to a regular log line instead of being lost.
func Log(eventType EventType, severity string, message string, details map[string]interface{}) {
	if defaultLogger == nil {
		logrus.WithFields(logrus.Fields{
			"audit_type": eventType,
			"details":    details,
		}).Info(message)
		return
	}

	event := Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Severity:  severity,
		Message:   message,
		Details:   details,
		ProcessID: os.Getpid(),
	}

	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	if err := defaultLogger.encoder.Encode(&event); err != nil {
		logrus.WithError(err).Warn("Failed to write audit event")
	}
}

// Close flushes and closes the audit log file.
func Close() {
	if defaultLogger == nil {
		return
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.file.Close()
}
