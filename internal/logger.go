package internal

import (
	"fmt"
	"log"
	"time"

	"paybox/entity"
	"paybox/services"
)

type importance string

const (
	levelInfo    importance = " "
	levelWarning importance = "?"
	levelError   importance = "!"
)

// Logger writes log lines to stdout and, when a database is attached,
// stores them in the payment log collection. Writing happens on a
// dedicated goroutine so callers never block on the database.
type Logger struct {
	module    string
	debugMode bool
	database  services.Database
	writer    chan *logEvent
}

type logEvent struct {
	level importance
	text  string
}

func NewLogger(module string, debugMode bool, database services.Database) *Logger {
	logger := &Logger{
		module:    module,
		debugMode: debugMode,
		database:  database,
		writer:    make(chan *logEvent, 100),
	}
	go logger.startWriter()
	return logger
}

func (l *Logger) startWriter() {
	for event := range l.writer {
		log.Printf("%s %s: %s", event.level, l.module, event.text)
		if l.database == nil {
			continue
		}
		message := &entity.LogMessage{
			Timestamp: time.Now().UTC(),
			Module:    l.module,
			Level:     string(event.level),
			Text:      event.text,
		}
		if err := l.database.WriteLogMessage(message); err != nil {
			log.Printf("%s %s: write log to database failed: %v", levelError, l.module, err)
		}
	}
}

func (l *Logger) Debug(text string) {
	if l.debugMode {
		l.send(levelInfo, "debug: "+text)
	}
}

func (l *Logger) Info(text string) {
	l.send(levelInfo, text)
}

func (l *Logger) Warn(text string) {
	l.send(levelWarning, text)
}

func (l *Logger) Error(text string, err error) {
	l.send(levelError, fmt.Sprintf("%s: %s", text, err))
}

func (l *Logger) send(level importance, text string) {
	l.writer <- &logEvent{level: level, text: text}
}
