package logger

import (
	"fmt"
	"io"
	"log"
)

type Logger struct {
	l *log.Logger
}

func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

// Discard returns a Logger that drops everything; used by tests.
func Discard() *Logger {
	return New(log.New(io.Discard, "", 0))
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Printf("[Error]: %s\n", fmt.Sprintf(format, v...))
}

func (l *Logger) LogWarn(format string, v ...any) {
	l.l.Printf("[Warn]: %s\n", fmt.Sprintf(format, v...))
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Printf("[Info]: %s\n", fmt.Sprintf(format, v...))
}
