package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Types int

const (
	Info Types = iota
	Error
	Warn
	Fatal
)

type Message struct {
	Timestamp time.Time
	Tag       string
	Message   string
	LogTypes  Types
}

type Logger struct {
	out       *log.Logger
	tag       string
	dev       bool
	logFile   *os.File
	logChan   chan Message
	closeChan chan struct{}
	done      chan struct{}
}

var (
	logManager *Logger
	once       sync.Once
	closeOnce  sync.Once
)

// InitLogger configures the process-wide sink. Console output goes to out
// (stderr when nil); logPath, when set, receives every message asynchronously.
func InitLogger(dev bool, logPath string, out io.Writer) {
	once.Do(func() {
		logManager = newManager(dev, out)
		if logPath != "" {
			timestamp := time.Now().Format("20060102_150405")
			fileName := fmt.Sprintf("govhelper_log_%s.log", timestamp)
			filePath := filepath.Join(logPath, fileName)

			file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				log.Fatalf("Failed to open log file: %s", err)
			}
			logManager.logFile = file
		}

		go logManager.processLogs()
	})
}

func newManager(dev bool, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		out:       log.New(out, "", log.LstdFlags),
		dev:       dev,
		logChan:   make(chan Message, 100),
		closeChan: make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// NewLogger returns a logger writing under tag. Before InitLogger runs it
// writes warnings and errors to stderr only.
func NewLogger(tag string) *Logger {
	manager := logManager
	if manager == nil {
		manager = newManager(false, nil)
	}
	return &Logger{
		out:       manager.out,
		tag:       tag,
		dev:       manager.dev,
		logFile:   manager.logFile,
		logChan:   manager.logChan,
		closeChan: manager.closeChan,
	}
}

// processLogs writes queued messages to the log file. Once closeChan is
// closed it flushes whatever is still buffered and signals done.
func (l *Logger) processLogs() {
	defer close(l.done)
	for {
		select {
		case msg := <-l.logChan:
			l.write(msg)
		case <-l.closeChan:
			for {
				select {
				case msg := <-l.logChan:
					l.write(msg)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) write(msg Message) {
	if l.logFile == nil {
		return
	}
	timestamp := msg.Timestamp.Format("2006-01-02 15:04:05")
	l.logFile.WriteString(fmt.Sprintf("%s [%s] %s: %s\n", timestamp, msg.Tag, msg.LogTypes.toString(), msg.Message))
}

func (l *Logger) log(logTypes Types, message string) {
	if l.dev || logTypes != Info {
		l.out.Printf("[%s] %s: %s", l.tag, logTypes.toString(), message)
	}

	if l.logFile != nil {
		select {
		case l.logChan <- Message{
			Timestamp: time.Now(),
			Tag:       l.tag,
			Message:   message,
			LogTypes:  logTypes,
		}:
		case <-l.closeChan:
		}
	}
}

func (l *Logger) Info(v ...interface{}) {
	l.log(Info, sprint(v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.log(Error, sprint(v...))
}

func (l *Logger) Warn(v ...interface{}) {
	l.log(Warn, sprint(v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	l.log(Fatal, sprint(v...))
	os.Exit(1)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.log(Info, fmt.Sprintf(format, v...))
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.log(Warn, fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.log(Error, fmt.Sprintf(format, v...))
}

// Close flushes pending messages, stops the file writer and closes the log
// file. Messages logged afterwards only reach the console.
func Close() {
	if logManager == nil {
		return
	}
	closeOnce.Do(logManager.shutdown)
}

func (l *Logger) shutdown() {
	close(l.closeChan)
	<-l.done
	if l.logFile != nil {
		l.logFile.Close()
	}
}

// sprint joins operands with spaces, like log.Println without the newline.
func sprint(v ...interface{}) string {
	s := fmt.Sprintln(v...)
	return s[:len(s)-1]
}

func (t Types) toString() string {
	switch t {
	case Info:
		return "INFO"
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}
