package logging

import (
	"fmt"
	"log"
	"os"
)

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
)

// InitLogging initializes the level loggers. The service name is stamped
// into every line so aggregated logs stay attributable.
func InitLogging(service string) {
	InfoLogger = log.New(os.Stdout, fmt.Sprintf("[%s] INFO: ", service), log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, fmt.Sprintf("[%s] ERROR: ", service), log.Ldate|log.Ltime|log.Lshortfile)
}

// Infof logs info level messages
func Infof(format string, v ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Printf(format, v...)
	}
}

// Errorf logs error level messages
func Errorf(format string, v ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(format, v...)
	}
}
