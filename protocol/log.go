package protocol

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

type Logger interface {
	SetOutput(output io.Writer)
	WithStack(err interface{})
	Fatalf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

var mclog Logger

func getLogger() Logger {
	if mclog == nil {
		SetLogger(newDefaultLogger())
	}
	return mclog
}

func SetLogger(logger Logger) {
	mclog = logger
}

func SetLoggerOutput(output io.Writer) {
	getLogger().SetOutput(output)
}

type defaultLog struct {
	log *log.Logger
}

func newDefaultLogger() *defaultLog {
	return &defaultLog{log: log.New(os.Stderr, "mcproto: ", log.LstdFlags|log.Lshortfile)}
}

func (l *defaultLog) SetOutput(output io.Writer) {
	l.log.SetOutput(output)
}

func (l *defaultLog) WithStack(err interface{}) {
	er := errors.Errorf("%v", err)
	l.log.Fatalf("\n%+v", er)
}

func (l *defaultLog) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}

func (l *defaultLog) Infof(format string, args ...interface{}) {
	l.log.Printf(format, args...)
}
