package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/mbase-io/mbase"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ mbase.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f mbase.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f mbase.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f mbase.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f mbase.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
