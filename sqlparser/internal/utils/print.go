package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var _, enableDebug = os.LookupEnv("SQLLEX_DEBUG")

var debugLog = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}()

// DPrint traces lexer internals to stderr when SQLLEX_DEBUG is set.
func DPrint(format string, a ...any) {
	if !enableDebug {
		return
	}
	debugLog.Debugf(format, a...)
}
