// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides the printf-style logger used across kfcheck.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var logger = newLogger(os.Stderr)

// exit is swapped out in tests.
var exit = os.Exit

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	formatter := &logrus.TextFormatter{FullTimestamp: true}
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		formatter.ForceColors = true
	}
	l.SetFormatter(formatter)
	return l
}

// SetOutput redirects log output.
func SetOutput(out io.Writer) {
	logger.SetOutput(out)
}

// SetVerbose enables debug messages.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
	logrus.SetLevel(logrus.InfoLevel)
}

// Debug logs at debug level.
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Info logs at info level.
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warn logs at warning level.
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs at error level.
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Fatal logs at error level and exits with status 1.
func Fatal(format string, args ...interface{}) {
	logger.Errorf(format, args...)
	exit(1)
}
