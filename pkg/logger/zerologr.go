// Copyright 2019 Jorn Friedrich Dreyer
// Modified 2021 Serhii Mikhno
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger implements the github.com/go-logr/logr interfaces on top of
// zerolog (github.com/rs/zerolog) and exposes package level helpers.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

const (
	debugVerbosity = 1
	traceVerbosity = 2
	timeFormat     = "2006-01-02 15:04:05.000"
)

var (
	log Zerologr
	mu  sync.RWMutex
)

// this prevents from using non-initialised logger
func init() {
	Init("info")
}

// Zerologr is a logr.Logger with printf style helpers.
type Zerologr interface {
	logr.Logger
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
	Errorf(string, ...interface{})
}

// Config is the [log] section of the configuration file.
type Config struct {
	Level string `mapstructure:"level"`
}

// Init replaces the package logger with a console logger at the given level.
// Supported levels are: ["trace", "debug", "info", "warn", "error"]
func Init(level string) {
	InitWithWriter(level, getOutputFormat(os.Stdout))
}

// InitWithWriter replaces the package logger with one writing to w.
func InitWithWriter(level string, w io.Writer) {
	zerolog.TimeFieldFormat = timeFormat
	lvl := getZerologLevel(level)
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()

	mu.Lock()
	log = NewWithOptions(Options{Logger: &l})
	mu.Unlock()
}

// New returns a named logr.Logger backed by the package logger.
func New(name string) Zerologr {
	mu.RLock()
	defer mu.RUnlock()
	return log.WithName(name).(Zerologr)
}

// NewWithOptions returns a logr.Logger which is implemented by zerolog.
func NewWithOptions(opts Options) Zerologr {
	if opts.Logger == nil {
		l := zerolog.New(os.Stdout).With().Timestamp().Logger()
		opts.Logger = &l
	}
	return logger{
		l:      opts.Logger,
		prefix: opts.Name,
	}
}

// Options that can be passed to NewWithOptions
type Options struct {
	// Name is an optional name of the logger
	Name string
	// Logger is an instance of zerolog, if nil a default logger is used
	Logger *zerolog.Logger
}

// logger is a logr.Logger that uses zerolog to log.
type logger struct {
	l         *zerolog.Logger
	verbosity int
	prefix    string
	values    []interface{}
}

func (l logger) level() zerolog.Level {
	switch {
	case l.verbosity < debugVerbosity:
		return zerolog.InfoLevel
	case l.verbosity < traceVerbosity:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func (l logger) Info(msg string, keysAndVals ...interface{}) {
	if !l.Enabled() {
		return
	}
	e := l.l.WithLevel(l.level())
	if l.prefix != "" {
		e.Str("name", l.prefix)
	}
	add(e, l.values)
	add(e, keysAndVals)
	e.Msg(msg)
}

func (l logger) Enabled() bool {
	lvl := l.level()
	return lvl >= l.l.GetLevel() && lvl >= zerolog.GlobalLevel()
}

func (l logger) Error(err error, msg string, keysAndVals ...interface{}) {
	e := l.l.Error().Err(err)
	if l.prefix != "" {
		e.Str("name", l.prefix)
	}
	add(e, l.values)
	add(e, keysAndVals)
	e.Msg(msg)
}

// V returns a logger whose Info calls are emitted at a higher verbosity.
// V(0) logs at info, V(1) at debug and V(2) and above at trace.
func (l logger) V(verbosity int) logr.Logger {
	n := l.clone()
	n.verbosity += verbosity
	return n
}

// WithName returns a new logr.Logger with the specified name appended. zerologr
// uses '/' characters to separate name elements.
func (l logger) WithName(name string) logr.Logger {
	n := l.clone()
	if len(l.prefix) > 0 {
		n.prefix = l.prefix + "/"
	}
	n.prefix += name
	return n
}

func (l logger) WithValues(kvList ...interface{}) logr.Logger {
	n := l.clone()
	n.values = append(n.values, kvList...)
	return n
}

// Infof logs a formatted info level log
func (l logger) Infof(format string, v ...interface{}) {
	l.Info(fmt.Sprintf(format, v...))
}

// Debugf logs a formatted debug level log
func (l logger) Debugf(format string, v ...interface{}) {
	l.V(debugVerbosity).Info(fmt.Sprintf(format, v...))
}

// Errorf logs a formatted error level log
func (l logger) Errorf(format string, v ...interface{}) {
	l.Error(nil, fmt.Sprintf(format, v...))
}

// Infof logs a formatted info level log to the console
func Infof(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Infof(format, v...)
}

// Debugf logs a formatted debug level log to the console
func Debugf(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Debugf(format, v...)
}

// Warnf logs a formatted warn level log to the console
func Warnf(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	l := log.(logger)
	l.l.Warn().Msgf(format, v...)
}

// Errorf logs a formatted error level log to the console
func Errorf(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Errorf(format, v...)
}
