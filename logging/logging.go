/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"www.velocidex.com/golang/artifact_report/config"
)

var (
	GenericComponent = "ArtifactReport"
	ReportComponent  = "ArtifactReport Report"
	ToolComponent    = "ArtifactReport Tool"

	// When set, only warnings and errors are written to stderr.
	// Memory logs and the log file still receive all messages.
	SuppressLogging = false

	// Console output goes here.
	Stderr io.Writer = os.Stderr

	Manager = NewLogManager()
)

type LogContext struct {
	*logrus.Logger
	component string
}

func (self *LogContext) entry() *logrus.Entry {
	return self.Logger.WithField("component", self.component)
}

func (self *LogContext) Debug(format string, args ...interface{}) {
	self.entry().Debug(fmt.Sprintf(format, args...))
}

func (self *LogContext) Info(format string, args ...interface{}) {
	self.entry().Info(fmt.Sprintf(format, args...))
}

func (self *LogContext) Warn(format string, args ...interface{}) {
	self.entry().Warn(fmt.Sprintf(format, args...))
}

func (self *LogContext) Error(format string, args ...interface{}) {
	self.entry().Error(fmt.Sprintf(format, args...))
}

func (self *LogContext) LogWithLevel(level string, format string, args ...interface{}) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		self.Debug(format, args...)
	case "WARN", "WARNING":
		self.Warn(format, args...)
	case "ERROR":
		self.Error(format, args...)
	default:
		self.Info(format, args...)
	}
}

type LogManager struct {
	mu       sync.Mutex
	contexts map[*string]*LogContext

	level    logrus.Level
	log_file string
}

func NewLogManager() *LogManager {
	return &LogManager{
		contexts: make(map[*string]*LogContext),
		level:    logrus.InfoLevel,
	}
}

// Reset drops all cached loggers so they are rebuilt with the
// current settings on next use.
func (self *LogManager) Reset() {
	self.mu.Lock()
	defer self.mu.Unlock()

	self.contexts = make(map[*string]*LogContext)
}

func (self *LogManager) GetLogger(
	config_obj *config.Config, component *string) *LogContext {
	self.mu.Lock()
	defer self.mu.Unlock()

	ctx, pres := self.contexts[component]
	if pres {
		return ctx
	}

	ctx = &LogContext{
		Logger:    self.makeLogger(config_obj),
		component: *component,
	}
	self.contexts[component] = ctx
	return ctx
}

func (self *LogManager) makeLogger(config_obj *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(self.level)

	formatter := &logrus.TextFormatter{
		ForceColors:   isatty.IsTerminal(os.Stderr.Fd()),
		FullTimestamp: true,
	}
	logger.SetFormatter(formatter)
	logger.AddHook(memory_hook)

	if SuppressLogging {
		// Problems with the report must still be visible.
		logger.SetOutput(io.Discard)
		logger.AddHook(lfshook.NewHook(lfshook.WriterMap{
			logrus.WarnLevel:  Stderr,
			logrus.ErrorLevel: Stderr,
			logrus.FatalLevel: Stderr,
			logrus.PanicLevel: Stderr,
		}, formatter))
	} else {
		logger.SetOutput(Stderr)
	}

	log_file := self.log_file
	if log_file == "" && config_obj != nil && config_obj.Logging != nil {
		log_file = config_obj.Logging.Filename
	}

	if log_file != "" {
		path_map := lfshook.PathMap{}
		for _, level := range logrus.AllLevels {
			path_map[level] = log_file
		}
		logger.AddHook(lfshook.NewHook(path_map, &logrus.JSONFormatter{}))
	}

	return logger
}

func GetLogger(config_obj *config.Config, component *string) *LogContext {
	return Manager.GetLogger(config_obj, component)
}

// InitLogging configures the global manager from the config. Must be
// called before any loggers are handed out for the settings to take
// effect.
func InitLogging(config_obj *config.Config) error {
	level := logrus.InfoLevel
	log_file := ""

	if config_obj != nil && config_obj.Logging != nil {
		if config_obj.Logging.Level != "" {
			parsed, err := logrus.ParseLevel(config_obj.Logging.Level)
			if err != nil {
				return err
			}
			level = parsed
		}
		log_file = config_obj.Logging.Filename
	}

	Manager.mu.Lock()
	Manager.level = level
	Manager.log_file = log_file
	Manager.mu.Unlock()

	Manager.Reset()
	return nil
}

// Prelog emits a message before the config (and therefore the real
// logging settings) is available.
func Prelog(format string, v ...interface{}) {
	if SuppressLogging {
		return
	}
	fmt.Fprintf(Stderr, "[PRELOG] "+format+"\n", v...)
}
