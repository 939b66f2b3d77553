// seehuhn.de/go/tikz - create TikZ graphics from Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logger holds the process-wide structured logger.
//
// Library code logs through the package-level functions.  Until
// [Initialize] is called, all messages are discarded.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger.  The verbosity is the number of
// times the -v flag was given on the command line.  If jsonOutput is set,
// log entries are written as JSON lines, otherwise in a console format.
// Log output goes to stderr, so that it never mixes with image data on
// stdout.
func Initialize(verbosity int, jsonOutput bool) error {
	level := zap.NewAtomicLevelAt(VerbosityToLevel(verbosity))

	var zapLogger *zap.Logger
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = level
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		var err error
		zapLogger, err = config.Build()
		if err != nil {
			return err
		}
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.AddSync(os.Stderr),
				level,
			),
		)
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Cleanup flushes any buffered log entries.
func Cleanup() {
	_ = Logger.Sync()
}

// Debugw logs a debug message with structured fields.
func Debugw(msg string, keysAndValues ...any) {
	Logger.Debugw(msg, keysAndValues...)
}

// Infow logs an info message with structured fields.
func Infow(msg string, keysAndValues ...any) {
	Logger.Infow(msg, keysAndValues...)
}

// Warnw logs a warning with structured fields.
func Warnw(msg string, keysAndValues ...any) {
	Logger.Warnw(msg, keysAndValues...)
}

// Errorw logs an error message with structured fields.
func Errorw(msg string, keysAndValues ...any) {
	Logger.Errorw(msg, keysAndValues...)
}
