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

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(-1))
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(VerbosityQuiet))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityInfo))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(7))
}

func TestDefaultLoggerDiscards(t *testing.T) {
	// must not panic before Initialize is called
	Warnw("ignored", "key", 1)
	Debugw("ignored")
}

func TestHelpersUseGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	saved := Logger
	Logger = zap.New(core).Sugar()
	defer func() { Logger = saved }()

	Debugw("hidden")
	Infow("compiled", "file", "tikz.tex")
	Warnw("clamped", "value", 1e6)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "compiled", entries[0].Message)
	assert.Equal(t, "tikz.tex", entries[0].ContextMap()["file"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestInitialize(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	require.NoError(t, Initialize(VerbosityDebug, false))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(VerbosityQuiet, true))
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
}
