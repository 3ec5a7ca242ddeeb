// Copyright 2019 The Vearch Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package vearchlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options tunes the rolling file sink.
type Options struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var DefaultOptions = Options{MaxSizeMB: 256, MaxBackups: 10, MaxAgeDays: 7}

// NewVearchLog builds a zap backed logger for the log package. When dir is
// empty the logger writes to stderr only.
func NewVearchLog(dir, module, level string, toConsole bool) (*vearchLog, error) {
	return NewVearchLogWithOptions(dir, module, level, toConsole, DefaultOptions)
}

func NewVearchLogWithOptions(dir, module, level string, toConsole bool, opts Options) (*vearchLog, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encCfg)
	atom := zap.NewAtomicLevelAt(lvl)

	var cores []zapcore.Core
	var rolling *lumberjack.Logger
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		rolling = &lumberjack.Logger{
			Filename:   filepath.Join(dir, strings.ToLower(module)+".log"),
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rolling), atom))
	}
	if toConsole || dir == "" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), atom))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(2)).
		Named(module)
	return &vearchLog{sugar: logger.Sugar(), level: atom, rolling: rolling}, nil
}

type vearchLog struct {
	sugar   *zap.SugaredLogger
	level   zap.AtomicLevel
	rolling *lumberjack.Logger
}

func (l *vearchLog) IsDebugEnabled() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

func (l *vearchLog) IsInfoEnabled() bool {
	return l.level.Enabled(zapcore.InfoLevel)
}

func (l *vearchLog) IsWarnEnabled() bool {
	return l.level.Enabled(zapcore.WarnLevel)
}

// SetLevel changes the level at runtime.
func (l *vearchLog) SetLevel(level string) error {
	return l.level.UnmarshalText([]byte(strings.ToLower(level)))
}

func (l *vearchLog) Debugf(format string, v ...any) { l.sugar.Debugf(format, v...) }
func (l *vearchLog) Infof(format string, v ...any)  { l.sugar.Infof(format, v...) }
func (l *vearchLog) Warnf(format string, v ...any)  { l.sugar.Warnf(format, v...) }
func (l *vearchLog) Errorf(format string, v ...any) { l.sugar.Errorf(format, v...) }

func (l *vearchLog) Debug(v ...any) { l.sugar.Debug(v...) }
func (l *vearchLog) Info(v ...any)  { l.sugar.Info(v...) }
func (l *vearchLog) Warn(v ...any)  { l.sugar.Warn(v...) }
func (l *vearchLog) Error(v ...any) { l.sugar.Error(v...) }

func (l *vearchLog) Flush() {
	_ = l.sugar.Sync()
	if l.rolling != nil {
		_ = l.rolling.Close()
	}
}
