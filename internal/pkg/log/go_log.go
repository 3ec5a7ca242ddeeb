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

package log

import (
	"fmt"
	golog "log"
	"os"
)

type Level int8

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelCodes = [...]string{
	DEBUG: "[DEBUG] ",
	INFO:  "[INFO] ",
	WARN:  "[WARN] ",
	ERROR: "[ERROR] ",
}

var std Log = NewGoLog(golog.New(os.Stderr, "", golog.Lshortfile|golog.LstdFlags), INFO)

// GoLog writes through a standard library logger. It is the fallback used
// before a backend is registered.
type GoLog struct {
	*golog.Logger
	L Level
}

func NewGoLog(lg *golog.Logger, l Level) Log {
	return &GoLog{Logger: lg, L: l}
}

func (this *GoLog) Flush() {
}

func (this *GoLog) IsDebugEnabled() bool {
	return this.L <= DEBUG
}

func (this *GoLog) IsInfoEnabled() bool {
	return this.L <= INFO
}

func (this *GoLog) IsWarnEnabled() bool {
	return this.L <= WARN
}

func (this *GoLog) Debugf(format string, args ...any) {
	if this.IsDebugEnabled() {
		this.write(DEBUG, fmt.Sprintf(format, args...))
	}
}

func (this *GoLog) Infof(format string, args ...any) {
	if this.IsInfoEnabled() {
		this.write(INFO, fmt.Sprintf(format, args...))
	}
}

func (this *GoLog) Warnf(format string, args ...any) {
	if this.IsWarnEnabled() {
		this.write(WARN, fmt.Sprintf(format, args...))
	}
}

func (this *GoLog) Errorf(format string, args ...any) {
	this.write(ERROR, fmt.Sprintf(format, args...))
}

func (this *GoLog) Debug(args ...any) {
	if this.IsDebugEnabled() {
		this.write(DEBUG, fmt.Sprint(args...))
	}
}

func (this *GoLog) Info(args ...any) {
	if this.IsInfoEnabled() {
		this.write(INFO, fmt.Sprint(args...))
	}
}

func (this *GoLog) Warn(args ...any) {
	if this.IsWarnEnabled() {
		this.write(WARN, fmt.Sprint(args...))
	}
}

func (this *GoLog) Error(args ...any) {
	this.write(ERROR, fmt.Sprint(args...))
}

func (this *GoLog) write(l Level, msg string) {
	_ = this.Output(4, levelCodes[l]+msg)
}
