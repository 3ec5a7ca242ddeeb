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

type Log interface {
	IsDebugEnabled() bool

	IsInfoEnabled() bool

	IsWarnEnabled() bool

	Debug(v ...any)
	Debugf(format string, v ...any)

	Info(v ...any)
	Infof(format string, v ...any)

	Warn(v ...any)
	Warnf(format string, v ...any)

	Error(v ...any)
	Errorf(format string, v ...any)

	//when system exit you should use it
	Flush()
}

var current Log

func Get() Log {
	if current == nil {
		return std
	}
	return current
}

// Regist installs l as the process logger; nil restores the stderr fallback.
func Regist(l Log) {
	current = l
}

func IsDebugEnabled() bool {
	return Get().IsDebugEnabled()
}

func IsInfoEnabled() bool {
	return Get().IsInfoEnabled()
}

func IsWarnEnabled() bool {
	return Get().IsWarnEnabled()
}

func Errorf(format string, args ...any) {
	Get().Errorf(format, args...)
}

func Infof(format string, args ...any) {
	Get().Infof(format, args...)
}

func Debugf(format string, args ...any) {
	Get().Debugf(format, args...)
}

func Warnf(format string, args ...any) {
	Get().Warnf(format, args...)
}

func Error(args ...any) {
	Get().Error(args...)
}

func Warn(args ...any) {
	Get().Warn(args...)
}

func Info(args ...any) {
	Get().Info(args...)
}

func Debug(args ...any) {
	Get().Debug(args...)
}

func Flush() {
	Get().Flush()
}
