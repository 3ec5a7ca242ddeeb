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

package errors

import (
	"errors"
	"fmt"

	"github.com/vearch/gammareq/internal/engine/idl/fbs-gen/go/vearch/status"
)

type VearchError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Details map[string]interface{}
}

func (e *VearchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

func (e *VearchError) Unwrap() error {
	return e.Cause
}

// Is matches any VearchError carrying the same code.
func (e *VearchError) Is(target error) bool {
	t, ok := target.(*VearchError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *VearchError) WithDetail(key string, value interface{}) *VearchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func (e *VearchError) GetCode() ErrorCode {
	return e.Code
}

func (e *VearchError) Status() status.Code {
	return e.Code.Status()
}

func New(code ErrorCode, message string) *VearchError {
	return &VearchError{Code: code, Message: message}
}

func Newf(code ErrorCode, format string, args ...interface{}) *VearchError {
	return &VearchError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code ErrorCode, message string, cause error) *VearchError {
	return &VearchError{Code: code, Message: message, Cause: cause}
}

func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *VearchError {
	return &VearchError{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func GetVearchError(err error) *VearchError {
	var vErr *VearchError
	if errors.As(err, &vErr) {
		return vErr
	}
	return nil
}

// GetCode returns ErrOK for nil and ErrInternal for foreign errors.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ErrOK
	}
	if vErr := GetVearchError(err); vErr != nil {
		return vErr.Code
	}
	return ErrInternal
}

func Is(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

func StatusOf(err error) status.Code {
	return GetCode(err).Status()
}
