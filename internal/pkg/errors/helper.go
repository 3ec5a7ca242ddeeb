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

func InvalidParam(paramName string) *VearchError {
	return Newf(ErrInvalidParam, "invalid parameter: %s", paramName)
}

func MissingParam(paramName string) *VearchError {
	return Newf(ErrMissingParam, "required parameter missing: %s", paramName)
}

func SpaceNotFound(spaceName string) *VearchError {
	return Newf(ErrSpaceNotFound, "space not found: %s", spaceName)
}

func FieldNotFound(field string) *VearchError {
	return Newf(ErrFieldNotFound, "field not found: %s", field)
}

func NotSupported(what string) *VearchError {
	return Newf(ErrNotSupported, "not supported: %s", what)
}

func Serialization(format string, args ...interface{}) *VearchError {
	return Newf(ErrSerialization, format, args...)
}

func MalformedInput(format string, args ...interface{}) *VearchError {
	return Newf(ErrMalformedInput, format, args...)
}

func Precondition(format string, args ...interface{}) *VearchError {
	return Newf(ErrPrecondition, format, args...)
}

func Internal(message string) *VearchError {
	return New(ErrInternal, message)
}

func StorageError(operation string, cause error) *VearchError {
	return Wrapf(ErrStorageError, cause, "storage error in %s", operation)
}
