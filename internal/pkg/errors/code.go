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
	"github.com/vearch/gammareq/internal/engine/idl/fbs-gen/go/vearch/status"
)

type ErrorCode int

const (
	ErrOK ErrorCode = 0

	// 1xxx: caller supplied something unusable
	ErrInvalidParam   ErrorCode = 1000
	ErrMissingParam   ErrorCode = 1001
	ErrMalformedInput ErrorCode = 1002
	ErrPrecondition   ErrorCode = 1003

	ErrNotFound      ErrorCode = 3000
	ErrSpaceNotFound ErrorCode = 3002
	ErrFieldNotFound ErrorCode = 3005

	ErrNotSupported ErrorCode = 4002

	ErrInternal      ErrorCode = 5000
	ErrTimeout       ErrorCode = 5001
	ErrStorageError  ErrorCode = 5006
	ErrSerialization ErrorCode = 5009
)

var codeNames = map[ErrorCode]string{
	ErrOK:             "OK",
	ErrInvalidParam:   "INVALID_PARAM",
	ErrMissingParam:   "MISSING_PARAM",
	ErrMalformedInput: "MALFORMED_INPUT",
	ErrPrecondition:   "PRECONDITION_VIOLATION",
	ErrNotFound:       "NOT_FOUND",
	ErrSpaceNotFound:  "SPACE_NOT_FOUND",
	ErrFieldNotFound:  "FIELD_NOT_FOUND",
	ErrNotSupported:   "NOT_SUPPORTED",
	ErrInternal:       "INTERNAL",
	ErrTimeout:        "TIMEOUT",
	ErrStorageError:   "STORAGE_ERROR",
	ErrSerialization:  "SERIALIZATION_ERROR",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// Status maps an error code onto the engine status catalog.
func (c ErrorCode) Status() status.Code {
	switch {
	case c == ErrOK:
		return status.CodekOk
	case c == ErrNotSupported:
		return status.CodekNotSupported
	case c == ErrTimeout:
		return status.CodekTimedOut
	case c == ErrStorageError, c == ErrSerialization:
		return status.CodekIOError
	case c >= 1000 && c < 2000:
		return status.CodekInvalidArgument
	case c >= 3000 && c < 4000:
		return status.CodekNotFound
	default:
		return status.CodekIndexError
	}
}
