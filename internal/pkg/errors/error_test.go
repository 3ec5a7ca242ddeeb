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
	stderrors "errors"
	"io"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearch/gammareq/internal/engine/idl/fbs-gen/go/vearch/status"
)

func TestNew(t *testing.T) {
	err := New(ErrInvalidParam, "test message")
	assert.Equal(t, ErrInvalidParam, err.Code)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "[INVALID_PARAM] test message", err.Error())
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrStorageError, "wrapped", io.ErrUnexpectedEOF)
	assert.Equal(t, io.ErrUnexpectedEOF, err.Cause)
	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestGetCodeThroughPkgErrors(t *testing.T) {
	err := pkgerrors.Wrap(MalformedInput("bad root offset %d", 7), "decode request")
	assert.Equal(t, ErrMalformedInput, GetCode(err))
	assert.True(t, Is(err, ErrMalformedInput))
	assert.True(t, stderrors.Is(err, New(ErrMalformedInput, "")))
	assert.False(t, Is(err, ErrSerialization))
	assert.Equal(t, ErrOK, GetCode(nil))
	assert.Equal(t, ErrInternal, GetCode(io.EOF))
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name   string
		fn     func() *VearchError
		code   ErrorCode
		status status.Code
	}{
		{"InvalidParam", func() *VearchError { return InvalidParam("ranker") }, ErrInvalidParam, status.CodekInvalidArgument},
		{"MalformedInput", func() *VearchError { return MalformedInput("short") }, ErrMalformedInput, status.CodekInvalidArgument},
		{"Precondition", func() *VearchError { return Precondition("decoded") }, ErrPrecondition, status.CodekInvalidArgument},
		{"Serialization", func() *VearchError { return Serialization("too big") }, ErrSerialization, status.CodekIOError},
		{"SpaceNotFound", func() *VearchError { return SpaceNotFound("ts") }, ErrSpaceNotFound, status.CodekNotFound},
		{"NotSupported", func() *VearchError { return NotSupported("op") }, ErrNotSupported, status.CodekNotSupported},
		{"Internal", func() *VearchError { return Internal("boom") }, ErrInternal, status.CodekIndexError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.status, err.Status())
			assert.Equal(t, tt.status, StatusOf(err))
		})
	}
}

func TestStatusOk(t *testing.T) {
	assert.Equal(t, status.CodekOk, StatusOf(nil))
	assert.Equal(t, "kOk", StatusOf(nil).String())
	assert.Equal(t, "Code(42)", status.Code(42).String())
}

func TestWithDetail(t *testing.T) {
	err := InvalidParam("weights").WithDetail("expected", 2).WithDetail("got", 1)
	assert.Equal(t, 2, err.Details["expected"])
	assert.Equal(t, 1, err.Details["got"])
}
