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

package errutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	errs := []error{errors.New("foo"), errors.New("bar")}
	multi := &MultiError{errors: errs}
	assert.Equal(t, errs, multi.Errors())
}

func TestErrorErrorOrNil(t *testing.T) {
	errs := new(MultiError)
	assert.Nil(t, errs.ErrorOrNil())

	errs.Append(nil, errors.New("foo"))
	v := errs.ErrorOrNil()
	require.NotNil(t, v)
	assert.Same(t, errs, v)
}

func TestAppendError(t *testing.T) {
	expected := `the following errors occurred:
 -- foo
 -- bar
 -- test`

	multi := Combine(errors.New("foo"), nil, errors.New("bar"))
	multi.Append(Combine(errors.New("test")))
	assert.Equal(t, expected, multi.Error())
}

func TestFormats(t *testing.T) {
	foo := errors.New("foo")
	assert.Equal(t, "foo", Combine(foo).Error())

	multi := Combine(foo, errors.New("bar"))
	multi.Format = InlineFormat
	assert.Equal(t, "foo; bar", multi.Error())
	assert.True(t, errors.Is(multi, foo))
}
