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
	"strings"
)

// ErrorFormat renders the errors of a MultiError into b.
type ErrorFormat func(errs []error, b *strings.Builder)

// MultilineFormat writes a header line and one " -- " line per error.
func MultilineFormat(errs []error, b *strings.Builder) {
	if len(errs) == 1 {
		b.WriteString(errs[0].Error())
		return
	}
	b.WriteString("the following errors occurred:")
	for _, err := range errs {
		b.WriteString("\n -- ")
		b.WriteString(err.Error())
	}
}

// InlineFormat joins the errors with "; ".
func InlineFormat(errs []error, b *strings.Builder) {
	for i, err := range errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
}

// Combine merge multiple error and create MultiError
func Combine(errs ...error) *MultiError {
	merr := &MultiError{}
	merr.Append(errs...)
	return merr
}

// MultiError multiple error
type MultiError struct {
	errors []error
	Format ErrorFormat
}

// Errors return contained errors
func (me *MultiError) Errors() []error {
	if me == nil {
		return nil
	}
	return me.errors
}

// Append append error to MultiError, nested MultiErrors are flattened
func (me *MultiError) Append(errs ...error) {
	for _, e := range errs {
		if e == nil {
			continue
		}
		switch e := e.(type) {
		case *MultiError:
			me.errors = append(me.errors, e.Errors()...)
		default:
			me.errors = append(me.errors, e)
		}
	}
}

// ErrorOrNil if contained errors then return self,else return nil
func (me *MultiError) ErrorOrNil() error {
	if me == nil || len(me.errors) == 0 {
		return nil
	}

	return me
}

func (me *MultiError) Error() string {
	if me == nil || len(me.errors) == 0 {
		return ""
	}

	fn := me.Format
	if fn == nil {
		fn = MultilineFormat
	}
	var b strings.Builder
	fn(me.errors, &b)
	return b.String()
}

// Unwrap exposes the contained errors to errors.Is and errors.As.
func (me *MultiError) Unwrap() []error {
	return me.Errors()
}
