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

package cbbytes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatArrayByte(t *testing.T) {
	code, err := FloatArrayByte([]float32{1, -2.5, float32(math.Inf(1))})
	require.NoError(t, err)
	assert.Len(t, code, 12)

	back, err := ByteToFloat32Array(code)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -2.5, float32(math.Inf(1))}, back)

	_, err = ByteToFloat32Array(code[:5])
	assert.Error(t, err)
}

func TestValueToByte(t *testing.T) {
	b, err := ValueToByte(int32(math.MinInt32))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0x80}, b)

	n, err := DecodeNumber(b)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), n)

	b, err = ValueToByte(int64(42))
	require.NoError(t, err)
	n, err = DecodeNumber(b)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	b, err = ValueToByte(float64(0.25))
	require.NoError(t, err)
	assert.Equal(t, 0.25, ByteToFloat64(b))

	_, err = DecodeNumber([]byte{1, 2})
	assert.Error(t, err)
}

func TestFormatIByte(t *testing.T) {
	assert.Equal(t, "5B", FormatIByte(5))
	assert.Equal(t, "1.0KiB", FormatIByte(1024))
	assert.Equal(t, "2.0MiB", FormatIByte(2*MB))
}
