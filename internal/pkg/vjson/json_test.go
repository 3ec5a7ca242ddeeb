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

package vjson

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bound float64

func (b bound) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(b), 1) {
		return []byte(`"+Inf"`), nil
	}
	return json.Marshal(float64(b))
}

func TestMarshalUsesFieldMarshaler(t *testing.T) {
	data, err := Marshal(struct {
		Max bound `json:"max"`
	}{Max: bound(math.Inf(1))})
	require.NoError(t, err)
	assert.Equal(t, `{"max":"+Inf"}`, string(data))
}

func TestMarshalSortsKeys(t *testing.T) {
	data, err := Marshal(map[string]int{"topn": 10, "nprobe": 80})
	require.NoError(t, err)
	assert.Equal(t, `{"nprobe":80,"topn":10}`, string(data))

	data, err = MarshalIndent(map[string]int{"topn": 10}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"topn\": 10\n}", string(data))
}

func TestUnmarshalRawMessage(t *testing.T) {
	var v struct {
		Params json.RawMessage `json:"params"`
	}
	require.NoError(t, Unmarshal([]byte(`{"params": {"nprobe": 80}}`), &v))
	assert.JSONEq(t, `{"nprobe": 80}`, string(v.Params))
	assert.Error(t, Unmarshal([]byte(`{"params":`), &v))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`{"nprobe":1}`)))
	assert.True(t, Valid([]byte(`"{"`)))
	assert.False(t, Valid([]byte(`{"nprobe":`)))
}
