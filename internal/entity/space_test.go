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

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearch/gammareq/internal/entity"
	"github.com/vearch/gammareq/internal/pkg/errors"
	"github.com/vearch/gammareq/internal/pkg/vjson"
)

const spaceJSON = `
{
	"name": "ts_space",
	"fields": [
	  {"name": "string", "type": "string", "index": {"name": "string", "type": "SCALAR"}},
	  {"name": "float", "type": "float", "index": {"name": "float", "type": "SCALAR"}},
	  {"name": "int", "type": "integer"},
	  {"name": "date", "type": "date", "index": {"name": "date", "type": "SCALAR"}},
	  {"name": "vec", "type": "vector", "dimension": 4, "format": "normalization",
	   "index": {"name": "vec", "type": "IVFPQ"}}
	],
	"index": {"name": "gamma", "type": "IVFPQ", "params": {"metric_type": "L2", "ncentroids": 128}}
}`

func TestSpaceProperties(t *testing.T) {
	space := &entity.Space{}
	require.NoError(t, vjson.Unmarshal([]byte(spaceJSON), space))

	pro, err := space.Properties()
	require.NoError(t, err)
	require.Len(t, pro, 5)
	assert.Equal(t, entity.FieldType_STRING, pro["string"].FieldType)
	assert.Equal(t, entity.FieldType_FLOAT, pro["float"].FieldType)
	assert.Equal(t, entity.FieldOption_Null, pro["int"].Option)
	assert.Equal(t, entity.FieldOption_Index, pro["date"].Option)
	assert.Equal(t, 4, pro["vec"].Dimension)
	assert.Equal(t, "VECTOR", pro["vec"].FieldType.String())

	metric, err := space.MetricType()
	require.NoError(t, err)
	assert.Equal(t, "L2", metric)
}

func TestSpacePropertiesErrors(t *testing.T) {
	tests := map[string]string{
		"zero dimension": `[{"name":"v","type":"vector"}]`,
		"bad format":     `[{"name":"v","type":"vector","dimension":8,"format":"l1"}]`,
		"unknown type":   `[{"name":"x","type":"geo"}]`,
		"duplicate":      `[{"name":"x","type":"long"},{"name":"x","type":"float"}]`,
		"not json":       `[{"name":`,
	}
	for name, fields := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := entity.UnmarshalPropertyJSON([]byte(fields))
			require.Error(t, err)
			assert.Equal(t, errors.ErrInvalidParam, errors.GetCode(err))
		})
	}
}
