/**
 * Copyright 2019 The Vearch Authors.
 *
 * This source code is licensed under the Apache License, Version 2.0 license
 * found in the LICENSE file in the root directory of this source tree.
 */

package gamma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearch/gammareq/internal/pkg/errors"
)

func TestWeightedRankerParse(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		weightNum int
		want      []float64
		wantErr   bool
	}{
		{"list", "0.5,0.5", 2, []float64{0.5, 0.5}, false},
		{"list with spaces", " 0.2 , 0.3 ,0.5 ", 3, []float64{0.2, 0.3, 0.5}, false},
		{"router json", `{"type":"WeightedRanker","params":[0.7,0.3]}`, 2, []float64{0.7, 0.3}, false},
		{"router json spaced", `{"type": "WeightedRanker", "params": [0.4, 0.6]}`, 2, []float64{0.4, 0.6}, false},
		{"json decimals", `[0.1, 0.2, 0.7, 1e-1, -0.3]`, 5, []float64{0.1, 0.2, 0.7, 0.1, -0.3}, false},
		{"json array", `[1,2]`, 2, []float64{1, 2}, false},
		{"empty", "", 3, []float64{}, false},
		{"too few", "1.0", 3, nil, true},
		{"too many", "1,2,3", 2, nil, true},
		{"not a number", "0.5,abc", 2, nil, true},
		{"trailing comma", "0.5,", 2, nil, true},
		{"nan", "NaN,1", 2, nil, true},
		{"wrong type", `{"type":"RRFRanker","params":[1,1]}`, 2, nil, true},
		{"no params", `{"type":"WeightedRanker"}`, 2, nil, true},
		{"string weight", `{"type":"WeightedRanker","params":["a","b"]}`, 2, nil, true},
		{"bad json", `{"type":`, 2, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewWeightedRanker(tt.spec, tt.weightNum)
			err := r.Parse()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrInvalidParam, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Weights())
			assert.Equal(t, tt.spec, r.RawStr())
			assert.Equal(t, tt.weightNum, r.WeightNum())
		})
	}
}

func TestWeightedRankerRank(t *testing.T) {
	r := NewWeightedRanker("0.25,0.75", 2)
	require.NoError(t, r.Parse())

	score, err := r.Rank([]float64{4, 8})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, score, 1e-12)

	_, err = r.Rank([]float64{1})
	assert.Equal(t, errors.ErrInvalidParam, errors.GetCode(err))

	inert := NewWeightedRanker("", 3)
	require.NoError(t, inert.Parse())
	score, err = inert.Rank([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6.0, score)
}
