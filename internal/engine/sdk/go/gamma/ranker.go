/**
 * Copyright 2019 The Vearch Authors.
 *
 * This source code is licensed under the Apache License, Version 2.0 license
 * found in the LICENSE file in the root directory of this source tree.
 */

package gamma

import (
	"math"
	"strings"

	"github.com/spf13/cast"
	"github.com/valyala/fastjson"
	"github.com/vearch/gammareq/internal/pkg/errors"
)

const WeightedRankerType = "WeightedRanker"

// Ranker combines the scores of the vector queries of one request.
type Ranker interface {
	// RawStr is the specification the ranker was built from.
	RawStr() string
	Parse() error
	Rank(scores []float64) (float64, error)
}

// WeightedRanker scores a document as the weighted sum of its per vector
// query scores. The specification is either a comma separated list such as
// "0.5,0.5" or the router form {"type":"WeightedRanker","params":[0.5,0.5]}.
// An empty specification gives an inert ranker which sums scores unweighted.
type WeightedRanker struct {
	rawStr    string
	weightNum int
	weights   []float64
}

func NewWeightedRanker(rawStr string, weightNum int) *WeightedRanker {
	return &WeightedRanker{rawStr: rawStr, weightNum: weightNum}
}

func (r *WeightedRanker) RawStr() string { return r.rawStr }

func (r *WeightedRanker) WeightNum() int { return r.weightNum }

// Weights returns a copy of the parsed weights, empty for an inert ranker.
func (r *WeightedRanker) Weights() []float64 {
	weights := make([]float64, len(r.weights))
	copy(weights, r.weights)
	return weights
}

// Inert reports whether the ranker has no weights to apply.
func (r *WeightedRanker) Inert() bool { return len(r.weights) == 0 }

func (r *WeightedRanker) Parse() error {
	spec := strings.TrimSpace(r.rawStr)
	if spec == "" {
		r.weights = nil
		return nil
	}

	var (
		weights []float64
		err     error
	)
	if spec[0] == '{' || spec[0] == '[' {
		weights, err = parseJSONWeights(spec)
	} else {
		weights, err = parseListWeights(spec)
	}
	if err != nil {
		return err
	}
	if len(weights) != r.weightNum {
		return errors.Newf(errors.ErrInvalidParam, "ranker [%s] has %d weights, want %d", r.rawStr, len(weights), r.weightNum).
			WithDetail("expected", r.weightNum).
			WithDetail("got", len(weights))
	}
	r.weights = weights
	return nil
}

func parseListWeights(spec string) ([]float64, error) {
	parts := strings.Split(spec, ",")
	weights := make([]float64, 0, len(parts))
	for _, p := range parts {
		w, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidParam, err, "ranker weight [%s] is not a number", p)
		}
		if err := checkWeight(w); err != nil {
			return nil, err
		}
		weights = append(weights, w)
	}
	return weights, nil
}

func parseJSONWeights(spec string) ([]float64, error) {
	var p fastjson.Parser
	v, err := p.Parse(spec)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidParam, err, "ranker [%s] is not valid json", spec)
	}

	params := v
	if v.Type() == fastjson.TypeObject {
		if t := v.Get("type"); t != nil {
			if typ := string(t.GetStringBytes()); typ != WeightedRankerType {
				return nil, errors.Newf(errors.ErrInvalidParam, "unsupport ranker type: %s, now only support %s", typ, WeightedRankerType)
			}
		}
		params = v.Get("params")
		if params == nil {
			return nil, errors.Newf(errors.ErrInvalidParam, "ranker [%s] has no params", spec)
		}
	}

	arr, err := params.Array()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidParam, err, "ranker params of [%s] should be an array", spec)
	}
	weights := make([]float64, 0, len(arr))
	for _, item := range arr {
		if item.Type() != fastjson.TypeNumber {
			return nil, errors.Newf(errors.ErrInvalidParam, "ranker weight [%s] is not a number", item.String())
		}
		// fastjson rounds some decimals, the raw text parses exactly
		w, err := cast.ToFloat64E(item.String())
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidParam, err, "ranker weight [%s] is not a number", item.String())
		}
		if err := checkWeight(w); err != nil {
			return nil, err
		}
		weights = append(weights, w)
	}
	return weights, nil
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return errors.Newf(errors.ErrInvalidParam, "ranker weight [%v] is not finite", w)
	}
	return nil
}

// Rank combines one score per vector query.
func (r *WeightedRanker) Rank(scores []float64) (float64, error) {
	var total float64
	if r.Inert() {
		for _, s := range scores {
			total += s
		}
		return total, nil
	}
	if len(scores) != len(r.weights) {
		return 0, errors.Newf(errors.ErrInvalidParam, "got %d scores for %d ranker weights", len(scores), len(r.weights))
	}
	for i, s := range scores {
		total += r.weights[i] * s
	}
	return total, nil
}
