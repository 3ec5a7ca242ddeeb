/**
 * Copyright 2019 The Vearch Authors.
 *
 * This source code is licensed under the Apache License, Version 2.0 license
 * found in the LICENSE file in the root directory of this source tree.
 */

package gamma

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/vearch/gammareq/internal/pkg/errors"
)

// RequestView is the exported, tagged form of a Request used by the dump
// codecs.
type RequestView struct {
	ReqNum           int32             `json:"req_num"`
	TopN             int32             `json:"topn"`
	BruteForceSearch int32             `json:"brute_force_search"`
	VecFields        []VectorQueryView `json:"vec_fields"`
	Fields           []string          `json:"fields"`
	RangeFilters     []RangeFilterView `json:"range_filters"`
	TermFilters      []TermFilterView  `json:"term_filters"`
	IndexParams      string            `json:"index_params"`
	MultiVectorRank  int32             `json:"multi_vector_rank"`
	L2Sqrt           bool              `json:"l2_sqrt"`
	Ranker           string            `json:"ranker"`
	RankerWeights    []float64         `json:"ranker_weights,omitempty"`
}

type VectorQueryView struct {
	Name      string  `json:"name"`
	Value     []byte  `json:"value"`
	MinScore  Score   `json:"min_score"`
	MaxScore  Score   `json:"max_score"`
	IndexType string  `json:"index_type"`
}

type RangeFilterView struct {
	Field        string `json:"field"`
	LowerValue   []byte `json:"lower_value"`
	UpperValue   []byte `json:"upper_value"`
	IncludeLower bool   `json:"include_lower"`
	IncludeUpper bool   `json:"include_upper"`
}

type TermFilterView struct {
	Field   string `json:"field"`
	Value   []byte `json:"value"`
	IsUnion int32  `json:"is_union"`
}

func (request *Request) View() *RequestView {
	view := &RequestView{
		ReqNum:           request.reqNum,
		TopN:             request.topN,
		BruteForceSearch: request.bruteForceSearch,
		Fields:           append([]string(nil), request.fields...),
		IndexParams:      request.indexParams,
		MultiVectorRank:  request.multiVectorRank,
		L2Sqrt:           request.l2Sqrt,
	}
	for _, vq := range request.vecFields {
		view.VecFields = append(view.VecFields, VectorQueryView{
			Name:      vq.Name,
			Value:     vq.Value,
			MinScore:  Score(vq.MinScore),
			MaxScore:  Score(vq.MaxScore),
			IndexType: vq.IndexType,
		})
	}
	for _, rf := range request.rangeFilters {
		view.RangeFilters = append(view.RangeFilters, RangeFilterView(rf))
	}
	for _, tf := range request.termFilters {
		view.TermFilters = append(view.TermFilters, TermFilterView(tf))
	}
	if request.ranker != nil {
		view.Ranker = request.ranker.RawStr()
		if wr, ok := request.ranker.(*WeightedRanker); ok && !wr.Inert() {
			view.RankerWeights = wr.Weights()
		}
	}
	return view
}

// ToRequest builds a new Request from the view. A non empty ranker is parsed
// against the number of vector queries.
func (view *RequestView) ToRequest() (*Request, error) {
	request := &Request{
		reqNum:           view.ReqNum,
		topN:             view.TopN,
		bruteForceSearch: view.BruteForceSearch,
		fields:           append([]string(nil), view.Fields...),
		indexParams:      view.IndexParams,
		multiVectorRank:  view.MultiVectorRank,
		l2Sqrt:           view.L2Sqrt,
	}
	for _, vq := range view.VecFields {
		request.AddVectorQuery(VectorQuery{
			Name:      vq.Name,
			Value:     vq.Value,
			MinScore:  float64(vq.MinScore),
			MaxScore:  float64(vq.MaxScore),
			IndexType: vq.IndexType,
		})
	}
	for _, rf := range view.RangeFilters {
		request.AddRangeFilter(RangeFilter(rf))
	}
	for _, tf := range view.TermFilters {
		request.AddTermFilter(TermFilter(tf))
	}
	if view.Ranker != "" {
		if err := request.SetRanker(view.Ranker, len(view.VecFields)); err != nil {
			return nil, err
		}
	}
	return request, nil
}

// Score is a vector query bound in a dump. JSON has no infinities or NaN, so
// those are written as "+Inf", "-Inf" and "NaN(0x<bits>)"; finite values stay
// numbers.
type Score float64

func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(f):
		return []byte(fmt.Sprintf(`"NaN(0x%016x)"`, math.Float64bits(f))), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (s *Score) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if len(text) == 0 || text[0] != '"' {
		f, err := cast.ToFloat64E(text)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidParam, err, "score %s", text)
		}
		*s = Score(f)
		return nil
	}

	text = strings.Trim(text, `"`)
	switch {
	case text == "+Inf" || text == "Inf":
		*s = Score(math.Inf(1))
	case text == "-Inf":
		*s = Score(math.Inf(-1))
	case text == "NaN":
		*s = Score(math.NaN())
	case strings.HasPrefix(text, "NaN(0x") && strings.HasSuffix(text, ")"):
		bits, err := strconv.ParseUint(text[len("NaN(0x"):len(text)-1], 16, 64)
		if err != nil || !math.IsNaN(math.Float64frombits(bits)) {
			return errors.Newf(errors.ErrInvalidParam, "score %s is not a NaN", text)
		}
		*s = Score(math.Float64frombits(bits))
	default:
		return errors.Newf(errors.ErrInvalidParam, "score %s", text)
	}
	return nil
}
