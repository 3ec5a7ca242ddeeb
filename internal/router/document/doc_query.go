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

package document

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/vearch/gammareq/internal/config"
	"github.com/vearch/gammareq/internal/engine/sdk/go/gamma"
	"github.com/vearch/gammareq/internal/entity"
	"github.com/vearch/gammareq/internal/entity/request"
	"github.com/vearch/gammareq/internal/pkg/cbbytes"
	"github.com/vearch/gammareq/internal/pkg/errors"
	"github.com/vearch/gammareq/internal/pkg/log"
	"github.com/vearch/gammareq/internal/pkg/vjson"
)

const (
	DefaultSize    = config.DefaultTopN
	WeightedRanker = gamma.WeightedRankerType

	termSeparator = '\001'
)

// term filter is_union values
const (
	termUnion int32 = 1
	termNotIn int32 = 2
)

type VectorQuery struct {
	Field        string          `json:"field"`
	FeatureData  json.RawMessage `json:"feature"`
	Feature      []float32       `json:"-"`
	FeatureUint8 []uint8         `json:"-"`
	Symbol       string          `json:"symbol"`
	Value        *float64        `json:"value"`
	Format       *string         `json:"format,omitempty"`
	MinScore     *float64        `json:"min_score,omitempty"`
	MaxScore     *float64        `json:"max_score,omitempty"`
	IndexType    string          `json:"index_type"`
}

type Range struct {
	Gt  json.RawMessage
	Gte json.RawMessage
	Lt  json.RawMessage
	Lte json.RawMessage
}

type Term struct {
	Value   json.RawMessage
	IsUnion int32
}

var recorder = NewMetricsRecorder()

// SearchToRequest builds an engine request from a router search body
// checked against the space schema. A nil cfg uses the defaults.
func SearchToRequest(searchDoc *request.SearchDocumentRequest, space *entity.Space, cfg *config.RequestCfg) (req *gamma.Request, err error) {
	if searchDoc == nil {
		err = errors.MissingParam("search body")
		recorder.RecordBuild(err, 0, 0)
		return nil, err
	}
	start := time.Now()
	defer func() {
		recorder.RecordBuild(err, len(searchDoc.Vectors), time.Since(start))
	}()

	if space == nil {
		return nil, errors.SpaceNotFound(searchDoc.SpaceName)
	}
	if cfg == nil {
		cfg = config.Default().Request
	}
	proMap, err := space.Properties()
	if err != nil {
		return nil, err
	}

	req = &gamma.Request{}
	req.SetL2Sqrt(searchDoc.L2Sqrt)
	req.SetBruteForceSearch(searchDoc.IsBruteSearch)

	if len(searchDoc.IndexParams) > 0 {
		if !vjson.Valid(searchDoc.IndexParams) {
			return nil, errors.Newf(errors.ErrInvalidParam, "index_params is not json: %s", string(searchDoc.IndexParams))
		}
		req.SetIndexParams(string(searchDoc.IndexParams))
	}

	topN := searchDoc.Limit
	if topN == 0 {
		topN = cfg.DefaultTopN
	}
	if topN < 0 {
		return nil, errors.Newf(errors.ErrInvalidParam, "limit should be gt 0, got %d", topN)
	}
	req.SetTopN(topN)

	fields, err := searchFields(searchDoc, proMap)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		req.AddField(f)
	}

	if searchDoc.L2Sqrt {
		if metricType, err := space.MetricType(); err != nil {
			return nil, err
		} else if metricType != "" && metricType != "L2" {
			log.Warnf("l2_sqrt set on space [%s] with metric type [%s]", space.Name, metricType)
		}
	}

	if err = parseSearch(searchDoc.Vectors, searchDoc.Filters, req, space, proMap, cfg); err != nil {
		return nil, err
	}

	if len(searchDoc.Ranker) > 0 && len(searchDoc.Vectors) > 1 {
		if err = parseRanker(searchDoc.Ranker, req, cfg); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func searchFields(searchDoc *request.SearchDocumentRequest, proMap map[string]*entity.SpaceProperties) ([]string, error) {
	fields := make([]string, 0, len(searchDoc.Fields)+1)
	vectorFields := make([]string, 0)

	if len(searchDoc.Fields) == 0 {
		for fieldName, property := range proMap {
			if property.FieldType == entity.FieldType_VECTOR {
				vectorFields = append(vectorFields, fieldName)
			} else {
				fields = append(fields, fieldName)
			}
		}
		sort.Strings(fields)
		sort.Strings(vectorFields)
		if searchDoc.VectorValue {
			fields = append(fields, vectorFields...)
		}
	} else {
		for _, field := range searchDoc.Fields {
			if field != entity.IdField && proMap[field] == nil {
				return nil, errors.Newf(errors.ErrFieldNotFound, "field [%s] is not exist in the space", field)
			}
			fields = append(fields, field)
		}
	}

	for _, f := range fields {
		if f == entity.IdField {
			return fields, nil
		}
	}
	return append(fields, entity.IdField), nil
}

func parseSearch(vectors []json.RawMessage, filters *request.Filter, req *gamma.Request, space *entity.Space, proMap map[string]*entity.SpaceProperties, cfg *config.RequestCfg) error {
	var reqNum int

	if len(vectors) > 0 {
		req.SetMultiVectorRank(1)
		vqs, n, err := parseVectors(vectors, space, proMap)
		if err != nil {
			return err
		}
		for _, vq := range vqs {
			req.AddVectorQuery(vq)
		}
		reqNum = n
	}

	rfs, tfs, err := parseFilter(filters, proMap)
	if err != nil {
		return err
	}
	for _, rf := range rfs {
		req.AddRangeFilter(rf)
	}
	for _, tf := range tfs {
		req.AddTermFilter(tf)
	}

	if reqNum <= 0 {
		reqNum = int(cfg.DefaultReqNum)
	}
	req.SetReqNum(int32(reqNum))
	return nil
}

func parseFilter(filters *request.Filter, proMap map[string]*entity.SpaceProperties) ([]gamma.RangeFilter, []gamma.TermFilter, error) {
	if filters == nil {
		return nil, nil, nil
	}
	if filters.Operator != request.FilterOperatorAnd {
		return nil, nil, errors.Newf(errors.ErrInvalidParam, "filter operator [%s] not supported, only %s", filters.Operator, request.FilterOperatorAnd)
	}

	rangeFields := make([]string, 0)
	rangeConditionMap := make(map[string]*Range)
	termFields := make([]string, 0)
	termConditionMap := make(map[string]*Term)

	rangeOf := func(field string) *Range {
		cm, ok := rangeConditionMap[field]
		if !ok {
			cm = &Range{}
			rangeConditionMap[field] = cm
			rangeFields = append(rangeFields, field)
		}
		return cm
	}

	for _, condition := range filters.Conditions {
		switch strings.ToUpper(strings.TrimSpace(condition.Operator)) {
		case "<":
			rangeOf(condition.Field).Lt = condition.Value
		case "<=":
			rangeOf(condition.Field).Lte = condition.Value
		case ">":
			rangeOf(condition.Field).Gt = condition.Value
		case ">=":
			rangeOf(condition.Field).Gte = condition.Value
		case "IN", "NOT IN":
			isUnion := termUnion
			if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(condition.Operator)), "NOT") {
				isUnion = termNotIn
			}
			tmp := make([]interface{}, 0)
			if err := vjson.Unmarshal(condition.Value, &tmp); err != nil {
				log.Error(err)
				return nil, nil, errors.Wrapf(errors.ErrInvalidParam, err, "%s value of field [%s] should be an array", condition.Operator, condition.Field)
			}
			tm, ok := termConditionMap[condition.Field]
			if !ok {
				tm = &Term{}
				termConditionMap[condition.Field] = tm
				termFields = append(termFields, condition.Field)
			}
			tm.Value, tm.IsUnion = condition.Value, isUnion
		default:
			return nil, nil, errors.Newf(errors.ErrInvalidParam, "filter condition operator [%s] not supported", condition.Operator)
		}
	}

	rfs, err := parseRange(rangeFields, rangeConditionMap, proMap)
	if err != nil {
		return nil, nil, err
	}
	tfs, err := parseTerm(termFields, termConditionMap, proMap)
	if err != nil {
		return nil, nil, err
	}
	return rfs, tfs, nil
}

func parseRanker(data json.RawMessage, req *gamma.Request, cfg *config.RequestCfg) error {
	ranker := &request.Ranker{}
	if err := vjson.Unmarshal(data, ranker); err != nil {
		return errors.Wrapf(errors.ErrInvalidParam, err, "ranker param convert json %s", string(data))
	}
	rankerType := cfg.RankerType
	if rankerType == "" {
		rankerType = WeightedRanker
	}
	if ranker.Type != rankerType {
		return errors.Newf(errors.ErrInvalidParam, "unsupport ranker type: %s, now only support %s", ranker.Type, rankerType)
	}
	return req.SetRanker(string(data), len(req.VecFields()))
}

func unmarshalArray[T any](data []byte, dimension int) ([]T, error) {
	var result []T
	if err := vjson.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidParam, err, "vector embedding %s", string(data))
	}
	if len(result) < dimension {
		return nil, errors.Newf(errors.ErrInvalidParam, "vector embedding length [%d] err, should be:[%d]", len(result), dimension)
	}
	return result, nil
}

func parseVectors(tmpArr []json.RawMessage, space *entity.Space, proMap map[string]*entity.SpaceProperties) ([]gamma.VectorQuery, int, error) {
	var (
		err    error
		reqNum int
	)
	defaultIndexType := ""
	if space.Index != nil {
		defaultIndexType = space.Index.Type
	}

	vqs := make([]gamma.VectorQuery, 0, len(tmpArr))
	for i := 0; i < len(tmpArr); i++ {
		vqTemp := &VectorQuery{}
		if err = vjson.Unmarshal(tmpArr[i], vqTemp); err != nil {
			return nil, 0, errors.Wrapf(errors.ErrInvalidParam, err, "vector query %d", i)
		}

		indexType := defaultIndexType
		if vqTemp.IndexType != "" {
			indexType = vqTemp.IndexType
		}

		docField := proMap[vqTemp.Field]
		if docField == nil {
			return nil, 0, errors.Newf(errors.ErrFieldNotFound, "field:[%s] not found in space fields", vqTemp.Field)
		}
		if docField.FieldType != entity.FieldType_VECTOR {
			return nil, 0, errors.Newf(errors.ErrInvalidParam, "field:[%s] is not vector type", vqTemp.Field)
		}
		if len(vqTemp.FeatureData) == 0 {
			return nil, 0, errors.Newf(errors.ErrInvalidParam, "vector field:[%s] embedding is null", vqTemp.Field)
		}

		d := docField.Dimension
		var queryNum, rest, length int
		if indexType == entity.BinaryIVF {
			if d < 8 {
				return nil, 0, errors.Newf(errors.ErrInvalidParam, "binary vector field:[%s] dimension [%d] less than 8", vqTemp.Field, d)
			}
			if vqTemp.FeatureUint8, err = unmarshalArray[uint8](vqTemp.FeatureData, d/8); err != nil {
				return nil, 0, err
			}
			length = len(vqTemp.FeatureUint8)
			queryNum, rest = length/(d/8), length%(d/8)
		} else {
			if vqTemp.Feature, err = unmarshalArray[float32](vqTemp.FeatureData, d); err != nil {
				return nil, 0, err
			}
			length = len(vqTemp.Feature)
			queryNum, rest = length/d, length%d
		}

		if queryNum == 0 || rest != 0 {
			return nil, 0, errors.Newf(errors.ErrInvalidParam, "vector field:[%s] embedding length [%d] err, dimension [%d] needs to be divided", vqTemp.Field, length, d)
		}

		if reqNum == 0 {
			reqNum = queryNum
		} else if reqNum != queryNum {
			return nil, 0, errors.Newf(errors.ErrInvalidParam, "vector field:[%s] query num [%d] not same as [%d]", vqTemp.Field, queryNum, reqNum)
		}

		if indexType != entity.BinaryIVF && vqTemp.Format != nil && len(*vqTemp.Format) > 0 {
			switch *vqTemp.Format {
			case "normalization", "normal", "no":
			default:
				return nil, 0, errors.Newf(errors.ErrInvalidParam, "unknow vector process format:[%s]", *vqTemp.Format)
			}
		}

		vq, err := vqTemp.ToC(indexType)
		if err != nil {
			return nil, 0, err
		}
		vqs = append(vqs, vq)
	}
	return vqs, reqNum, nil
}

func parseRange(fields []string, rangeConditionMap map[string]*Range, proMap map[string]*entity.SpaceProperties) ([]gamma.RangeFilter, error) {
	rangeFilters := make([]gamma.RangeFilter, 0, len(fields))

	for _, field := range fields {
		rv := rangeConditionMap[field]
		docField := proMap[field]

		if docField == nil {
			return nil, errors.Newf(errors.ErrFieldNotFound, "field:[%s] not found in space fields", field)
		}
		if docField.FieldType == entity.FieldType_STRING || docField.FieldType == entity.FieldType_STRINGARRAY {
			return nil, errors.Newf(errors.ErrInvalidParam, "range filter should be numberic type, field:[%s] is string which should be term filter", field)
		}
		if docField.Option&entity.FieldOption_Index != entity.FieldOption_Index {
			return nil, errors.Newf(errors.ErrInvalidParam, "field:[%s] not set index", field)
		}

		var (
			start, end                 json.RawMessage
			minInclusive, maxInclusive bool
		)
		if rv.Gte != nil {
			minInclusive, start = true, rv.Gte
		} else if rv.Gt != nil {
			start = rv.Gt
		}
		if rv.Lte != nil {
			maxInclusive, end = true, rv.Lte
		} else if rv.Lt != nil {
			end = rv.Lt
		}

		min, max, err := rangeBounds(field, docField.FieldType, start, end)
		if err != nil {
			return nil, err
		}

		minByte, err := cbbytes.ValueToByte(min)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidParam, err, "range filter field [%s] lower value", field)
		}
		maxByte, err := cbbytes.ValueToByte(max)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidParam, err, "range filter field [%s] upper value", field)
		}

		rangeFilters = append(rangeFilters, gamma.RangeFilter{
			Field:        field,
			LowerValue:   minByte,
			UpperValue:   maxByte,
			IncludeLower: minInclusive,
			IncludeUpper: maxInclusive,
		})
	}

	return rangeFilters, nil
}

// rangeBounds decodes both bounds in the width of the field type. A missing
// bound becomes the extreme of that type.
func rangeBounds(field string, fieldType entity.FieldType, start, end json.RawMessage) (interface{}, interface{}, error) {
	switch fieldType {
	case entity.FieldType_INT:
		minNum, maxNum := int32(math.MinInt32), int32(math.MaxInt32)
		if err := unmarshalBound(field, start, &minNum); err != nil {
			return nil, nil, err
		}
		if err := unmarshalBound(field, end, &maxNum); err != nil {
			return nil, nil, err
		}
		return minNum, maxNum, nil
	case entity.FieldType_LONG:
		minNum, maxNum := int64(math.MinInt64), int64(math.MaxInt64)
		if err := unmarshalBound(field, start, &minNum); err != nil {
			return nil, nil, err
		}
		if err := unmarshalBound(field, end, &maxNum); err != nil {
			return nil, nil, err
		}
		return minNum, maxNum, nil
	case entity.FieldType_FLOAT:
		minNum, maxNum := float32(-math.MaxFloat32), float32(math.MaxFloat32)
		if err := unmarshalBound(field, start, &minNum); err != nil {
			return nil, nil, err
		}
		if err := unmarshalBound(field, end, &maxNum); err != nil {
			return nil, nil, err
		}
		return minNum, maxNum, nil
	case entity.FieldType_DOUBLE:
		minNum, maxNum := -math.MaxFloat64, math.MaxFloat64
		if err := unmarshalBound(field, start, &minNum); err != nil {
			return nil, nil, err
		}
		if err := unmarshalBound(field, end, &maxNum); err != nil {
			return nil, nil, err
		}
		return minNum, maxNum, nil
	case entity.FieldType_DATE:
		minNum, maxNum := int64(math.MinInt64), int64(math.MaxInt64)
		var err error
		if start != nil {
			if minNum, err = dateBound(field, start); err != nil {
				return nil, nil, err
			}
		}
		if end != nil {
			if maxNum, err = dateBound(field, end); err != nil {
				return nil, nil, err
			}
		}
		return minNum, maxNum, nil
	default:
		return nil, nil, errors.Newf(errors.ErrInvalidParam, "range filter not supported on field:[%s] of type %s", field, fieldType)
	}
}

func unmarshalBound(field string, data json.RawMessage, v interface{}) error {
	if data == nil {
		return nil
	}
	if err := vjson.Unmarshal(data, v); err != nil {
		return errors.Wrapf(errors.ErrInvalidParam, err, "field [%s] range value %s", field, string(data))
	}
	return nil
}

// dateBound reads unix seconds or a date string and returns nanoseconds.
func dateBound(field string, data json.RawMessage) (int64, error) {
	var seconds int64
	if err := vjson.Unmarshal(data, &seconds); err == nil {
		return seconds * 1e9, nil
	}
	var dateStr string
	if err := vjson.Unmarshal(data, &dateStr); err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidParam, err, "field [%s] date %s", field, string(data))
	}
	f, err := cast.ToTimeE(dateStr)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidParam, err, "field [%s] date %s", field, dateStr)
	}
	return f.UnixNano(), nil
}

func parseTerm(fields []string, tm map[string]*Term, proMap map[string]*entity.SpaceProperties) ([]gamma.TermFilter, error) {
	termFilters := make([]gamma.TermFilter, 0, len(fields))

	for _, field := range fields {
		rv := tm[field]
		fd := proMap[field]

		if fd == nil {
			return nil, errors.Newf(errors.ErrFieldNotFound, "field:[%s] not found in space fields", field)
		}
		if fd.FieldType != entity.FieldType_STRING && fd.FieldType != entity.FieldType_STRINGARRAY {
			return nil, errors.Newf(errors.ErrInvalidParam, "term filter should be string type or stringArray type, field:[%s] is numberic type which should be range filter", field)
		}
		if fd.Option&entity.FieldOption_Index != entity.FieldOption_Index {
			return nil, errors.Newf(errors.ErrInvalidParam, "field:[%s] not set index, please check space", field)
		}

		buf := bytes.Buffer{}
		var v interface{}
		if err := vjson.Unmarshal(rv.Value, &v); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidParam, err, "unmarshal [%s]", string(rv.Value))
		}
		if ia, ok := v.([]interface{}); ok {
			for i, obj := range ia {
				buf.WriteString(cast.ToString(obj))
				if i != len(ia)-1 {
					buf.WriteByte(termSeparator)
				}
			}
		} else {
			buf.WriteString(cast.ToString(v))
		}

		termFilters = append(termFilters, gamma.TermFilter{
			Field:   field,
			Value:   buf.Bytes(),
			IsUnion: rv.IsUnion,
		})
	}

	return termFilters, nil
}

func (query *VectorQuery) ToC(indexType string) (gamma.VectorQuery, error) {
	var codeByte []byte
	if indexType == entity.BinaryIVF {
		codeByte = cbbytes.UInt8ArrayToByteArray(query.FeatureUint8)
	} else {
		code, err := cbbytes.FloatArrayByte(query.Feature)
		if err != nil {
			return gamma.VectorQuery{}, errors.Wrapf(errors.ErrInvalidParam, err, "vector field:[%s] feature", query.Field)
		}
		codeByte = code
	}

	minScore, maxScore := -math.MaxFloat64, math.MaxFloat64
	if query.MinScore != nil {
		minScore = *query.MinScore
	}
	if query.MaxScore != nil {
		maxScore = *query.MaxScore
	}

	if query.Value != nil {
		switch strings.TrimSpace(query.Symbol) {
		case ">", ">=":
			minScore = *query.Value
		case "<", "<=":
			maxScore = *query.Value
		default:
			return gamma.VectorQuery{}, errors.Newf(errors.ErrInvalidParam, "symbol value unknow:[%s]", query.Symbol)
		}
	}

	return gamma.VectorQuery{
		Name:      query.Field,
		Value:     codeByte,
		MinScore:  minScore,
		MaxScore:  maxScore,
		IndexType: indexType,
	}, nil
}
