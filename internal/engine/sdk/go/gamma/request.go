/**
 * Copyright 2019 The Vearch Authors.
 *
 * This source code is licensed under the Apache License, Version 2.0 license
 * found in the LICENSE file in the root directory of this source tree.
 */

package gamma

import (
	"math"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/vearch/gammareq/internal/engine/idl/fbs-gen/go/gamma_api"
	"github.com/vearch/gammareq/internal/pkg/errors"
	"github.com/vearch/gammareq/internal/pkg/log"
	"github.com/vearch/gammareq/internal/pkg/metrics"
)

// maxFieldSize bounds every string and byte vector written to a buffer.
var maxFieldSize = math.MaxInt32

var recorder = metrics.NewCodecRecorder()

type VectorQuery struct {
	Name      string
	Value     []byte
	MinScore  float64
	MaxScore  float64
	IndexType string
}

type RangeFilter struct {
	Field        string
	LowerValue   []byte
	UpperValue   []byte
	IncludeLower bool
	IncludeUpper bool
}

type TermFilter struct {
	Field string
	Value []byte
	// 1 union, 0 intersection, 2 not in
	IsUnion int32
}

// Request is a search request for the gamma engine. A Request is built by a
// client or filled once by DeSerialize. It is not safe for concurrent
// mutation.
type Request struct {
	reqNum           int32
	topN             int32
	bruteForceSearch int32
	vecFields        []VectorQuery
	fields           []string
	rangeFilters     []RangeFilter
	termFilters      []TermFilter
	indexParams      string
	multiVectorRank  int32
	l2Sqrt           bool
	ranker           Ranker

	decoded bool
}

func (request *Request) ReqNum() int32 { return request.reqNum }

func (request *Request) SetReqNum(reqNum int32) { request.reqNum = reqNum }

func (request *Request) TopN() int32 { return request.topN }

func (request *Request) SetTopN(topN int32) { request.topN = topN }

func (request *Request) BruteForceSearch() int32 { return request.bruteForceSearch }

func (request *Request) SetBruteForceSearch(bruteForceSearch int32) {
	request.bruteForceSearch = bruteForceSearch
}

func (request *Request) MultiVectorRank() int32 { return request.multiVectorRank }

func (request *Request) SetMultiVectorRank(multiVectorRank int32) {
	request.multiVectorRank = multiVectorRank
}

func (request *Request) L2Sqrt() bool { return request.l2Sqrt }

func (request *Request) SetL2Sqrt(l2Sqrt bool) { request.l2Sqrt = l2Sqrt }

func (request *Request) IndexParams() string { return request.indexParams }

func (request *Request) SetIndexParams(indexParams string) { request.indexParams = indexParams }

// VecFields returns the vector queries in insertion order. The slice is
// owned by the request.
func (request *Request) VecFields() []VectorQuery { return request.vecFields }

func (request *Request) AddVectorQuery(vq VectorQuery) {
	request.vecFields = append(request.vecFields, vq)
}

func (request *Request) Fields() []string { return request.fields }

func (request *Request) AddField(field string) {
	request.fields = append(request.fields, field)
}

func (request *Request) RangeFilters() []RangeFilter { return request.rangeFilters }

func (request *Request) AddRangeFilter(rf RangeFilter) {
	request.rangeFilters = append(request.rangeFilters, rf)
}

func (request *Request) TermFilters() []TermFilter { return request.termFilters }

func (request *Request) AddTermFilter(tf TermFilter) {
	request.termFilters = append(request.termFilters, tf)
}

// Ranker returns nil when no ranker is attached.
func (request *Request) Ranker() Ranker { return request.ranker }

// SetRanker parses spec as weightNum weights and attaches the ranker. An
// empty spec attaches an inert ranker. On a parse error the request is left
// without a ranker.
func (request *Request) SetRanker(spec string, weightNum int) error {
	ranker := NewWeightedRanker(spec, weightNum)
	if err := ranker.Parse(); err != nil {
		request.ranker = nil
		return err
	}
	request.ranker = ranker
	return nil
}

// Decoded reports whether the request was filled by DeSerialize.
func (request *Request) Decoded() bool { return request.decoded }

func (request *Request) populated() bool {
	return request.decoded ||
		request.reqNum != 0 || request.topN != 0 || request.bruteForceSearch != 0 ||
		request.multiVectorRank != 0 || request.l2Sqrt || request.indexParams != "" ||
		len(request.vecFields) != 0 || len(request.fields) != 0 ||
		len(request.rangeFilters) != 0 || len(request.termFilters) != 0 ||
		request.ranker != nil
}

func (request *Request) checkSizes() error {
	check := func(what string, n int) error {
		if n > maxFieldSize {
			return errors.Serialization("%s length %d exceeds %d", what, n, maxFieldSize)
		}
		return nil
	}
	for i := range request.vecFields {
		vq := &request.vecFields[i]
		if err := check("vector query name", len(vq.Name)); err != nil {
			return err
		}
		if err := check("vector query value", len(vq.Value)); err != nil {
			return err
		}
		if err := check("vector query index type", len(vq.IndexType)); err != nil {
			return err
		}
	}
	for _, field := range request.fields {
		if err := check("field", len(field)); err != nil {
			return err
		}
	}
	for i := range request.rangeFilters {
		rf := &request.rangeFilters[i]
		if err := check("range filter field", len(rf.Field)); err != nil {
			return err
		}
		if err := check("range filter lower value", len(rf.LowerValue)); err != nil {
			return err
		}
		if err := check("range filter upper value", len(rf.UpperValue)); err != nil {
			return err
		}
	}
	for i := range request.termFilters {
		tf := &request.termFilters[i]
		if err := check("term filter field", len(tf.Field)); err != nil {
			return err
		}
		if err := check("term filter value", len(tf.Value)); err != nil {
			return err
		}
	}
	if err := check("index params", len(request.indexParams)); err != nil {
		return err
	}
	if request.ranker != nil {
		return check("ranker", len(request.ranker.RawStr()))
	}
	return nil
}

// Serialize encodes the request into a new buffer owned by the caller.
func (request *Request) Serialize() (buffer []byte, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			buffer = nil
			err = errors.Serialization("build request buffer: %v", r)
		}
		if err != nil {
			log.Errorf("serialize request failed: %v", err)
		}
		record(metrics.OpEncode, err, len(buffer), start)
	}()

	if err = request.checkSizes(); err != nil {
		return nil, err
	}

	builder := flatbuffers.NewBuilder(1024)

	vectorQuerys := make([]flatbuffers.UOffsetT, len(request.vecFields))
	for i := range request.vecFields {
		vq := &request.vecFields[i]
		name := builder.CreateString(vq.Name)
		value := builder.CreateByteVector(vq.Value)
		indexType := builder.CreateString(vq.IndexType)
		gamma_api.VectorQueryStart(builder)
		gamma_api.VectorQueryAddName(builder, name)
		gamma_api.VectorQueryAddValue(builder, value)
		// scores are always stored so that -0.0 keeps its sign bit
		builder.PrependFloat64(vq.MinScore)
		builder.Slot(2)
		builder.PrependFloat64(vq.MaxScore)
		builder.Slot(3)
		gamma_api.VectorQueryAddIndexType(builder, indexType)
		vectorQuerys[i] = gamma_api.VectorQueryEnd(builder)
	}

	fields := make([]flatbuffers.UOffsetT, len(request.fields))
	for i, field := range request.fields {
		fields[i] = builder.CreateString(field)
	}

	rangeFilters := make([]flatbuffers.UOffsetT, len(request.rangeFilters))
	for i := range request.rangeFilters {
		rf := &request.rangeFilters[i]
		field := builder.CreateString(rf.Field)
		lowerValue := builder.CreateByteVector(rf.LowerValue)
		upperValue := builder.CreateByteVector(rf.UpperValue)
		gamma_api.RangeFilterStart(builder)
		gamma_api.RangeFilterAddField(builder, field)
		gamma_api.RangeFilterAddLowerValue(builder, lowerValue)
		gamma_api.RangeFilterAddUpperValue(builder, upperValue)
		gamma_api.RangeFilterAddIncludeLower(builder, rf.IncludeLower)
		gamma_api.RangeFilterAddIncludeUpper(builder, rf.IncludeUpper)
		rangeFilters[i] = gamma_api.RangeFilterEnd(builder)
	}

	termFilters := make([]flatbuffers.UOffsetT, len(request.termFilters))
	for i := range request.termFilters {
		tf := &request.termFilters[i]
		field := builder.CreateString(tf.Field)
		value := builder.CreateByteVector(tf.Value)
		gamma_api.TermFilterStart(builder)
		gamma_api.TermFilterAddField(builder, field)
		gamma_api.TermFilterAddValue(builder, value)
		gamma_api.TermFilterAddIsUnion(builder, tf.IsUnion)
		termFilters[i] = gamma_api.TermFilterEnd(builder)
	}

	v := offsetVector(builder, gamma_api.RequestStartVecFieldsVector, vectorQuerys)
	f := offsetVector(builder, gamma_api.RequestStartFieldsVector, fields)
	r := offsetVector(builder, gamma_api.RequestStartRangeFiltersVector, rangeFilters)
	t := offsetVector(builder, gamma_api.RequestStartTermFiltersVector, termFilters)

	indexParams := builder.CreateString(request.indexParams)
	rankerStr := ""
	if request.ranker != nil {
		rankerStr = request.ranker.RawStr()
	}
	ranker := builder.CreateString(rankerStr)

	gamma_api.RequestStart(builder)
	gamma_api.RequestAddReqNum(builder, request.reqNum)
	gamma_api.RequestAddTopn(builder, request.topN)
	gamma_api.RequestAddBruteForceSearch(builder, request.bruteForceSearch)
	gamma_api.RequestAddVecFields(builder, v)
	gamma_api.RequestAddFields(builder, f)
	gamma_api.RequestAddRangeFilters(builder, r)
	gamma_api.RequestAddTermFilters(builder, t)
	gamma_api.RequestAddIndexParams(builder, indexParams)
	gamma_api.RequestAddMultiVectorRank(builder, request.multiVectorRank)
	gamma_api.RequestAddL2Sqrt(builder, request.l2Sqrt)
	gamma_api.RequestAddRanker(builder, ranker)
	builder.Finish(gamma_api.RequestEnd(builder))

	finished := builder.FinishedBytes()
	buffer = make([]byte, len(finished))
	copy(buffer, finished)
	if log.IsDebugEnabled() {
		log.Debugf("serialized request: vec_fields [%d], fields [%d], range_filters [%d], term_filters [%d], bytes [%d]",
			len(request.vecFields), len(request.fields), len(request.rangeFilters), len(request.termFilters), len(buffer))
	}
	return buffer, nil
}

func offsetVector(builder *flatbuffers.Builder, startVector func(*flatbuffers.Builder, int) flatbuffers.UOffsetT, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	startVector(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	return builder.EndVector(len(offsets))
}

// DeSerialize fills an empty request from buffer. Every byte field is copied,
// so buffer may be reused once DeSerialize returns. On error the request is
// left unchanged.
func (request *Request) DeSerialize(buffer []byte) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = errors.MalformedInput("read request buffer: %v", r)
		}
		if err != nil {
			log.Warnf("deserialize request failed: %v", err)
		}
		record(metrics.OpDecode, err, len(buffer), start)
	}()

	if request.populated() {
		return errors.Precondition("request is already populated, decode into a new request")
	}
	if err = verifyRequest(buffer); err != nil {
		return err
	}

	decoded, err := readRequest(gamma_api.GetRootAsRequest(buffer, 0))
	if err != nil {
		return err
	}
	*request = *decoded
	request.decoded = true
	if log.IsDebugEnabled() {
		log.Debugf("deserialized request: vec_fields [%d], fields [%d], range_filters [%d], term_filters [%d], bytes [%d]",
			len(request.vecFields), len(request.fields), len(request.rangeFilters), len(request.termFilters), len(buffer))
	}
	return nil
}

func readRequest(root *gamma_api.Request) (*Request, error) {
	request := &Request{
		reqNum:           root.ReqNum(),
		topN:             root.Topn(),
		bruteForceSearch: root.BruteForceSearch(),
		indexParams:      string(root.IndexParams()),
		multiVectorRank:  root.MultiVectorRank(),
		l2Sqrt:           root.L2Sqrt(),
	}

	if n := root.VecFieldsLength(); n > 0 {
		request.vecFields = make([]VectorQuery, n)
		var vq gamma_api.VectorQuery
		for i := 0; i < n; i++ {
			root.VecFields(&vq, i)
			request.vecFields[i] = VectorQuery{
				Name:      string(vq.Name()),
				Value:     cloneBytes(vq.ValueBytes()),
				MinScore:  vq.MinScore(),
				MaxScore:  vq.MaxScore(),
				IndexType: string(vq.IndexType()),
			}
		}
	}

	if n := root.FieldsLength(); n > 0 {
		request.fields = make([]string, n)
		for i := 0; i < n; i++ {
			request.fields[i] = string(root.Fields(i))
		}
	}

	if n := root.RangeFiltersLength(); n > 0 {
		request.rangeFilters = make([]RangeFilter, n)
		var rf gamma_api.RangeFilter
		for i := 0; i < n; i++ {
			root.RangeFilters(&rf, i)
			request.rangeFilters[i] = RangeFilter{
				Field:        string(rf.Field()),
				LowerValue:   cloneBytes(rf.LowerValueBytes()),
				UpperValue:   cloneBytes(rf.UpperValueBytes()),
				IncludeLower: rf.IncludeLower(),
				IncludeUpper: rf.IncludeUpper(),
			}
		}
	}

	if n := root.TermFiltersLength(); n > 0 {
		request.termFilters = make([]TermFilter, n)
		var tf gamma_api.TermFilter
		for i := 0; i < n; i++ {
			root.TermFilters(&tf, i)
			request.termFilters[i] = TermFilter{
				Field:   string(tf.Field()),
				Value:   cloneBytes(tf.ValueBytes()),
				IsUnion: tf.IsUnion(),
			}
		}
	}

	if rankerStr := string(root.Ranker()); len(request.vecFields) > 1 && rankerStr != "" {
		ranker := NewWeightedRanker(rankerStr, len(request.vecFields))
		if err := ranker.Parse(); err != nil {
			return nil, err
		}
		request.ranker = ranker
	}
	return request, nil
}

func cloneBytes(b []byte) []byte {
	result := make([]byte, len(b))
	copy(result, b)
	return result
}

func record(operation string, err error, size int, start time.Time) {
	status := metrics.StatusOK
	if err != nil {
		status = errors.GetCode(err).String()
	}
	recorder.Record(operation, status, size, start)
}
