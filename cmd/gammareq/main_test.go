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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearch/gammareq/internal/engine/sdk/go/gamma"
	"github.com/vearch/gammareq/internal/pkg/codec"
	"github.com/vearch/gammareq/internal/pkg/errors"
	"github.com/vearch/gammareq/internal/pkg/vjson"
)

const (
	spaceBody = `{"name": "s", "fields": [
		{"name": "name", "type": "string", "index": {"name": "name", "type": "SCALAR"}},
		{"name": "a", "type": "vector", "dimension": 2},
		{"name": "b", "type": "vector", "dimension": 2}
	], "index": {"name": "gamma", "type": "FLAT"}}`

	searchBody = `{
		"vectors": [{"field": "a", "feature": [1, 2]}, {"field": "b", "feature": [3, 4]}],
		"filters": {"operator": "AND", "conditions": [{"operator": "IN", "field": "name", "value": ["x", "y"]}]},
		"ranker": {"type": "WeightedRanker", "params": [0.4, 0.6]},
		"limit": 5
	}`
)

func writeFile(t *testing.T, dir, name, body string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func encodeFixture(t *testing.T) (string, string) {
	dir := t.TempDir()
	out := filepath.Join(dir, "request.fb")
	err := run([]string{encodeTag,
		"--search", writeFile(t, dir, "search.json", searchBody),
		"--space", writeFile(t, dir, "space.json", spaceBody),
		"-o", out}, &bytes.Buffer{})
	require.NoError(t, err)
	return dir, out
}

func TestEncodeDecode(t *testing.T) {
	_, out := encodeFixture(t)

	var stdout bytes.Buffer
	require.NoError(t, run([]string{decodeTag, "-i", out}, &stdout))

	view := &gamma.RequestView{}
	require.NoError(t, vjson.Unmarshal(stdout.Bytes(), view))
	assert.Equal(t, int32(5), view.TopN)
	assert.Equal(t, int32(1), view.ReqNum)
	require.Len(t, view.VecFields, 2)
	assert.Equal(t, "b", view.VecFields[1].Name)
	require.Len(t, view.TermFilters, 1)
	assert.Equal(t, []byte("x\001y"), view.TermFilters[0].Value)
	assert.Equal(t, []float64{0.4, 0.6}, view.RankerWeights)
	assert.Equal(t, []string{"name", "_id"}, view.Fields)
}

func TestDecodeMsgpack(t *testing.T) {
	dir, out := encodeFixture(t)
	dump := filepath.Join(dir, "request.mp")
	require.NoError(t, run([]string{decodeTag, "-i", out, "-f", "msgpack", "-o", dump}, &bytes.Buffer{}))

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	view := &gamma.RequestView{}
	require.NoError(t, codec.MsgpackCodec{}.Unmarshal(data, view))
	assert.Equal(t, int32(5), view.TopN)
	assert.Len(t, view.VecFields, 2)
}

func TestInspect(t *testing.T) {
	_, out := encodeFixture(t)
	buffer, err := os.ReadFile(out)
	require.NoError(t, err)

	var stdout bytes.Buffer
	require.NoError(t, run([]string{inspectTag, "-i", out}, &stdout))
	assert.Contains(t, stdout.String(), "vec_fields:        2")
	assert.Contains(t, stdout.String(), "term_filters:      1")
	assert.Contains(t, stdout.String(), "ranker:")
	assert.Contains(t, stdout.String(), fmt.Sprintf("%016x", gamma.Fingerprint(buffer)))
}

func TestMaxRequestBytes(t *testing.T) {
	dir, out := encodeFixture(t)
	conf := writeFile(t, dir, "gammareq.toml", "[request]\nmax_request_bytes = 8\n")

	err := run([]string{inspectTag, "--conf", conf, "-i", out}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidParam, errors.GetCode(err))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := writeFile(t, dir, "garbage.fb", "not a flatbuffer")

	assert.Error(t, run(nil, &bytes.Buffer{}))
	assert.Error(t, run([]string{"serve"}, &bytes.Buffer{}))
	assert.Equal(t, errors.ErrMissingParam, errors.GetCode(run([]string{encodeTag}, &bytes.Buffer{})))
	assert.Equal(t, errors.ErrMissingParam, errors.GetCode(run([]string{inspectTag}, &bytes.Buffer{})))
	assert.Equal(t, errors.ErrMalformedInput, errors.GetCode(run([]string{inspectTag, "-i", garbage}, &bytes.Buffer{})))
	assert.Equal(t, errors.ErrNotSupported, errors.GetCode(run([]string{decodeTag, "-i", garbage, "-f", "xml"}, &bytes.Buffer{})))
}

func TestEncodeFromView(t *testing.T) {
	dir, out := encodeFixture(t)
	for _, format := range []string{"json", "msgpack"} {
		t.Run(format, func(t *testing.T) {
			dump := filepath.Join(dir, "request."+format)
			require.NoError(t, run([]string{decodeTag, "-i", out, "-f", format, "-o", dump}, &bytes.Buffer{}))

			again := filepath.Join(dir, "again-"+format+".fb")
			require.NoError(t, run([]string{encodeTag, "--view", dump, "-f", format, "-o", again}, &bytes.Buffer{}))

			want, err := os.ReadFile(out)
			require.NoError(t, err)
			got, err := os.ReadFile(again)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeInfiniteScores(t *testing.T) {
	dir := t.TempDir()
	dump := writeFile(t, dir, "view.json", `{"vec_fields": [
		{"name": "a", "value": "AQI=", "min_score": "-Inf", "max_score": "+Inf"}
	]}`)
	out := filepath.Join(dir, "request.fb")
	require.NoError(t, run([]string{encodeTag, "--view", dump, "-o", out}, &bytes.Buffer{}))

	var stdout bytes.Buffer
	require.NoError(t, run([]string{decodeTag, "-i", out}, &stdout))
	assert.Contains(t, stdout.String(), `"min_score": "-Inf"`)
	assert.Contains(t, stdout.String(), `"max_score": "+Inf"`)
}

func TestMetricsFile(t *testing.T) {
	dir, out := encodeFixture(t)
	metricsFile := filepath.Join(dir, "gammareq.prom")
	require.NoError(t, run([]string{inspectTag, "-i", out, "--metrics-file", metricsFile}, &bytes.Buffer{}))

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gammareq_codec_operations_total{operation="decode",status="ok"}`)
}

func TestReport(t *testing.T) {
	var stderr bytes.Buffer
	code := report(&stderr, errors.MalformedInput("bad buffer"))
	assert.Equal(t, int(errors.ErrMalformedInput.Status()), code)
	assert.Contains(t, stderr.String(), "[kInvalidArgument]")
	assert.Contains(t, stderr.String(), "bad buffer")

	stderr.Reset()
	assert.Equal(t, int(errors.ErrSerialization.Status()), report(&stderr, errors.Serialization("too big")))
	assert.Contains(t, stderr.String(), "[kIOError]")
}
