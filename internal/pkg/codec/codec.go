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

package codec

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/vearch/gammareq/internal/pkg/errors"
	"github.com/vearch/gammareq/internal/pkg/log"
	"github.com/vearch/gammareq/internal/pkg/vjson"
	"github.com/vmihailenco/msgpack"
)

// Codec turns inspection views into bytes and back.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	ContentType() string
}

type JSONCodec struct {
	Indent bool
}

func (c JSONCodec) Marshal(v any) ([]byte, error) {
	if c.Indent {
		return vjson.MarshalIndent(v, "", "  ")
	}
	return vjson.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return vjson.Unmarshal(data, v)
}

func (JSONCodec) ContentType() string {
	return "application/json"
}

type MsgpackCodec struct{}

func (MsgpackCodec) Unmarshal(data []byte, i any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(cast.ToString(r))
			err = errors.MalformedInput("msgpack decode: %v", r)
		}
	}()
	return msgpack.NewDecoder(bytes.NewBuffer(data)).UseJSONTag(true).Decode(i)
}

func (MsgpackCodec) Marshal(i any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(cast.ToString(r))
			data, err = nil, errors.Serialization("msgpack encode: %v", r)
		}
	}()
	var buf bytes.Buffer
	err = msgpack.NewEncoder(&buf).UseCompactEncoding(true).UseJSONTag(true).Encode(i)
	return buf.Bytes(), err
}

func (MsgpackCodec) ContentType() string {
	return "application/msgpack"
}

var (
	_ Codec = JSONCodec{}
	_ Codec = MsgpackCodec{}
)

// ByName resolves "json" or "msgpack".
func ByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "json", "":
		return JSONCodec{Indent: true}, nil
	case "msgpack", "mp":
		return MsgpackCodec{}, nil
	default:
		return nil, errors.NotSupported(fmt.Sprintf("dump format %s", name))
	}
}
