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

package entity

import (
	"encoding/json"
	"fmt"

	"github.com/vearch/gammareq/internal/pkg/errors"
	"github.com/vearch/gammareq/internal/pkg/log"
	"github.com/vearch/gammareq/internal/pkg/vjson"
)

// IdField is the primary key every search returns.
const IdField = "_id"

type FieldType int8

const (
	FieldType_INT FieldType = iota
	FieldType_LONG
	FieldType_FLOAT
	FieldType_DOUBLE
	FieldType_STRING
	FieldType_VECTOR
	FieldType_BOOL
	FieldType_DATE
	FieldType_STRINGARRAY
)

var fieldTypeNames = map[FieldType]string{
	FieldType_INT:         "INT",
	FieldType_LONG:        "LONG",
	FieldType_FLOAT:       "FLOAT",
	FieldType_DOUBLE:      "DOUBLE",
	FieldType_STRING:      "STRING",
	FieldType_VECTOR:      "VECTOR",
	FieldType_BOOL:        "BOOL",
	FieldType_DATE:        "DATE",
	FieldType_STRINGARRAY: "STRINGARRAY",
}

func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FieldType(%d)", t)
}

type FieldOption int32

const (
	FieldOption_Null  FieldOption = 0
	FieldOption_Index FieldOption = 1
)

type Index struct {
	Name   string          `json:"name"`
	Type   string          `json:"type,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
}

const BinaryIVF = "BINARYIVF"

type IndexParams struct {
	Nlinks     int    `json:"nlinks,omitempty"`
	EfSearch   int    `json:"efSearch,omitempty"`
	MetricType string `json:"metric_type,omitempty"`
	Ncentroids int    `json:"ncentroids,omitempty"`
	Nprobe     int    `json:"nprobe,omitempty"`
	Nsubvector int    `json:"nsubvector,omitempty"`
}

type Space struct {
	Name            string                      `json:"name,omitempty"`
	Fields          json.RawMessage             `json:"fields"`
	Index           *Index                      `json:"index,omitempty"`
	SpaceProperties map[string]*SpaceProperties `json:"space_properties,omitempty"`
}

type SpaceProperties struct {
	FieldType FieldType   `json:"field_type"`
	Type      string      `json:"type"`
	Index     *Index      `json:"index,omitempty"`
	Format    *string     `json:"format,omitempty"`
	Dimension int         `json:"dimension,omitempty"`
	Option    FieldOption `json:"option,omitempty"`
}

type Field struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Dimension int     `json:"dimension,omitempty"`
	Format    *string `json:"format,omitempty"`
	Index     *Index  `json:"index,omitempty"`
}

// Properties returns the parsed field map, parsing Fields on first use.
func (s *Space) Properties() (map[string]*SpaceProperties, error) {
	if s.SpaceProperties != nil {
		return s.SpaceProperties, nil
	}
	pro, err := UnmarshalPropertyJSON(s.Fields)
	if err != nil {
		return nil, err
	}
	s.SpaceProperties = pro
	return pro, nil
}

// MetricType reads metric_type from the space index params.
func (s *Space) MetricType() (string, error) {
	if s.Index == nil || len(s.Index.Params) == 0 {
		return "", nil
	}
	indexParams := &IndexParams{}
	if err := vjson.Unmarshal(s.Index.Params, indexParams); err != nil {
		return "", errors.Wrapf(errors.ErrInvalidParam, err, "space index params [%s]", string(s.Index.Params))
	}
	return indexParams.MetricType, nil
}

func UnmarshalPropertyJSON(propertity []byte) (map[string]*SpaceProperties, error) {
	tmpPro := make(map[string]*SpaceProperties)
	tmp := make([]Field, 0)
	if err := vjson.Unmarshal(propertity, &tmp); err != nil {
		log.Error(err)
		return nil, errors.Wrap(errors.ErrInvalidParam, "space fields", err)
	}

	for _, data := range tmp {
		sp := &SpaceProperties{Type: data.Type}

		switch sp.Type {
		case "text", "keyword", "string":
			sp.FieldType = FieldType_STRING
		case "date":
			sp.FieldType = FieldType_DATE
		case "integer", "short", "byte":
			sp.FieldType = FieldType_INT
		case "long":
			sp.FieldType = FieldType_LONG
		case "float":
			sp.FieldType = FieldType_FLOAT
		case "double":
			sp.FieldType = FieldType_DOUBLE
		case "boolean", "bool":
			sp.FieldType = FieldType_BOOL
		case "stringArray", "StringArray":
			sp.FieldType = FieldType_STRINGARRAY
		case "vector":
			sp.FieldType = FieldType_VECTOR
			if data.Dimension <= 0 {
				return nil, errors.Newf(errors.ErrInvalidParam, "dimension can not be zero by field : [%s] ", data.Name)
			}
			sp.Dimension = data.Dimension
			format := data.Format
			if format != nil && !(*format == "normalization" || *format == "normal" || *format == "no") {
				return nil, errors.Newf(errors.ErrInvalidParam, "unknow vector process method:[%s]", *format)
			}
			sp.Format = format
		default:
			return nil, errors.Newf(errors.ErrInvalidParam, "space invalid field type: %s", sp.Type)
		}

		sp.Index = data.Index
		if sp.Index != nil {
			sp.Option = FieldOption_Index
		}
		if _, ok := tmpPro[data.Name]; ok {
			return nil, errors.Newf(errors.ErrInvalidParam, "duplicate field name [%s]", data.Name)
		}
		tmpPro[data.Name] = sp
	}
	return tmpPro, nil
}
