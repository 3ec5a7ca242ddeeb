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

package cbbytes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// IEC Sizes.
const (
	Byte = 1 << (iota * 10)
	KB
	MB
	GB
)

var iecSizes = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

func logn(n, b float64) float64 {
	return math.Log(n) / math.Log(b)
}

// FormatIByte convert uint64 to human-readable byte strings
func FormatIByte(s uint64) string {
	if s < 10 {
		return fmt.Sprintf("%dB", s)
	}
	e := math.Floor(logn(float64(s), 1024))
	suffix := iecSizes[int(e)]
	val := math.Floor(float64(s)/math.Pow(1024, e)*10+0.5) / 10
	f := "%.0f%s"
	if val < 10 {
		f = "%.1f%s"
	}
	return fmt.Sprintf(f, val, suffix)
}

// FloatArrayByte encodes a float32 vector little endian.
func FloatArrayByte(fa []float32) (code []byte, err error) {
	buf := &bytes.Buffer{}
	if err = binary.Write(buf, binary.LittleEndian, fa); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func UInt8ArrayToByteArray(in []uint8) []byte {
	byteArr := make([]byte, len(in))
	copy(byteArr, in)
	return byteArr
}

// ValueToByte encodes a fixed size value little endian.
func ValueToByte(fa interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, fa); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ByteToFloat32Array(bytes []byte) ([]float32, error) {
	if len(bytes)%4 != 0 {
		return nil, fmt.Errorf("input bytes not a multiple of 4")
	}

	num := len(bytes) / 4

	result := make([]float32, num)
	for i := 0; i < num; i++ {
		result[i] = math.Float32frombits(binary.LittleEndian.Uint32(bytes[i*4:]))
	}
	return result, nil
}

// DecodeNumber reads a range bound written by ValueToByte. Four byte values
// are int32, eight byte values int64.
func DecodeNumber(bs []byte) (interface{}, error) {
	switch len(bs) {
	case 4:
		return int32(binary.LittleEndian.Uint32(bs)), nil
	case 8:
		return int64(binary.LittleEndian.Uint64(bs)), nil
	default:
		return nil, fmt.Errorf("number of %d bytes", len(bs))
	}
}

func ByteToFloat32(bytes []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(bytes))
}

func ByteToFloat64(bs []byte) float64 {
	if len(bs) == 4 {
		return float64(ByteToFloat32(bs))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(bs))
}
