/**
 * Copyright 2019 The Vearch Authors.
 *
 * This source code is licensed under the Apache License, Version 2.0 license
 * found in the LICENSE file in the root directory of this source tree.
 */

package gamma

import (
	"encoding/binary"

	"github.com/vearch/gammareq/internal/pkg/errors"
)

// vtable slots of the gamma_api tables
const (
	requestReqNum           = 4
	requestTopn             = 6
	requestBruteForceSearch = 8
	requestVecFields        = 10
	requestFields           = 12
	requestRangeFilters     = 14
	requestTermFilters      = 16
	requestIndexParams      = 18
	requestMultiVectorRank  = 20
	requestL2Sqrt           = 22
	requestRanker           = 24

	vectorQueryName      = 4
	vectorQueryValue     = 6
	vectorQueryMinScore  = 8
	vectorQueryMaxScore  = 10
	vectorQueryIndexType = 12

	rangeFilterField        = 4
	rangeFilterLowerValue   = 6
	rangeFilterUpperValue   = 8
	rangeFilterIncludeLower = 10
	rangeFilterIncludeUpper = 12

	termFilterField   = 4
	termFilterValue   = 6
	termFilterIsUnion = 8
)

// verifier checks that every offset and length reachable from the root of a
// Request buffer stays inside the buffer before any accessor touches it.
type verifier struct {
	buf []byte
}

type tableRef struct {
	pos   int64
	vt    int64
	vsize int64
	tsize int64
}

func verifyRequest(buf []byte) error {
	v := &verifier{buf: buf}
	if len(buf) < 4 {
		return errors.MalformedInput("buffer of %d bytes is too short", len(buf))
	}
	root, err := v.table(int64(binary.LittleEndian.Uint32(buf)))
	if err != nil {
		return err
	}

	for _, slot := range []int64{requestReqNum, requestTopn, requestBruteForceSearch, requestMultiVectorRank} {
		if err := v.scalar(root, slot, 4); err != nil {
			return err
		}
	}
	if err := v.scalar(root, requestL2Sqrt, 1); err != nil {
		return err
	}
	if err := v.tables(root, requestVecFields, v.vectorQuery); err != nil {
		return err
	}
	if err := v.strings(root, requestFields); err != nil {
		return err
	}
	if err := v.tables(root, requestRangeFilters, v.rangeFilter); err != nil {
		return err
	}
	if err := v.tables(root, requestTermFilters, v.termFilter); err != nil {
		return err
	}
	if err := v.vector(root, requestIndexParams, 1, true, false); err != nil {
		return err
	}
	return v.vector(root, requestRanker, 1, true, false)
}

func (v *verifier) vectorQuery(t tableRef) error {
	if err := v.vector(t, vectorQueryName, 1, true, true); err != nil {
		return err
	}
	if err := v.vector(t, vectorQueryValue, 1, false, false); err != nil {
		return err
	}
	if err := v.scalar(t, vectorQueryMinScore, 8); err != nil {
		return err
	}
	if err := v.scalar(t, vectorQueryMaxScore, 8); err != nil {
		return err
	}
	return v.vector(t, vectorQueryIndexType, 1, true, false)
}

func (v *verifier) rangeFilter(t tableRef) error {
	if err := v.vector(t, rangeFilterField, 1, true, true); err != nil {
		return err
	}
	if err := v.vector(t, rangeFilterLowerValue, 1, false, false); err != nil {
		return err
	}
	if err := v.vector(t, rangeFilterUpperValue, 1, false, false); err != nil {
		return err
	}
	if err := v.scalar(t, rangeFilterIncludeLower, 1); err != nil {
		return err
	}
	return v.scalar(t, rangeFilterIncludeUpper, 1)
}

func (v *verifier) termFilter(t tableRef) error {
	if err := v.vector(t, termFilterField, 1, true, true); err != nil {
		return err
	}
	if err := v.vector(t, termFilterValue, 1, false, false); err != nil {
		return err
	}
	return v.scalar(t, termFilterIsUnion, 4)
}

func (v *verifier) size() int64 { return int64(len(v.buf)) }

func (v *verifier) inBounds(pos, n int64) bool {
	return pos >= 0 && n >= 0 && pos+n <= v.size()
}

func (v *verifier) u16(pos int64) int64 {
	return int64(binary.LittleEndian.Uint16(v.buf[pos:]))
}

func (v *verifier) u32(pos int64) int64 {
	return int64(binary.LittleEndian.Uint32(v.buf[pos:]))
}

func (v *verifier) table(pos int64) (tableRef, error) {
	if !v.inBounds(pos, 4) {
		return tableRef{}, errors.MalformedInput("table offset %d out of buffer of %d bytes", pos, v.size())
	}
	vt := pos - int64(int32(binary.LittleEndian.Uint32(v.buf[pos:])))
	if !v.inBounds(vt, 4) {
		return tableRef{}, errors.MalformedInput("vtable offset %d out of buffer of %d bytes", vt, v.size())
	}
	vsize, tsize := v.u16(vt), v.u16(vt+2)
	if vsize < 4 || vsize%2 != 0 || !v.inBounds(vt, vsize) {
		return tableRef{}, errors.MalformedInput("bad vtable size %d at %d", vsize, vt)
	}
	if tsize < 4 || !v.inBounds(pos, tsize) {
		return tableRef{}, errors.MalformedInput("bad table size %d at %d", tsize, pos)
	}
	return tableRef{pos: pos, vt: vt, vsize: vsize, tsize: tsize}, nil
}

// field returns the offset of slot inside t, 0 when the field is absent.
func (v *verifier) field(t tableRef, slot, size int64) (int64, error) {
	if slot+2 > t.vsize {
		return 0, nil
	}
	off := v.u16(t.vt + slot)
	if off == 0 {
		return 0, nil
	}
	if off < 4 || off+size > t.tsize {
		return 0, errors.MalformedInput("field at vtable slot %d overflows its table", slot)
	}
	return off, nil
}

func (v *verifier) scalar(t tableRef, slot, size int64) error {
	_, err := v.field(t, slot, size)
	return err
}

// indirect follows the uoffset stored at slot and returns the absolute
// position of the referenced object, -1 when absent.
func (v *verifier) indirect(t tableRef, slot int64, required bool) (int64, error) {
	off, err := v.field(t, slot, 4)
	if err != nil {
		return 0, err
	}
	if off == 0 {
		if required {
			return 0, errors.MalformedInput("required field at vtable slot %d is missing", slot)
		}
		return -1, nil
	}
	at := t.pos + off
	return at + v.u32(at), nil
}

// vectorAt checks a length prefixed vector at pos and returns its length.
func (v *verifier) vectorAt(pos, elemSize int64, isString bool) (int64, error) {
	if !v.inBounds(pos, 4) {
		return 0, errors.MalformedInput("vector offset %d out of buffer of %d bytes", pos, v.size())
	}
	n := v.u32(pos)
	end := n * elemSize
	if isString {
		end++
	}
	if !v.inBounds(pos+4, end) {
		return 0, errors.MalformedInput("vector of length %d at %d runs past the buffer end %d", n, pos, v.size())
	}
	return n, nil
}

func (v *verifier) vector(t tableRef, slot, elemSize int64, isString, required bool) error {
	pos, err := v.indirect(t, slot, required)
	if err != nil || pos < 0 {
		return err
	}
	_, err = v.vectorAt(pos, elemSize, isString)
	return err
}

func (v *verifier) strings(t tableRef, slot int64) error {
	pos, err := v.indirect(t, slot, false)
	if err != nil || pos < 0 {
		return err
	}
	n, err := v.vectorAt(pos, 4, false)
	if err != nil {
		return err
	}
	for i := int64(0); i < n; i++ {
		at := pos + 4 + i*4
		if _, err := v.vectorAt(at+v.u32(at), 1, true); err != nil {
			return err
		}
	}
	return nil
}

func (v *verifier) tables(t tableRef, slot int64, check func(tableRef) error) error {
	pos, err := v.indirect(t, slot, false)
	if err != nil || pos < 0 {
		return err
	}
	n, err := v.vectorAt(pos, 4, false)
	if err != nil {
		return err
	}
	for i := int64(0); i < n; i++ {
		at := pos + 4 + i*4
		elem, err := v.table(at + v.u32(at))
		if err != nil {
			return err
		}
		if err := check(elem); err != nil {
			return err
		}
	}
	return nil
}
