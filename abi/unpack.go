// Copyright 2024 The ethabi-go Authors
// This file is part of the ethabi-go library.
//
// The ethabi-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ethabi-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ethabi-go library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"fmt"
	"unicode/utf8"

	"github.com/holiman/uint256"
)

// readInteger reads a 32 byte word as an integer token. The word is kept at
// its full 256-bit width; for signed types it already carries the two's
// complement representation, so nothing further is needed.
func readInteger(typ Type, b []byte) Token {
	return Token{T: typ.T, Int: new(uint256.Int).SetBytes(b)}
}

// readBool reads a bool.
func readBool(word []byte) (bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, errBadBool
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errBadBool
	}
}

// forEachUnpack iteratively unpacks elements.
func forEachUnpack(t Type, output []byte, start, size int) (Token, error) {
	if size < 0 {
		return Token{}, fmt.Errorf("%w: negative array size %d", ErrInvalidOffset, size)
	}
	if start+32*size > len(output) {
		return Token{}, fmt.Errorf("%w: array region would end at %d, buffer has %d", ErrInvalidOffset, start+32*size, len(output))
	}

	elems := make([]Token, 0, size)

	// Arrays have packed elements, resulting in longer unpack steps.
	// Slices have just 32 bytes per element (pointing to the contents).
	elemSize := getTypeSize(*t.Elem)

	for i, j := start, 0; j < size; i, j = i+elemSize, j+1 {
		elem, err := toToken(i, *t.Elem, output)
		if err != nil {
			return Token{}, err
		}
		elems = append(elems, elem)
	}

	return Token{T: t.T, Elems: elems}, nil
}

func forTupleUnpack(t Type, output []byte) (Token, error) {
	elems := make([]Token, 0, len(t.TupleElems))
	virtualArgs := 0
	for index, elem := range t.TupleElems {
		member, err := toToken((index+virtualArgs)*32, *elem, output)
		if err != nil {
			return Token{}, err
		}
		if elem.T == ArrayTy && !isDynamicType(*elem) {
			// If we have a static array, like [3]uint256, these are coded as
			// just like uint256,uint256,uint256.
			// This means that we need to add two 'virtual' arguments when
			// we count the index from now on.
			//
			// Array values nested multiple levels deep are also encoded inline:
			// [2][3]uint256: uint256,uint256,uint256,uint256,uint256,uint256
			//
			// Calculate the full array size to get the correct offset for the next argument.
			// Decrement it by 1, as the normal index increment is still applied.
			virtualArgs += getTypeSize(*elem)/32 - 1
		} else if elem.T == TupleTy && !isDynamicType(*elem) {
			// If we have a static tuple, like (uint256, bool, uint256), these are
			// coded as just like uint256,bool,uint256
			virtualArgs += getTypeSize(*elem)/32 - 1
		}
		elems = append(elems, member)
	}
	return Token{T: TupleTy, Elems: elems}, nil
}

// toToken parses a value of type t at the given word index of output and
// recursively assembles the token tree. The output slice is always the
// enclosing head/tail unit: offsets read from it are relative to its start,
// and recursion into a nested dynamic unit re-slices the buffer so the nested
// offsets stay unit-relative.
func toToken(index int, t Type, output []byte) (Token, error) {
	if index+32 > len(output) {
		return Token{}, fmt.Errorf("%w: need %d bytes at word index %d, buffer has %d", ErrBufferTooShort, index+32, index/32, len(output))
	}

	var (
		returnOutput  []byte
		begin, length int
		err           error
	)

	// if we require a length prefix, find the beginning word and size returned.
	if t.requiresLengthPrefix() {
		begin, length, err = lengthPrefixPointsTo(index, output)
		if err != nil {
			return Token{}, err
		}
	} else {
		returnOutput = output[index : index+32]
	}

	switch t.T {
	case TupleTy:
		if isDynamicType(t) {
			begin, err := tuplePointsTo(index, output)
			if err != nil {
				return Token{}, err
			}
			return forTupleUnpack(t, output[begin:])
		}
		return forTupleUnpack(t, output[index:])
	case SliceTy:
		return forEachUnpack(t, output[begin:], 0, length)
	case ArrayTy:
		if isDynamicType(*t.Elem) {
			offset, err := tuplePointsTo(index, output)
			if err != nil {
				return Token{}, err
			}
			return forEachUnpack(t, output[offset:], 0, t.Size)
		}
		return forEachUnpack(t, output[index:], 0, t.Size)
	case StringTy: // variable arrays are written at the end of the return bytes
		payload := output[begin : begin+length]
		if !utf8.Valid(payload) {
			return Token{}, fmt.Errorf("%w: at byte offset %d", ErrInvalidUTF8, begin)
		}
		return NewStringToken(string(payload)), nil
	case IntTy, UintTy:
		return readInteger(t, returnOutput), nil
	case BoolTy:
		b, err := readBool(returnOutput)
		if err != nil {
			return Token{}, err
		}
		return NewBoolToken(b), nil
	case AddressTy:
		var token Token
		token.T = AddressTy
		token.Address.SetBytes(returnOutput)
		return token, nil
	case BytesTy:
		return NewBytesToken(output[begin : begin+length]), nil
	case FixedBytesTy:
		return NewFixedBytesToken(returnOutput[:t.Size]), nil
	default:
		return Token{}, fmt.Errorf("%w: unknown type %v", ErrUnsupportedType, t.T)
	}
}

// lengthPrefixPointsTo interprets a 32 byte slice as an offset and then
// determines which indices to look to decode the type.
func lengthPrefixPointsTo(index int, output []byte) (start int, length int, err error) {
	offset := new(uint256.Int).SetBytes(output[index : index+32])
	offsetEnd := new(uint256.Int).AddUint64(offset, 32)

	if offsetEnd.BitLen() > 63 {
		return 0, 0, fmt.Errorf("%w: offset larger than int64: %v", ErrInvalidOffset, offset)
	}
	if offsetEnd.GtUint64(uint64(len(output))) {
		return 0, 0, fmt.Errorf("%w: length prefix at offset %v would go over buffer boundary (len=%d)", ErrInvalidOffset, offset, len(output))
	}

	start = int(offsetEnd.Uint64())
	lengthWord := new(uint256.Int).SetBytes(output[start-32 : start])

	totalSize := new(uint256.Int).Add(offsetEnd, lengthWord)
	if totalSize.BitLen() > 63 {
		return 0, 0, fmt.Errorf("%w: length larger than int64: %v", ErrInvalidOffset, totalSize)
	}
	if totalSize.GtUint64(uint64(len(output))) {
		return 0, 0, fmt.Errorf("%w: payload would end at %v, buffer has %d", ErrInvalidOffset, totalSize, len(output))
	}
	length = int(lengthWord.Uint64())
	return start, length, nil
}

// tuplePointsTo resolves the location reference for a dynamic tuple or a
// fixed array of dynamic elements.
func tuplePointsTo(index int, output []byte) (start int, err error) {
	offset := new(uint256.Int).SetBytes(output[index : index+32])

	if offset.BitLen() > 63 {
		return 0, fmt.Errorf("%w: offset larger than int64: %v", ErrInvalidOffset, offset)
	}
	if offset.GtUint64(uint64(len(output))) {
		return 0, fmt.Errorf("%w: offset %v would go over buffer boundary (len=%d)", ErrInvalidOffset, offset, len(output))
	}
	return int(offset.Uint64()), nil
}
