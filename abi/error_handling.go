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
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

var (
	// ErrTypeMismatch is returned by the encoder when a token does not
	// structurally match the type it is packed against. It indicates a
	// programming error on the caller's side, never malformed wire data.
	ErrTypeMismatch = errors.New("abi: token does not match type")

	// ErrBufferTooShort is returned by the decoder when fewer than 32 bytes
	// remain where a word read was required.
	ErrBufferTooShort = errors.New("abi: buffer too short")

	// ErrInvalidOffset is returned by the decoder when a dynamic offset or a
	// derived length points outside the buffer.
	ErrInvalidOffset = errors.New("abi: offset out of bounds")

	// ErrInvalidUTF8 is returned by the decoder when a string payload is not
	// well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("abi: string payload is not valid UTF-8")

	// ErrUnsupportedType is returned by the type adapters when a type string
	// cannot be mapped to any abi type.
	ErrUnsupportedType = errors.New("abi: unsupported type")

	// errBadBool is returned when a boolean word carries anything besides a
	// right-aligned 0 or 1.
	errBadBool = errors.New("abi: improperly encoded boolean value")
)

// typeCheck verifies that the given token is well-typed against t: the
// variants match and all nested lengths match exactly. It also rejects
// integer values outside the range of their declared bit width; values are
// validated here rather than clamped at token construction.
func typeCheck(t Type, v Token) error {
	if t.T != v.T {
		return typeErr(t, v)
	}
	switch t.T {
	case FixedBytesTy:
		if len(v.Bytes) != t.Size {
			return fmt.Errorf("%w: need %d bytes for %v, got %d", ErrTypeMismatch, t.Size, t, len(v.Bytes))
		}
	case IntTy, UintTy:
		return intRangeCheck(t, v.word())
	case ArrayTy:
		if len(v.Elems) != t.Size {
			return fmt.Errorf("%w: need %d elements for %v, got %d", ErrTypeMismatch, t.Size, t, len(v.Elems))
		}
	case TupleTy:
		if len(v.Elems) != len(t.TupleElems) {
			return fmt.Errorf("%w: need %d members for %v, got %d", ErrTypeMismatch, len(t.TupleElems), t, len(v.Elems))
		}
	}
	// Children of composite types are checked when they are packed in turn.
	return nil
}

// intRangeCheck rejects integer words outside the declared bit width. For
// signed types the word is interpreted as a 256-bit two's complement value
// and must sign-extend cleanly down to the declared width.
func intRangeCheck(t Type, v *uint256.Int) error {
	if t.Size == 256 {
		return nil
	}
	if t.T == UintTy {
		if v.BitLen() > t.Size {
			return fmt.Errorf("%w: value %v out of range for %v", ErrTypeMismatch, v.Dec(), t)
		}
		return nil
	}
	// The magnitude of an in-range intN fits in Size-1 bits: non-negative
	// values directly, negative values after complementing (-x-1 >= 0).
	mag := v
	if v.Sign() < 0 {
		mag = new(uint256.Int).Not(v)
	}
	if mag.BitLen() > t.Size-1 {
		return fmt.Errorf("%w: value out of range for %v", ErrTypeMismatch, t)
	}
	return nil
}

// typeErr returns a formatted type mismatch error.
func typeErr(expected Type, got Token) error {
	return fmt.Errorf("%w: cannot use %s token as %v", ErrTypeMismatch, kindName(got.T), expected)
}

// kindName renders a type enumerator for error messages.
func kindName(t byte) string {
	switch t {
	case IntTy:
		return "int"
	case UintTy:
		return "uint"
	case BoolTy:
		return "bool"
	case StringTy:
		return "string"
	case SliceTy:
		return "slice"
	case ArrayTy:
		return "array"
	case TupleTy:
		return "tuple"
	case AddressTy:
		return "address"
	case FixedBytesTy:
		return "fixed bytes"
	case BytesTy:
		return "bytes"
	default:
		return fmt.Sprintf("unknown(%d)", t)
	}
}
