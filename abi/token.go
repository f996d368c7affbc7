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
	"bytes"
	"strconv"
	"strings"

	"github.com/ethabi-go/ethabi/common"
	"github.com/ethabi-go/ethabi/common/hexutil"
	"github.com/holiman/uint256"
)

// Token is the runtime representation of a single abi value. Like Type it is
// a closed tagged union: the T field selects the variant using the same
// enumerator, and exactly one payload field is meaningful per variant.
//
// Integer tokens hold the full 256-bit EVM word regardless of the declared
// bit width; signed values are stored in two's complement form. The declared
// width only matters when a token is packed against its type, at which point
// out-of-range values are rejected.
type Token struct {
	T byte

	Address common.Address // AddressTy
	Bool    bool           // BoolTy
	Int     *uint256.Int   // IntTy, UintTy
	Bytes   []byte         // BytesTy, FixedBytesTy
	Str     string         // StringTy
	Elems   []Token        // SliceTy, ArrayTy, TupleTy
}

// NewAddressToken wraps a 20 byte address.
func NewAddressToken(addr common.Address) Token {
	return Token{T: AddressTy, Address: addr}
}

// NewBoolToken wraps a boolean.
func NewBoolToken(b bool) Token {
	return Token{T: BoolTy, Bool: b}
}

// NewUintToken wraps an unsigned 256-bit integer. The value is copied.
func NewUintToken(v *uint256.Int) Token {
	return Token{T: UintTy, Int: new(uint256.Int).Set(v)}
}

// NewUint64Token wraps an unsigned integer given as a uint64.
func NewUint64Token(v uint64) Token {
	return Token{T: UintTy, Int: uint256.NewInt(v)}
}

// NewIntToken wraps a signed integer held as a two's complement 256-bit word.
// The value is copied.
func NewIntToken(v *uint256.Int) Token {
	return Token{T: IntTy, Int: new(uint256.Int).Set(v)}
}

// NewInt64Token wraps a signed integer given as an int64, sign-extending it
// to the full word.
func NewInt64Token(v int64) Token {
	w := uint256.NewInt(uint64(v))
	if v < 0 {
		w.SetUint64(uint64(-v)).Neg(w)
	}
	return Token{T: IntTy, Int: w}
}

// NewBytesToken wraps a dynamically sized byte sequence. The bytes are copied.
func NewBytesToken(b []byte) Token {
	return Token{T: BytesTy, Bytes: common.CopyBytes(b)}
}

// NewFixedBytesToken wraps a fixed size byte sequence. The bytes are copied;
// their length must match the bytesN type the token is later packed against.
func NewFixedBytesToken(b []byte) Token {
	return Token{T: FixedBytesTy, Bytes: common.CopyBytes(b)}
}

// NewStringToken wraps a string.
func NewStringToken(s string) Token {
	return Token{T: StringTy, Str: s}
}

// NewSliceToken wraps the elements of a dynamically sized array.
func NewSliceToken(elems ...Token) Token {
	return Token{T: SliceTy, Elems: elems}
}

// NewArrayToken wraps the elements of a fixed size array.
func NewArrayToken(elems ...Token) Token {
	return Token{T: ArrayTy, Elems: elems}
}

// NewTupleToken wraps the ordered members of a tuple.
func NewTupleToken(elems ...Token) Token {
	return Token{T: TupleTy, Elems: elems}
}

// word returns the token's integer payload, treating an unset pointer as
// zero.
func (t Token) word() *uint256.Int {
	if t.Int == nil {
		return new(uint256.Int)
	}
	return t.Int
}

// Equal reports deep equality of two tokens.
func (t Token) Equal(u Token) bool {
	if t.T != u.T {
		return false
	}
	switch t.T {
	case AddressTy:
		return t.Address == u.Address
	case BoolTy:
		return t.Bool == u.Bool
	case IntTy, UintTy:
		return t.word().Eq(u.word())
	case BytesTy, FixedBytesTy:
		return bytes.Equal(t.Bytes, u.Bytes)
	case StringTy:
		return t.Str == u.Str
	case SliceTy, ArrayTy, TupleTy:
		if len(t.Elems) != len(u.Elems) {
			return false
		}
		for i := range t.Elems {
			if !t.Elems[i].Equal(u.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String implements Stringer, rendering the token for diagnostics. Integers
// print in decimal (signed for IntTy), byte payloads in 0x-hex, composites
// with their bracketing.
func (t Token) String() string {
	switch t.T {
	case AddressTy:
		return t.Address.Hex()
	case BoolTy:
		if t.Bool {
			return "true"
		}
		return "false"
	case UintTy:
		return t.word().Dec()
	case IntTy:
		v := t.word()
		if v.Sign() < 0 {
			return "-" + new(uint256.Int).Neg(v).Dec()
		}
		return v.Dec()
	case BytesTy, FixedBytesTy:
		return hexutil.Encode(t.Bytes)
	case StringTy:
		return strconv.Quote(t.Str)
	case SliceTy, ArrayTy:
		return "[" + joinTokens(t.Elems) + "]"
	case TupleTy:
		return "(" + joinTokens(t.Elems) + ")"
	default:
		return "<invalid token>"
	}
}

func joinTokens(elems []Token) string {
	strs := make([]string, len(elems))
	for i, e := range elems {
		strs[i] = e.String()
	}
	return strings.Join(strs, ", ")
}
