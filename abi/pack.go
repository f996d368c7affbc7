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

	"github.com/ethabi-go/ethabi/common"
	"github.com/holiman/uint256"
)

// packBytesSlice packs the given bytes as [L, V] as the canonical
// representation: a 32 byte big-endian length followed by the data padded to
// the next 32 byte boundary.
func packBytesSlice(bytes []byte, l int) []byte {
	len := packNum(l)
	return append(len, common.RightPadBytes(bytes, (l+31)/32*32)...)
}

// packElement packs the given token according to the abi specification in t.
// Composite types are handled by Type.pack; only one-word encodings (plus the
// length-prefixed bytes/string forms) land here.
func packElement(t Type, v Token) ([]byte, error) {
	switch t.T {
	case IntTy, UintTy:
		return packU256(v.word()), nil
	case StringTy:
		return packBytesSlice([]byte(v.Str), len(v.Str)), nil
	case AddressTy:
		return common.LeftPadBytes(v.Address.Bytes(), 32), nil
	case BoolTy:
		word := make([]byte, 32)
		if v.Bool {
			word[31] = 1
		}
		return word, nil
	case BytesTy:
		return packBytesSlice(v.Bytes, len(v.Bytes)), nil
	case FixedBytesTy:
		return common.RightPadBytes(v.Bytes, 32), nil
	default:
		return nil, fmt.Errorf("%w: could not pack element, unknown type: %v", ErrUnsupportedType, t.T)
	}
}

// packU256 packs the given word as a big-endian 32 byte value. Signed values
// already carry their two's complement representation, so no sign handling is
// needed here.
func packU256(v *uint256.Int) []byte {
	word := v.Bytes32()
	return word[:]
}

// packNum packs the given offset or length.
func packNum(value int) []byte {
	return packU256(uint256.NewInt(uint64(value)))
}
