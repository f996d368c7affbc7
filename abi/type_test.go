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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewType(t *testing.T) {
	tests := []struct {
		blob string
		kind byte
		size int
	}{
		{"bool", BoolTy, 0},
		{"address", AddressTy, 20},
		{"string", StringTy, 0},
		{"bytes", BytesTy, 0},
		{"bytes32", FixedBytesTy, 32},
		{"bytes1", FixedBytesTy, 1},
		{"uint8", UintTy, 8},
		{"uint256", UintTy, 256},
		{"int64", IntTy, 64},
		{"int256", IntTy, 256},
	}
	for _, tt := range tests {
		typ, err := NewType(tt.blob, "", nil)
		require.NoError(t, err, tt.blob)
		assert.Equal(t, tt.kind, typ.T, tt.blob)
		assert.Equal(t, tt.size, typ.Size, tt.blob)
		assert.Equal(t, tt.blob, typ.String(), tt.blob)
	}
}

func TestNewTypeComposite(t *testing.T) {
	typ, err := NewType("uint256[]", "", nil)
	require.NoError(t, err)
	require.Equal(t, SliceTy, typ.T)
	require.Equal(t, UintTy, typ.Elem.T)
	require.Equal(t, "uint256[]", typ.String())

	typ, err = NewType("bytes32[4]", "", nil)
	require.NoError(t, err)
	require.Equal(t, ArrayTy, typ.T)
	require.Equal(t, 4, typ.Size)
	require.Equal(t, FixedBytesTy, typ.Elem.T)

	typ, err = NewType("uint8[2][3]", "", nil)
	require.NoError(t, err)
	require.Equal(t, ArrayTy, typ.T)
	require.Equal(t, 3, typ.Size)
	require.Equal(t, ArrayTy, typ.Elem.T)
	require.Equal(t, 2, typ.Elem.Size)

	typ, err = NewType("tuple", "", []ArgumentMarshaling{
		{Name: "balance", Type: "uint256"},
		{Name: "owner", Type: "address"},
	})
	require.NoError(t, err)
	require.Equal(t, TupleTy, typ.T)
	require.Equal(t, "(uint256,address)", typ.String())
	require.Equal(t, []string{"balance", "owner"}, typ.TupleRawNames)

	typ, err = NewType("tuple[3]", "", []ArgumentMarshaling{{Name: "x", Type: "uint256"}})
	require.NoError(t, err)
	require.Equal(t, ArrayTy, typ.T)
	require.Equal(t, "(uint256)[3]", typ.String())
}

func TestNewTypeInvalid(t *testing.T) {
	for _, blob := range []string{
		"uint",     // unsized ints are rejected
		"int",      // same
		"int7",     // width not a multiple of 8
		"uint264",  // width over 256
		"bytes33",  // fixed bytes stop at 32
		"foobar",   // unknown
		"uint256[", // unbalanced brackets
	} {
		_, err := NewType(blob, "", nil)
		require.ErrorIs(t, err, ErrUnsupportedType, blob)
	}
}

func TestNewTypeContractInternalType(t *testing.T) {
	// External contract references are address-typed under the hood.
	typ, err := NewType("MyToken", "contract MyToken", nil)
	require.NoError(t, err)
	require.Equal(t, AddressTy, typ.T)
}

func TestTypeConstructors(t *testing.T) {
	uint256Ty, err := NewUintType(256)
	require.NoError(t, err)
	addressTy := NewAddressType()

	pair, err := NewTupleType([]Type{uint256Ty, addressTy}, []string{"balance", "owner"})
	require.NoError(t, err)
	require.Equal(t, "(uint256,address)", pair.String())

	arr, err := NewArrayType(pair, 3)
	require.NoError(t, err)
	require.Equal(t, "(uint256,address)[3]", arr.String())

	slice := NewSliceType(pair)
	require.Equal(t, "(uint256,address)[]", slice.String())

	_, err = NewUintType(7)
	require.ErrorIs(t, err, ErrUnsupportedType)
	_, err = NewIntType(0)
	require.ErrorIs(t, err, ErrUnsupportedType)
	_, err = NewFixedBytesType(33)
	require.ErrorIs(t, err, ErrUnsupportedType)
	_, err = NewArrayType(addressTy, -1)
	require.ErrorIs(t, err, ErrUnsupportedType)
	_, err = NewTupleType([]Type{uint256Ty}, []string{"a", "b"})
	require.Error(t, err)
}

// Tuple member names never contribute to a type's identity or its canonical
// rendering.
func TestTypeEqualIgnoresNames(t *testing.T) {
	uint256Ty, err := NewUintType(256)
	require.NoError(t, err)

	named, err := NewTupleType([]Type{uint256Ty}, []string{"amount"})
	require.NoError(t, err)
	unnamed, err := NewTupleType([]Type{uint256Ty}, nil)
	require.NoError(t, err)

	require.True(t, named.Equal(unnamed))
	require.Equal(t, named.String(), unnamed.String())

	boolTy := NewBoolType()
	other, err := NewTupleType([]Type{boolTy}, nil)
	require.NoError(t, err)
	require.False(t, named.Equal(other))
}

func TestTypeIsDynamic(t *testing.T) {
	tests := []struct {
		blob    string
		dynamic bool
	}{
		{"uint256", false},
		{"bool", false},
		{"address", false},
		{"bytes32", false},
		{"bytes", true},
		{"string", true},
		{"uint256[]", true},
		{"uint256[2]", false},
		{"string[2]", true},
		{"(uint256,address)", false},
		{"(uint256,string)", true},
		{"(uint256,string)[3]", true},
		{"((uint256,address),bool)", false},
	}
	for _, tt := range tests {
		typ := mustParseType(t, tt.blob)
		assert.Equal(t, tt.dynamic, typ.IsDynamic(), tt.blob)
	}
}

func TestGetTypeSize(t *testing.T) {
	tests := []struct {
		blob string
		size int
	}{
		{"uint256", 32},
		{"uint256[2]", 64},
		{"uint256[2][3]", 192},
		{"(uint256,address)", 64},
		{"(uint256,address)[2]", 128},
		// dynamic types occupy a single offset word in their head
		{"bytes", 32},
		{"string", 32},
		{"uint256[]", 32},
		{"(uint256,string)", 32},
	}
	for _, tt := range tests {
		typ := mustParseType(t, tt.blob)
		assert.Equal(t, tt.size, getTypeSize(typ), tt.blob)
	}
}
