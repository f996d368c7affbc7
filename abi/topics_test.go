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

	"github.com/ethabi-go/ethabi/common"
	"github.com/ethabi-go/ethabi/crypto"
	"github.com/stretchr/testify/require"
)

func TestMakeTopics(t *testing.T) {
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")

	tests := []struct {
		name  string
		query []Token
		want  []common.Hash
	}{
		{
			"address",
			[]Token{NewAddressToken(addr)},
			[]common.Hash{common.HexToHash("0x0000000000000000000000001111111111111111111111111111111111111111")},
		},
		{
			"uint",
			[]Token{NewUint64Token(42)},
			[]common.Hash{common.HexToHash("0x000000000000000000000000000000000000000000000000000000000000002a")},
		},
		{
			"negative int",
			[]Token{NewInt64Token(-1)},
			[]common.Hash{common.HexToHash("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")},
		},
		{
			"bool",
			[]Token{NewBoolToken(true), NewBoolToken(false)},
			[]common.Hash{
				common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000001"),
				common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000000"),
			},
		},
		{
			"fixed bytes are left aligned",
			[]Token{NewFixedBytesToken([]byte{0xde, 0xad})},
			[]common.Hash{common.HexToHash("0xdead000000000000000000000000000000000000000000000000000000000000")},
		},
		{
			"string hashes to keccak",
			[]Token{NewStringToken("hello world")},
			[]common.Hash{crypto.Keccak256Hash([]byte("hello world"))},
		},
		{
			"bytes hash to keccak",
			[]Token{NewBytesToken([]byte{1, 2, 3})},
			[]common.Hash{crypto.Keccak256Hash([]byte{1, 2, 3})},
		},
	}
	for _, tt := range tests {
		topics, err := MakeTopics(tt.query)
		require.NoError(t, err, tt.name)
		require.Equal(t, [][]common.Hash{tt.want}, topics, tt.name)
	}
}

func TestMakeTopicsRejectsComposites(t *testing.T) {
	for _, tok := range []Token{
		NewSliceToken(NewUint64Token(1)),
		NewArrayToken(NewUint64Token(1)),
		NewTupleToken(NewUint64Token(1)),
	} {
		_, err := MakeTopics([]Token{tok})
		require.Error(t, err)
	}
}

func TestParseTopics(t *testing.T) {
	addr := common.HexToAddress("0x2222222222222222222222222222222222222222")
	fields := Arguments{
		{Name: "from", Type: NewAddressType(), Indexed: true},
		{Name: "amount", Type: mustParseType(t, "uint256"), Indexed: true},
	}
	topics := []common.Hash{
		common.HexToHash("0x0000000000000000000000002222222222222222222222222222222222222222"),
		common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000064"),
	}

	tokens, err := ParseTopics(fields, topics)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.True(t, NewAddressToken(addr).Equal(tokens[0]))
	require.True(t, NewUint64Token(100).Equal(tokens[1]))

	out := map[string]Token{}
	require.NoError(t, ParseTopicsIntoMap(out, fields, topics))
	require.True(t, NewAddressToken(addr).Equal(out["from"]))
	require.True(t, NewUint64Token(100).Equal(out["amount"]))
}

// Dynamic types come back as the stored hash, not the original value.
func TestParseTopicsDynamic(t *testing.T) {
	hash := crypto.Keccak256Hash([]byte("gavofyork"))
	fields := Arguments{{Name: "name", Type: NewStringType(), Indexed: true}}

	tokens, err := ParseTopics(fields, []common.Hash{hash})
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.True(t, NewFixedBytesToken(hash[:]).Equal(tokens[0]))
}

func TestParseTopicsErrors(t *testing.T) {
	fields := Arguments{{Name: "from", Type: NewAddressType(), Indexed: true}}

	// count mismatch
	_, err := ParseTopics(fields, nil)
	require.Error(t, err)

	// non-indexed field
	_, err = ParseTopics(Arguments{{Name: "x", Type: NewAddressType()}}, []common.Hash{{}})
	require.Error(t, err)

	// tuples cannot be reconstructed
	tuple := mustParseType(t, "(uint256,bool)")
	_, err = ParseTopics(Arguments{{Name: "t", Type: tuple, Indexed: true}}, []common.Hash{{}})
	require.Error(t, err)
}

// MakeTopics output for static types round-trips through ParseTopics.
func TestTopicsRoundTrip(t *testing.T) {
	fields := Arguments{
		{Name: "a", Type: NewAddressType(), Indexed: true},
		{Name: "b", Type: mustParseType(t, "uint64"), Indexed: true},
		{Name: "c", Type: mustParseType(t, "bool"), Indexed: true},
	}
	query := []Token{
		NewAddressToken(common.HexToAddress("0xdeadbeef")),
		NewUint64Token(7),
		NewBoolToken(true),
	}
	topics, err := MakeTopics([]Token{query[0]}, []Token{query[1]}, []Token{query[2]})
	require.NoError(t, err)

	flat := []common.Hash{topics[0][0], topics[1][0], topics[2][0]}
	tokens, err := ParseTopics(fields, flat)
	require.NoError(t, err)
	for i := range query {
		require.True(t, query[i].Equal(tokens[i]), "field %d", i)
	}
}
