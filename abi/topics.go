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

	"github.com/ethabi-go/ethabi/common"
	"github.com/ethabi-go/ethabi/crypto"
)

// MakeTopics converts a filter query argument list into a filter topic set.
func MakeTopics(query ...[]Token) ([][]common.Hash, error) {
	topics := make([][]common.Hash, len(query))
	for i, filter := range query {
		for _, rule := range filter {
			var topic common.Hash

			switch rule.T {
			case AddressTy:
				copy(topic[common.HashLength-common.AddressLength:], rule.Address[:])
			case IntTy, UintTy:
				topic = rule.word().Bytes32()
			case BoolTy:
				if rule.Bool {
					topic[common.HashLength-1] = 1
				}
			case FixedBytesTy:
				copy(topic[:], rule.Bytes)
			case StringTy:
				topic = crypto.Keccak256Hash([]byte(rule.Str))
			case BytesTy:
				topic = crypto.Keccak256Hash(rule.Bytes)
			default:
				// According to solidity documentation, indexed event parameters
				// that are not value types i.e. arrays and structs are not
				// stored directly but instead a keccak256-hash of an encoding
				// is stored. Strings and bytes are hashed above; arrays and
				// tuples must be pre-hashed by the caller.
				return nil, fmt.Errorf("unsupported indexed type: %s", kindName(rule.T))
			}
			topics[i] = append(topics[i], topic)
		}
	}
	return topics, nil
}

// ParseTopics converts the indexed topic fields into actual log field values.
//
// Note, dynamic types cannot be reconstructed since they get mapped to Keccak256
// hashes as the topic value!
func ParseTopics(fields Arguments, topics []common.Hash) ([]Token, error) {
	values := make([]Token, 0, len(fields))
	err := parseTopicWithSetter(fields, topics,
		func(arg Argument, reconstr Token) {
			values = append(values, reconstr)
		})
	return values, err
}

// ParseTopicsIntoMap converts the indexed topic field-value pairs into map key-value pairs.
func ParseTopicsIntoMap(out map[string]Token, fields Arguments, topics []common.Hash) error {
	return parseTopicWithSetter(fields, topics,
		func(arg Argument, reconstr Token) {
			out[arg.Name] = reconstr
		})
}

// parseTopicWithSetter converts the indexed topic field-value pairs and stores them using the
// provided set function.
func parseTopicWithSetter(fields Arguments, topics []common.Hash, setter func(Argument, Token)) error {
	// Sanity check that the fields and topics match up
	if len(fields) != len(topics) {
		return errors.New("topic/field count mismatch")
	}
	// Iterate over all the fields and reconstruct them from topics
	for i, arg := range fields {
		if !arg.Indexed {
			return errors.New("non-indexed field in topic reconstruction")
		}
		var reconstr Token
		switch arg.Type.T {
		case TupleTy:
			return errors.New("tuple type in topic reconstruction")
		case StringTy, BytesTy, SliceTy, ArrayTy:
			// Array types (including strings and bytes) have their keccak256 hashes
			// stored in the topic- not the value itself- so the best we can do is
			// retrieve that hash.
			reconstr = NewFixedBytesToken(topics[i][:])
		default:
			var err error
			reconstr, err = toToken(0, arg.Type, topics[i].Bytes())
			if err != nil {
				return err
			}
		}
		setter(arg, reconstr)
	}

	return nil
}
