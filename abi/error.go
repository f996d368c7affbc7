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
	"fmt"
	"strings"

	"github.com/ethabi-go/ethabi/common"
	"github.com/ethabi-go/ethabi/crypto"
)

// Error represents a custom error defined in the contract ABI. Custom errors
// identify themselves on the wire with a 4 byte selector derived the same way
// as a function selector.
type Error struct {
	Name   string
	Inputs Arguments
	str    string

	// Sig contains the string signature according to the ABI spec.
	// e.g. error foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	Sig string

	// ID returns the canonical representation of the error's signature used by the
	// abi definition to identify error names and types.
	ID common.Hash
}

// NewError creates a new Error instance with the given name and inputs.
// It sanitizes the inputs, precomputes the string and signature representations,
// and calculates the unique ID based on the signature.
func NewError(name string, inputs Arguments) Error {
	// sanitize inputs to remove inputs without names
	// and precompute string and sig representation.
	names := make([]string, len(inputs))
	types := make([]string, len(inputs))
	for i, input := range inputs {
		if input.Name == "" {
			inputs[i] = Argument{
				Name:    fmt.Sprintf("arg%d", i),
				Indexed: input.Indexed,
				Type:    input.Type,
			}
		} else {
			inputs[i] = input
		}
		// string representation
		names[i] = fmt.Sprintf("%v %v", input.Type, inputs[i].Name)
		if input.Indexed {
			names[i] = fmt.Sprintf("%v indexed %v", input.Type, inputs[i].Name)
		}
		// sig representation
		types[i] = input.Type.String()
	}

	str := fmt.Sprintf("error %v(%v)", name, strings.Join(names, ", "))
	sig := fmt.Sprintf("%v(%v)", name, strings.Join(types, ","))
	id := common.BytesToHash(crypto.Keccak256([]byte(sig)))

	return Error{
		Name:   name,
		Inputs: inputs,
		str:    str,
		Sig:    sig,
		ID:     id,
	}
}

// String returns the string representation of the error.
func (e Error) String() string {
	return e.str
}

// Unpack decodes the provided revert data into the error's input tokens. The
// data must start with the error's 4 byte selector.
func (e *Error) Unpack(data []byte) ([]Token, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: insufficient data for unpacking: have %d, want at least 4", ErrBufferTooShort, len(data))
	}
	if !bytes.Equal(data[:4], e.ID[:4]) {
		return nil, fmt.Errorf("invalid identifier, have %#x want %#x", data[:4], e.ID[:4])
	}
	return e.Inputs.Unpack(data[4:])
}
