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
	"encoding/json"
	"errors"
	"fmt"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // indexed is only used by events
}

type Arguments []Argument

type ArgumentMarshaling struct {
	Name         string
	Type         string
	InternalType string
	Components   []ArgumentMarshaling
	Indexed      bool
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}

	argument.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed

	return nil
}

// NonIndexed returns the arguments with indexed arguments filtered out.
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Unpack performs the operation hexdata -> token list.
func (arguments Arguments) Unpack(data []byte) ([]Token, error) {
	if len(data) == 0 {
		if len(arguments.NonIndexed()) != 0 {
			return nil, fmt.Errorf("%w: attempting to unmarshal an empty string while arguments are expected", ErrBufferTooShort)
		}
		return make([]Token, 0), nil
	}
	return arguments.UnpackValues(data)
}

// UnpackValidate behaves like Unpack but additionally requires the buffer to
// be the exact canonical encoding of the decoded tokens: dirty padding bytes
// and trailing data are rejected.
func (arguments Arguments) UnpackValidate(data []byte) ([]Token, error) {
	tokens, err := arguments.Unpack(data)
	if err != nil {
		return nil, err
	}
	reenc, err := arguments.NonIndexed().Pack(tokens...)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(reenc, data) {
		return nil, fmt.Errorf("%w: buffer is not a canonical encoding", ErrInvalidOffset)
	}
	return tokens, nil
}

// UnpackIntoMap performs the operation hexdata -> mapping of argument name to
// argument token.
func (arguments Arguments) UnpackIntoMap(v map[string]Token, data []byte) error {
	// Make sure map is not nil
	if v == nil {
		return errors.New("abi: cannot unpack into a nil map")
	}
	unpacked, err := arguments.Unpack(data)
	if err != nil {
		return err
	}
	for i, arg := range arguments.NonIndexed() {
		v[arg.Name] = unpacked[i]
	}
	return nil
}

// UnpackValues can be used to unpack ABI-encoded hexdata according to the ABI-specification,
// without supplying a struct to unpack into. Instead, this method returns a list containing the
// values. An atomic argument will be a list with one element.
func (arguments Arguments) UnpackValues(data []byte) ([]Token, error) {
	nonIndexedArgs := arguments.NonIndexed()
	retval := make([]Token, 0, len(nonIndexedArgs))
	virtualArgs := 0
	for index, arg := range nonIndexedArgs {
		token, err := toToken((index+virtualArgs)*32, arg.Type, data)
		if err != nil {
			return nil, err
		}
		if arg.Type.T == ArrayTy && !isDynamicType(arg.Type) {
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
			virtualArgs += getTypeSize(arg.Type)/32 - 1
		} else if arg.Type.T == TupleTy && !isDynamicType(arg.Type) {
			// If we have a static tuple, like (uint256, bool, uint256), these are
			// coded as just like uint256,bool,uint256
			virtualArgs += getTypeSize(arg.Type)/32 - 1
		}
		retval = append(retval, token)
	}
	return retval, nil
}

// PackValues performs the operation token list -> hexdata.
// It is the semantic opposite of UnpackValues.
func (arguments Arguments) PackValues(args []Token) ([]byte, error) {
	return arguments.Pack(args...)
}

// Pack performs the operation token list -> hexdata.
func (arguments Arguments) Pack(args ...Token) ([]byte, error) {
	// Make sure arguments match up and pack them
	abiArgs := arguments
	if len(args) != len(abiArgs) {
		return nil, fmt.Errorf("%w: argument count mismatch: got %d for %d", ErrTypeMismatch, len(args), len(abiArgs))
	}
	// variable input is the output appended at the end of packed
	// output. This is used for strings and bytes types input.
	var variableInput []byte

	// input offset is the bytes offset for packed output
	inputOffset := 0
	for _, abiArg := range abiArgs {
		inputOffset += getTypeSize(abiArg.Type)
	}
	var ret []byte
	for i, a := range args {
		input := abiArgs[i]
		// pack the input
		packed, err := input.Type.pack(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		// check for dynamic types
		if isDynamicType(input.Type) {
			// set the offset
			ret = append(ret, packNum(inputOffset)...)
			// calculate next offset
			inputOffset += len(packed)
			// append to variable input
			variableInput = append(variableInput, packed...)
		} else {
			// append the packed value to the input
			ret = append(ret, packed...)
		}
	}
	// append the variable input at the end of the packed input
	ret = append(ret, variableInput...)

	return ret, nil
}
