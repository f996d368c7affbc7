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

// abidump is a command line tool for working with contract ABI signatures:
// computing selectors and event topics, and encoding or decoding call data
// against a human readable signature.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ethabi-go/ethabi/abi"
	"github.com/ethabi-go/ethabi/common"
	"github.com/ethabi-go/ethabi/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:  "abidump",
	Usage: "compute selectors and encode/decode contract call data",
	Commands: []*cli.Command{
		{
			Name:      "selector",
			Usage:     "print the 4-byte selector of a function signature",
			ArgsUsage: "<signature>",
			Action:    doSelector,
		},
		{
			Name:      "topic",
			Usage:     "print the topic0 hash of an event signature",
			ArgsUsage: "<signature>",
			Action:    doTopic,
		},
		{
			Name:      "encode",
			Usage:     "encode call data for a function signature",
			ArgsUsage: "<signature> [arg...]",
			Action:    doEncode,
		},
		{
			Name:      "decode",
			Usage:     "decode call data against a function signature",
			ArgsUsage: "<signature> <hexdata>",
			Action:    doDecode,
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseSignature resolves a human readable signature like
// "transfer(address,uint256)" into a name and typed argument list.
func parseSignature(sig string) (string, abi.Arguments, error) {
	selector, err := abi.ParseSelector(sig)
	if err != nil {
		return "", nil, err
	}
	args := make(abi.Arguments, len(selector.Inputs))
	for i, input := range selector.Inputs {
		typ, err := abi.NewType(input.Type, input.InternalType, input.Components)
		if err != nil {
			return "", nil, err
		}
		args[i] = abi.Argument{Name: input.Name, Type: typ}
	}
	return selector.Name, args, nil
}

func methodFromSignature(sig string) (abi.Method, error) {
	name, args, err := parseSignature(sig)
	if err != nil {
		return abi.Method{}, err
	}
	return abi.NewMethod(name, name, abi.Function, "", false, false, args, nil), nil
}

func doSelector(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: %s selector <signature>", ctx.App.Name)
	}
	method, err := methodFromSignature(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\n", hexutil.Encode(method.ID), method.Sig)
	return nil
}

func doTopic(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: %s topic <signature>", ctx.App.Name)
	}
	name, args, err := parseSignature(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	event := abi.NewEvent(name, name, false, args)
	fmt.Printf("%s\t%s\n", event.ID.Hex(), event.Sig)
	return nil
}

func doEncode(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("usage: %s encode <signature> [arg...]", ctx.App.Name)
	}
	method, err := methodFromSignature(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	raw := ctx.Args().Slice()[1:]
	if len(raw) != len(method.Inputs) {
		return fmt.Errorf("signature wants %d arguments, got %d", len(method.Inputs), len(raw))
	}
	tokens := make([]abi.Token, len(raw))
	for i, arg := range method.Inputs {
		tokens[i], err = parseArgument(arg.Type, raw[i])
		if err != nil {
			return fmt.Errorf("argument %d: %v", i, err)
		}
	}
	data, err := method.Inputs.Pack(tokens...)
	if err != nil {
		return err
	}
	fmt.Println(hexutil.Encode(append(method.ID, data...)))
	return nil
}

func doDecode(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("usage: %s decode <signature> <hexdata>", ctx.App.Name)
	}
	method, err := methodFromSignature(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	data, err := hexutil.Decode(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	// Accept both bare argument data and full call data with the selector.
	if len(data) >= 4 && bytes.Equal(data[:4], method.ID) {
		data = data[4:]
	}
	tokens, err := method.Inputs.Unpack(data)
	if err != nil {
		return err
	}
	for i, tok := range tokens {
		name := method.Inputs[i].Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		fmt.Printf("%s: %s\n", name, tok)
	}
	return nil
}

// parseArgument converts a single command line argument into a token for the
// given type. Composite types are not supported on the command line.
func parseArgument(typ abi.Type, raw string) (abi.Token, error) {
	switch typ.T {
	case abi.AddressTy:
		if !common.IsHexAddress(raw) {
			return abi.Token{}, fmt.Errorf("invalid address %q", raw)
		}
		return abi.NewAddressToken(common.HexToAddress(raw)), nil
	case abi.UintTy:
		v, err := parseUint256(raw)
		if err != nil {
			return abi.Token{}, err
		}
		return abi.NewUintToken(v), nil
	case abi.IntTy:
		neg := strings.HasPrefix(raw, "-")
		v, err := parseUint256(strings.TrimPrefix(raw, "-"))
		if err != nil {
			return abi.Token{}, err
		}
		if neg {
			v.Neg(v)
		}
		return abi.NewIntToken(v), nil
	case abi.BoolTy:
		switch raw {
		case "true":
			return abi.NewBoolToken(true), nil
		case "false":
			return abi.NewBoolToken(false), nil
		}
		return abi.Token{}, fmt.Errorf("invalid bool %q", raw)
	case abi.BytesTy:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return abi.Token{}, err
		}
		return abi.NewBytesToken(b), nil
	case abi.FixedBytesTy:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return abi.Token{}, err
		}
		if len(b) != typ.Size {
			return abi.Token{}, fmt.Errorf("want %d bytes, got %d", typ.Size, len(b))
		}
		return abi.NewFixedBytesToken(b), nil
	case abi.StringTy:
		return abi.NewStringToken(raw), nil
	default:
		return abi.Token{}, fmt.Errorf("unsupported argument type %s, pass abi-encoded data instead", typ)
	}
}

func parseUint256(raw string) (*uint256.Int, error) {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		return uint256.FromHex(raw)
	}
	return uint256.FromDecimal(raw)
}
