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

// Package abi implements the Ethereum ABI (Application Binary Interface).
//
// The Ethereum ABI is strongly typed, known at compile time
// and static. Values cross the codec boundary as Token trees: a Token
// carries the variant of the value it holds and the payload for that
// variant. Encoding pairs a Type with a Token and rejects mismatches
// before any bytes are produced; decoding is directed by the expected
// Type and yields the Token tree back.
//
// Signatures are derived from the canonical type rendering, so
// "transfer(address,uint256)" hashes to the same selector no matter how
// the argument types were constructed.
package abi
