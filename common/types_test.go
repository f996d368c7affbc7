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

package common

import (
	"encoding/json"
	"testing"
)

func TestBytesConversion(t *testing.T) {
	bytes := []byte{5}
	hash := BytesToHash(bytes)

	var exp Hash
	exp[31] = 5

	if hash != exp {
		t.Errorf("expected %x got %x", exp, hash)
	}
}

func TestIsHexAddress(t *testing.T) {
	tests := []struct {
		str string
		exp bool
	}{
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"0X5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed1", false},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beae", false},
		{"0xxaaeb6053f3e94c9b9a09f33669435e7ef1beaed", false},
		{"", false},
	}

	for _, test := range tests {
		if result := IsHexAddress(test.str); result != test.exp {
			t.Errorf("IsHexAddress(%s) == %v; expected %v", test.str, result, test.exp)
		}
	}
}

// EIP-55 reference vectors.
func TestAddressHexChecksum(t *testing.T) {
	tests := []struct {
		input  string
		output string
	}{
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
		{"0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359", "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"},
		{"0xdbf03b407c01e7cd3cbea99509d93f8dddc8c6fb", "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"},
		{"0xd1220a0cf47c7b9be7a2e6ba89f429762e7b9adb", "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb"},
	}
	for i, test := range tests {
		output := HexToAddress(test.input).Hex()
		if output != test.output {
			t.Errorf("test #%d: failed to match when it should (%s != %s)", i, output, test.output)
		}
	}
}

func TestAddressSetBytesCropsLeft(t *testing.T) {
	b := make([]byte, 24)
	b[0] = 0xff
	b[23] = 0x01
	addr := BytesToAddress(b)
	if addr[19] != 0x01 || addr[0] != 0 {
		t.Errorf("expected left crop, got %x", addr)
	}
}

func TestHashJSONRoundTrip(t *testing.T) {
	h := HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
	blob, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var dec Hash
	if err := json.Unmarshal(blob, &dec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if dec != h {
		t.Errorf("round trip mismatch: %x != %x", dec, h)
	}
}

func TestAddressUnmarshalJSON(t *testing.T) {
	var a Address
	if err := json.Unmarshal([]byte(`"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a != HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed") {
		t.Errorf("unexpected address %x", a)
	}
	if err := json.Unmarshal([]byte(`"0x00"`), &a); err == nil {
		t.Error("expected length error")
	}
}
