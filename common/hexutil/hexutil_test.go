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

package hexutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		input   string
		want    []byte
		wantErr error
	}{
		{input: "", wantErr: ErrEmptyString},
		{input: "0", wantErr: ErrMissingPrefix},
		{input: "0x0", wantErr: ErrOddLength},
		{input: "0x023", wantErr: ErrOddLength},
		{input: "0xzz", wantErr: ErrSyntax},
		{input: "0x", want: []byte{}},
		{input: "0X", want: []byte{}},
		{input: "0x02", want: []byte{0x02}},
		{input: "0xffffffffff", want: []byte{0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, test := range tests {
		dec, err := Decode(test.input)
		if test.wantErr != nil {
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Decode(%q): got error %v, want %v", test.input, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("Decode(%q): unexpected error %v", test.input, err)
			continue
		}
		if !bytes.Equal(dec, test.want) {
			t.Errorf("Decode(%q): got %x, want %x", test.input, dec, test.want)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		input []byte
		want  string
	}{
		{[]byte{}, "0x"},
		{[]byte{0}, "0x00"},
		{[]byte{0, 0, 1, 2}, "0x00000102"},
	}
	for _, test := range tests {
		if enc := Encode(test.input); enc != test.want {
			t.Errorf("Encode(%x): got %q, want %q", test.input, enc, test.want)
		}
	}
}

func TestBytesJSONRoundTrip(t *testing.T) {
	in := Bytes{0xde, 0xad, 0xbe, 0xef}
	blob, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(blob) != `"0xdeadbeef"` {
		t.Errorf("unexpected encoding %s", blob)
	}
	var out Bytes
	if err := json.Unmarshal(blob, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("round trip mismatch: %x != %x", in, out)
	}
}

func TestBytesUnmarshalErrors(t *testing.T) {
	var out Bytes
	if err := json.Unmarshal([]byte(`10`), &out); err == nil {
		t.Error("expected non-string error")
	}
	if err := json.Unmarshal([]byte(`"deadbeef"`), &out); err == nil {
		t.Error("expected missing prefix error")
	}
}

func TestUnmarshalFixedText(t *testing.T) {
	out := make([]byte, 2)
	if err := UnmarshalFixedText("x", []byte("0x0102"), out); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !bytes.Equal(out, []byte{1, 2}) {
		t.Errorf("got %x", out)
	}
	if err := UnmarshalFixedText("x", []byte("0x01"), out); err == nil {
		t.Error("expected length error")
	}
	if err := UnmarshalFixedText("x", []byte("0102"), out); err == nil {
		t.Error("expected prefix error")
	}
}
