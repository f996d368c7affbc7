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
	"regexp"
	"strconv"
	"strings"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
)

// Type is the representation of a supported argument type. It is a closed
// tagged union; the T field selects the variant and the remaining fields carry
// the variant's payload. A Type is immutable once constructed and may be
// shared by reference wherever the same type tree recurs.
type Type struct {
	Elem *Type // nested element type for SliceTy and ArrayTy
	Size int   // bit width for IntTy/UintTy, byte width for FixedBytesTy, length for ArrayTy
	T    byte  // our own type checking

	stringKind string // holds the canonical string for deriving signatures

	// Tuple relative fields
	TupleElems    []*Type  // type information of all tuple fields
	TupleRawNames []string // raw field name of all tuple fields, "" when unnamed
}

var (
	// typeRegex parses the abi sub types
	typeRegex = regexp.MustCompile("([a-zA-Z]+)(([0-9]+)(x([0-9]+))?)?")

	// sliceSizeRegex grab the slice size
	sliceSizeRegex = regexp.MustCompile("[0-9]+")
)

// NewType creates a new abi type from its string representation given in t.
// Tuple types are described by t == "tuple" (plus array suffixes) together
// with the ordered components slice.
func NewType(t string, internalType string, components []ArgumentMarshaling) (typ Type, err error) {
	// check that array brackets are equal if they exist
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, fmt.Errorf("%w: unbalanced brackets in %q", ErrUnsupportedType, t)
	}
	typ.stringKind = t

	// if there are brackets, get ready to go into slice/array mode and
	// recursively create the type
	if strings.Count(t, "[") != 0 {
		// Note internalType can be empty here.
		subInternal := internalType
		if i := strings.LastIndex(internalType, "["); i != -1 {
			subInternal = subInternal[:i]
		}
		// recursively embed the type
		i := strings.LastIndex(t, "[")
		embeddedType, err := NewType(t[:i], subInternal, components)
		if err != nil {
			return Type{}, err
		}
		// grab the last cell and create a type from there
		sliced := t[i:]
		// grab the slice size with regexp
		intz := sliceSizeRegex.FindAllString(sliced, -1)

		if len(intz) == 0 {
			// is a slice
			typ.T = SliceTy
			typ.Elem = &embeddedType
			typ.stringKind = embeddedType.stringKind + sliced
		} else if len(intz) == 1 {
			// is an array
			typ.T = ArrayTy
			typ.Elem = &embeddedType
			typ.Size, err = strconv.Atoi(intz[0])
			if err != nil {
				return Type{}, fmt.Errorf("abi: error parsing array size: %v", err)
			}
			typ.stringKind = embeddedType.stringKind + sliced
		} else {
			return Type{}, fmt.Errorf("%w: invalid formatting of array type %q", ErrUnsupportedType, t)
		}
		return typ, err
	}
	// parse the type and size of the abi-type.
	matches := typeRegex.FindAllStringSubmatch(t, -1)
	if len(matches) == 0 {
		return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
	}
	parsedType := matches[0]

	// varSize is the size of the variable
	var varSize int
	if len(parsedType[3]) > 0 {
		var err error
		varSize, err = strconv.Atoi(parsedType[2])
		if err != nil {
			return Type{}, fmt.Errorf("abi: error parsing variable size: %v", err)
		}
	} else {
		if parsedType[0] == "uint" || parsedType[0] == "int" {
			// this should fail because it means that there's something wrong with
			// the abi type (the compiler should always format it to the size...always)
			return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
		}
	}
	// varType is the parsed abi type
	switch varType := parsedType[1]; varType {
	case "int":
		return NewIntType(varSize)
	case "uint":
		return NewUintType(varSize)
	case "bool":
		typ.T = BoolTy
	case "address":
		typ.Size = 20
		typ.T = AddressTy
	case "string":
		typ.T = StringTy
	case "bytes":
		if varSize == 0 {
			typ.T = BytesTy
		} else {
			return NewFixedBytesType(varSize)
		}
	case "tuple":
		var (
			elems      []*Type
			names      []string
			expression string // canonical parameter expression
		)
		expression += "("
		for idx, c := range components {
			cType, err := NewType(c.Type, c.InternalType, c.Components)
			if err != nil {
				return Type{}, err
			}
			elems = append(elems, &cType)
			names = append(names, c.Name)
			expression += cType.stringKind
			if idx != len(components)-1 {
				expression += ","
			}
		}
		expression += ")"

		typ.TupleElems = elems
		typ.TupleRawNames = names
		typ.T = TupleTy
		typ.stringKind = expression
	default:
		if strings.HasPrefix(internalType, "contract ") {
			typ.Size = 20
			typ.T = AddressTy
		} else {
			return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
		}
	}

	return
}

// NewIntType returns the type of a signed integer with the given bit width.
// The width must be a multiple of 8 between 8 and 256.
func NewIntType(size int) (Type, error) {
	if size%8 != 0 || size < 8 || size > 256 {
		return Type{}, fmt.Errorf("%w: int%d", ErrUnsupportedType, size)
	}
	return Type{T: IntTy, Size: size, stringKind: "int" + strconv.Itoa(size)}, nil
}

// NewUintType returns the type of an unsigned integer with the given bit
// width. The width must be a multiple of 8 between 8 and 256.
func NewUintType(size int) (Type, error) {
	if size%8 != 0 || size < 8 || size > 256 {
		return Type{}, fmt.Errorf("%w: uint%d", ErrUnsupportedType, size)
	}
	return Type{T: UintTy, Size: size, stringKind: "uint" + strconv.Itoa(size)}, nil
}

// NewFixedBytesType returns the type of a fixed byte sequence of size bytes,
// 1 up to 32.
func NewFixedBytesType(size int) (Type, error) {
	if size < 1 || size > 32 {
		return Type{}, fmt.Errorf("%w: bytes%d", ErrUnsupportedType, size)
	}
	return Type{T: FixedBytesTy, Size: size, stringKind: "bytes" + strconv.Itoa(size)}, nil
}

// NewAddressType returns the address type.
func NewAddressType() Type {
	return Type{T: AddressTy, Size: 20, stringKind: "address"}
}

// NewBoolType returns the boolean type.
func NewBoolType() Type {
	return Type{T: BoolTy, stringKind: "bool"}
}

// NewStringType returns the dynamic string type.
func NewStringType() Type {
	return Type{T: StringTy, stringKind: "string"}
}

// NewBytesType returns the dynamic byte-sequence type.
func NewBytesType() Type {
	return Type{T: BytesTy, stringKind: "bytes"}
}

// NewSliceType returns the type of a dynamically sized array with the given
// element type.
func NewSliceType(elem Type) Type {
	return Type{T: SliceTy, Elem: &elem, stringKind: elem.stringKind + "[]"}
}

// NewArrayType returns the type of a fixed size array of size elements of the
// given element type.
func NewArrayType(elem Type, size int) (Type, error) {
	if size < 0 {
		return Type{}, fmt.Errorf("%w: negative array size %d", ErrUnsupportedType, size)
	}
	return Type{
		T:          ArrayTy,
		Elem:       &elem,
		Size:       size,
		stringKind: elem.stringKind + "[" + strconv.Itoa(size) + "]",
	}, nil
}

// NewTupleType returns the tuple type with the given ordered member types.
// The names slice carries the optional member names and may be nil; when
// non-nil its length must match elems. Names never contribute to the
// canonical signature rendering.
func NewTupleType(elems []Type, names []string) (Type, error) {
	if names != nil && len(names) != len(elems) {
		return Type{}, fmt.Errorf("abi: tuple name count mismatch: %d names for %d members", len(names), len(elems))
	}
	var (
		ptrs = make([]*Type, len(elems))
		raw  = make([]string, len(elems))
		sk   = make([]string, len(elems))
	)
	for i := range elems {
		elem := elems[i]
		ptrs[i] = &elem
		sk[i] = elem.stringKind
		if names != nil {
			raw[i] = names[i]
		}
	}
	return Type{
		T:             TupleTy,
		TupleElems:    ptrs,
		TupleRawNames: raw,
		stringKind:    "(" + strings.Join(sk, ",") + ")",
	}, nil
}

// String implements Stringer. The returned form is the canonical signature
// rendering: no whitespace, tuple member names dropped, array suffixes
// appended after the element rendering.
func (t Type) String() (out string) {
	return t.stringKind
}

// Equal reports whether two types are structurally identical. Tuple member
// names are not part of a type's identity.
func (t Type) Equal(u Type) bool {
	return t.stringKind == u.stringKind
}

// IsDynamic reports whether the encoded size of the type depends on its
// value's contents.
func (t Type) IsDynamic() bool {
	return isDynamicType(t)
}

// pack encodes the token v, which must be well-typed against t, into its
// canonical head/tail byte form.
func (t Type) pack(v Token) ([]byte, error) {
	if err := typeCheck(t, v); err != nil {
		return nil, err
	}

	switch t.T {
	case SliceTy, ArrayTy:
		var ret []byte

		if t.requiresLengthPrefix() {
			// append length
			ret = append(ret, packNum(len(v.Elems))...)
		}

		// calculate offset if any
		offset := 0
		offsetReq := isDynamicType(*t.Elem)
		if offsetReq {
			offset = getTypeSize(*t.Elem) * len(v.Elems)
		}
		var tail []byte
		for _, elem := range v.Elems {
			val, err := t.Elem.pack(elem)
			if err != nil {
				return nil, err
			}
			if !offsetReq {
				ret = append(ret, val...)
				continue
			}
			ret = append(ret, packNum(offset)...)
			offset += len(val)
			tail = append(tail, val...)
		}
		return append(ret, tail...), nil
	case TupleTy:
		// (T1,...,Tk) for k >= 0 and any types T1, …, Tk
		// enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
		// where X = (X(1), ..., X(k)) and head and tail are defined for Ti being a static
		// type as
		//     head(X(i)) = enc(X(i)) and tail(X(i)) = "" (the empty string)
		// and as
		//     head(X(i)) = enc(len(head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(i-1))))
		//     tail(X(i)) = enc(X(i))
		// otherwise, i.e. if Ti is a dynamic type.
		//
		// Calculate prefix occupied size.
		offset := 0
		for _, elem := range t.TupleElems {
			offset += getTypeSize(*elem)
		}
		var ret, tail []byte
		for i, elem := range t.TupleElems {
			val, err := elem.pack(v.Elems[i])
			if err != nil {
				return nil, err
			}
			if isDynamicType(*elem) {
				ret = append(ret, packNum(offset)...)
				tail = append(tail, val...)
				offset += len(val)
			} else {
				ret = append(ret, val...)
			}
		}
		return append(ret, tail...), nil

	default:
		return packElement(t, v)
	}
}

// requiresLengthPrefix returns whether the type requires any sort of length
// prefixing.
func (t Type) requiresLengthPrefix() bool {
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy
}

// isDynamicType returns true if the type is dynamic.
// The following types are called “dynamic”:
// * bytes
// * string
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
func isDynamicType(t Type) bool {
	if t.T == TupleTy {
		for _, elem := range t.TupleElems {
			if isDynamicType(*elem) {
				return true
			}
		}
		return false
	}
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy || (t.T == ArrayTy && isDynamicType(*t.Elem))
}

// getTypeSize returns the size that this type needs to occupy.
// We distinguish static and dynamic types. Static types are encoded in-place
// and dynamic types are encoded at a separately allocated location after the
// current block.
// So for a static variable, the size returned represents the size that the
// variable actually occupies.
// For a dynamic variable, the returned size is fixed 32 bytes, which is used
// to store the location reference for actual value storage.
func getTypeSize(t Type) int {
	if t.T == ArrayTy && !isDynamicType(*t.Elem) {
		// Recursively calculate type size if it is a nested array
		if t.Elem.T == ArrayTy || t.Elem.T == TupleTy {
			return t.Size * getTypeSize(*t.Elem)
		}
		return t.Size * 32
	} else if t.T == TupleTy && !isDynamicType(t) {
		total := 0
		for _, elem := range t.TupleElems {
			total += getTypeSize(*elem)
		}
		return total
	}
	return 32
}
