// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"encoding/hex"

	"github.com/bitmark-inc/kittyd/fault"
)

// Length - number of bytes in an identifier
const Length = 32

// Identifier - the primary key of an asset
//
// to convert to bytes just use id[:]
type Identifier [Length]byte

// String - hex form for the fmt package (for %s)
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - hex form for the fmt package (for %#v)
func (id Identifier) GoString() string {
	return "<kitty:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert identifier to hex text
func (id Identifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(id))
	buffer := make([]byte, size)
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.IdentifierHasWrongLength
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return err
	}
	copy(id[:], buffer)
	return nil
}

// FromBytes - convert and validate a byte slice to an identifier
func FromBytes(id *Identifier, buffer []byte) error {
	if Length != len(buffer) {
		return fault.IdentifierHasWrongLength
	}
	copy(id[:], buffer)
	return nil
}
