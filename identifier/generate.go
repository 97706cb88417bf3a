// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Seed - environmental entropy for one identifier
type Seed struct {
	Fingerprint [32]byte // digest of the prior committed state
	Position    uint64   // committed call count
	SubPosition uint32   // draw number within the current call
}

// SeedProvider - supplies a fresh seed for every draw
type SeedProvider interface {
	Seed() Seed
}

const preimageLength = 32 + 8 + 4 + 4

// Generate - BLAKE2b-256 of fingerprint ++ position ++ sub-position ++ count
//
// integers are little endian; the result is not guaranteed unique, so
// callers must still check it against the registry
func Generate(seed Seed, count uint32) Identifier {
	preimage := make([]byte, preimageLength)
	n := copy(preimage, seed.Fingerprint[:])
	binary.LittleEndian.PutUint64(preimage[n:], seed.Position)
	n += 8
	binary.LittleEndian.PutUint32(preimage[n:], seed.SubPosition)
	n += 4
	binary.LittleEndian.PutUint32(preimage[n:], count)

	return Identifier(blake2b.Sum256(preimage))
}
