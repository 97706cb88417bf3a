// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = 32 byte asset identifier
// 4. owner        = account bytes (key variant ++ 32 byte public key)
// 5. count        = big endian uint64 (8 bytes)
//
// Assets:
//
//   K ++ id                    - asset record
//                                data: owner length(1) ++ owner ++ listed(1) [++ price(8)]
//   C ++ "count"               - total number of assets ever minted
//                                data: count
//
// Ownership:
//
//   O ++ owner                 - bounded set of owned identifiers (at most 100)
//                                data: id ++ id ++ …
//
// Balances:
//
//   B ++ owner                 - free balance, absent when the account is reaped
//                                data: count
//
// Head:
//
//   H ++ "head"                - last committed state
//                                data: position(8) ++ fingerprint(32)
//
// Testing:
//   Z ++ key                   - testing data
package storage
