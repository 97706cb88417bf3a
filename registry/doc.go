// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the global table of minted assets
//
// Assets are never deleted, so the stored count always equals the
// number of records.  Records are only ever replaced whole.
package registry
