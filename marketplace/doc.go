// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package marketplace - create, transfer, price and sell kitties
//
// every operation runs inside a ledger call: its writes to the
// registry, the ownership index and the balances are staged in the
// call's transaction and its events are emitted last, so a failure at
// any step leaves no trace once the call aborts
package marketplace
