// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - all-or-nothing execution of state changing calls
//
// each call runs inside one storage transaction; an error from the
// call, or a cancelled context, discards every write it staged.
// events raised by a call are only delivered after its commit
package ledger
