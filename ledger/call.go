// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/storage"
)

// Call - the scope of one executing operation
type Call struct {
	trx         storage.Transaction
	fingerprint [32]byte
	position    uint64
	subPosition uint32
	events      []Event
}

// Transaction - the open transaction, valid until the call returns
func (c *Call) Transaction() storage.Transaction {
	return c.trx
}

// Seed - context for the next identifier drawn in this call
//
// successive draws in one call differ by sub-position
func (c *Call) Seed() identifier.Seed {
	seed := identifier.Seed{
		Fingerprint: c.fingerprint,
		Position:    c.position,
		SubPosition: c.subPosition,
	}
	c.subPosition += 1
	return seed
}

// Emit - queue an event for delivery after commit
func (c *Call) Emit(e Event) {
	c.events = append(c.events, e)
}
