// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
// Ownership:
//
//   O ⧺ owner            - bounded set of owned identifiers
//                          data: id ⧺ id ⧺ …

// Index - per owner bounded set of asset identifiers
type Index struct {
	owned storage.Handle
}

// New - index over the owned pool
func New(owned storage.Handle) *Index {
	return &Index{
		owned: owned,
	}
}

// Append - record that owner now holds id
func (x *Index) Append(trx storage.Transaction, owner *account.Account, id identifier.Identifier) error {
	o := x.load(trx, owner)
	if err := o.Append(id); nil != err {
		return err
	}
	trx.Put(x.owned, owner.Bytes(), o.Pack())
	return nil
}

// Remove - record that owner no longer holds id
//
// an owner left with nothing has its record deleted
func (x *Index) Remove(trx storage.Transaction, owner *account.Account, id identifier.Identifier) error {
	o := x.load(trx, owner)
	if err := o.Remove(id); nil != err {
		return err
	}
	if 0 == o.Len() {
		trx.Delete(x.owned, owner.Bytes())
	} else {
		trx.Put(x.owned, owner.Bytes(), o.Pack())
	}
	return nil
}

// List - identifiers held by owner, in no particular order
//
// trx may be nil for a read of committed data
func (x *Index) List(trx storage.Transaction, owner *account.Account) []identifier.Identifier {
	return x.load(trx, owner).Items()
}

// CurrentlyOwns - check owner holds id
func (x *Index) CurrentlyOwns(trx storage.Transaction, owner *account.Account, id identifier.Identifier) bool {
	return x.load(trx, owner).Contains(id)
}

func (x *Index) load(trx storage.Transaction, owner *account.Account) *Owned {
	var packed []byte
	if nil == trx {
		packed = x.owned.Get(owner.Bytes())
	} else {
		packed = trx.Get(x.owned, owner.Bytes())
	}
	if nil == packed {
		return &Owned{}
	}

	o, err := UnpackOwned(packed)
	if nil != err {
		logger.Criticalf("ownership: owner: %s  record length: %d", owner, len(packed))
		logger.Panic("ownership: Owned database corrupt")
	}
	return o
}
