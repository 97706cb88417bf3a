// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - all-or-nothing set of writes across every pool
//
// reads see the pending writes of the same transaction
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Dump() []byte
	Commit() error
	Abort()
}

type transaction struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transaction{
		access: access,
	}
}

func (t *transaction) Begin() error {
	return t.access.Begin()
}

func (t *transaction) Put(handle Handle, key []byte, value []byte) {
	t.access.Put(handle.PrefixKey(key), value)
}

func (t *transaction) PutN(handle Handle, key []byte, value uint64) {
	t.access.Put(handle.PrefixKey(key), encodeN(value))
}

func (t *transaction) Delete(handle Handle, key []byte) {
	t.access.Delete(handle.PrefixKey(key))
}

func (t *transaction) Get(handle Handle, key []byte) []byte {
	value, err := t.access.Get(handle.PrefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) GetN(handle Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle Handle, key []byte) bool {
	found, err := t.access.Has(handle.PrefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

func (t *transaction) Dump() []byte {
	return t.access.DumpTx()
}

func (t *transaction) Commit() error {
	return t.access.Commit()
}

func (t *transaction) Abort() {
	t.access.Abort()
}
