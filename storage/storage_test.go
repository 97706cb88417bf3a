// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

var (
	testKey   = []byte("key-two")
	testData  = []byte("data-two")
	otherKey  = []byte("key-three")
	otherData = []byte("data-three")
)

func setupMemory(t *testing.T) *storage.Store {
	s, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return s
}

func TestCommitPersists(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	trx, err := s.NewDBTransaction()
	assert.Nil(t, err, "begin")

	trx.Put(s.Pools.TestData, testKey, testData)
	trx.PutN(s.Pools.TestData, otherKey, 1234)

	assert.Nil(t, s.Pools.TestData.Get(testKey), "visible before commit")
	assert.Equal(t, testData, trx.Get(s.Pools.TestData, testKey), "transaction cannot read own write")

	n, found := trx.GetN(s.Pools.TestData, otherKey)
	assert.True(t, found, "pending n not found")
	assert.Equal(t, uint64(1234), n, "wrong pending n")

	err = trx.Commit()
	assert.Nil(t, err, "commit")

	assert.Equal(t, testData, s.Pools.TestData.Get(testKey), "not visible after commit")
	n, found = s.Pools.TestData.GetN(otherKey)
	assert.True(t, found, "committed n not found")
	assert.Equal(t, uint64(1234), n, "wrong committed n")
}

func TestAbortDiscards(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	trx, _ := s.NewDBTransaction()
	trx.Put(s.Pools.TestData, testKey, testData)
	trx.Abort()

	assert.False(t, s.Pools.TestData.Has(testKey), "aborted write is visible")

	// transaction can be reused after abort and starts empty
	trx, err := s.NewDBTransaction()
	assert.Nil(t, err, "begin after abort")
	assert.Nil(t, trx.Get(s.Pools.TestData, testKey), "aborted write leaked into next transaction")
	trx.Abort()
}

func TestDeleteHidesCommittedValue(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	trx, _ := s.NewDBTransaction()
	trx.Put(s.Pools.TestData, testKey, testData)
	trx.Put(s.Pools.TestData, otherKey, otherData)
	_ = trx.Commit()

	trx, _ = s.NewDBTransaction()
	trx.Delete(s.Pools.TestData, testKey)
	assert.Nil(t, trx.Get(s.Pools.TestData, testKey), "deleted key still readable")
	assert.False(t, trx.Has(s.Pools.TestData, testKey), "deleted key still present")
	assert.True(t, trx.Has(s.Pools.TestData, otherKey), "other key missing")
	assert.True(t, s.Pools.TestData.Has(testKey), "delete visible before commit")
	_ = trx.Commit()

	assert.False(t, s.Pools.TestData.Has(testKey), "delete not committed")
}

func TestPoolsAreSeparate(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	trx, _ := s.NewDBTransaction()
	trx.Put(s.Pools.Kitties, testKey, testData)
	_ = trx.Commit()

	assert.True(t, s.Pools.Kitties.Has(testKey), "missing from own pool")
	assert.False(t, s.Pools.Owned.Has(testKey), "leaked into other pool")
}

func TestSingleTransaction(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	_, err := s.NewDBTransaction()
	assert.Nil(t, err, "first begin")

	_, err = s.NewDBTransaction()
	assert.Equal(t, fault.TransactionInUse, err, "second begin should fail")
}

func TestCommitWithoutBegin(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	trx, _ := s.NewDBTransaction()
	_ = trx.Commit()

	err := trx.Commit()
	assert.Equal(t, fault.TransactionNotInUse, err, "commit of closed transaction")
}

func TestDumpContainsPendingWrites(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	trx, _ := s.NewDBTransaction()
	empty := len(trx.Dump())
	trx.Put(s.Pools.TestData, testKey, testData)
	assert.True(t, len(trx.Dump()) > empty, "dump did not grow")
	trx.Abort()
}

func TestReopen(t *testing.T) {
	dir, err := ioutil.TempDir("", "storage")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "test.leveldb")

	_, err = storage.Open(name, storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")

	s, err := storage.Open(name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	trx, _ := s.NewDBTransaction()
	trx.Put(s.Pools.TestData, testKey, testData)
	_ = trx.Commit()
	s.Close()

	s, err = storage.Open(name, storage.ReadOnly)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	defer s.Close()

	assert.Equal(t, testData, s.Pools.TestData.Get(testKey), "data lost on reopen")
}
