// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
)

func setup(t *testing.T) (*storage.Store, *ownership.Index) {
	s, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return s, ownership.New(s.Pools.Owned)
}

func TestIndexAppendRemove(t *testing.T) {
	s, x := setup(t)
	defer s.Close()

	trx, _ := s.NewDBTransaction()
	assert.Nil(t, x.Append(trx, fixtures.Alice, makeId(1)), "append 1")
	assert.Nil(t, x.Append(trx, fixtures.Alice, makeId(2)), "append 2")
	assert.Nil(t, x.Append(trx, fixtures.Bob, makeId(3)), "append 3")
	assert.Nil(t, trx.Commit(), "commit")

	assert.ElementsMatch(t, []identifier.Identifier{makeId(1), makeId(2)}, x.List(nil, fixtures.Alice), "alice")
	assert.ElementsMatch(t, []identifier.Identifier{makeId(3)}, x.List(nil, fixtures.Bob), "bob")
	assert.Empty(t, x.List(nil, fixtures.Carol), "carol")

	trx, _ = s.NewDBTransaction()
	assert.Nil(t, x.Remove(trx, fixtures.Alice, makeId(1)), "remove 1")
	assert.Equal(t, fault.AssetNotOwned, x.Remove(trx, fixtures.Bob, makeId(1)), "remove unowned")
	assert.Nil(t, trx.Commit(), "commit")

	assert.False(t, x.CurrentlyOwns(nil, fixtures.Alice, makeId(1)), "removed item owned")
	assert.True(t, x.CurrentlyOwns(nil, fixtures.Alice, makeId(2)), "kept item not owned")
}

func TestIndexEmptyOwnerDeleted(t *testing.T) {
	s, x := setup(t)
	defer s.Close()

	trx, _ := s.NewDBTransaction()
	_ = x.Append(trx, fixtures.Carol, makeId(7))
	_ = trx.Commit()

	trx, _ = s.NewDBTransaction()
	_ = x.Remove(trx, fixtures.Carol, makeId(7))
	_ = trx.Commit()

	assert.False(t, s.Pools.Owned.Has(fixtures.Carol.Bytes()), "empty record kept")
}

func TestIndexFull(t *testing.T) {
	s, x := setup(t)
	defer s.Close()

	trx, _ := s.NewDBTransaction()
	for i := 0; i < ownership.MaximumOwned; i += 1 {
		if err := x.Append(trx, fixtures.Bob, makeId(i)); nil != err {
			t.Fatalf("append %d error: %s", i, err)
		}
	}
	err := x.Append(trx, fixtures.Bob, makeId(1000))
	assert.Equal(t, fault.TooManyOwned, err, "overfull append accepted")
	assert.Len(t, x.List(trx, fixtures.Bob), ownership.MaximumOwned, "wrong count")
	trx.Abort()

	assert.Empty(t, x.List(nil, fixtures.Bob), "aborted appends visible")
}
