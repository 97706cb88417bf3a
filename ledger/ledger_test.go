// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/storage"
)

type testEvent string

func (e testEvent) Kind() string {
	return string(e)
}

type recorder struct {
	events []string
}

func (r *recorder) Notify(e ledger.Event) {
	r.events = append(r.events, e.Kind())
}

func setup(t *testing.T) (*storage.Store, *ledger.Ledger, *recorder) {
	fixtures.SetupTestLogger()

	s, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	r := &recorder{}
	return s, ledger.New(s, r), r
}

func teardown(s *storage.Store) {
	s.Close()
	fixtures.TeardownTestLogger()
}

var key = []byte("key")

func TestExecuteCommits(t *testing.T) {
	s, l, r := setup(t)
	defer teardown(s)

	err := l.Execute(context.Background(), "put", func(call *ledger.Call) error {
		call.Transaction().Put(s.Pools.TestData, key, []byte("value"))
		call.Emit(testEvent("one"))
		call.Emit(testEvent("two"))
		return nil
	})
	assert.Nil(t, err, "execute")
	assert.Equal(t, []byte("value"), s.Pools.TestData.Get(key), "value not committed")
	assert.Equal(t, []string{"one", "two"}, r.events, "wrong events")

	fingerprint, position := l.Head()
	assert.Equal(t, uint64(1), position, "wrong position")
	assert.NotEqual(t, [32]byte{}, fingerprint, "fingerprint not set")
}

func TestExecuteAborts(t *testing.T) {
	s, l, r := setup(t)
	defer teardown(s)

	failure := errors.New("failure")
	err := l.Execute(context.Background(), "fail", func(call *ledger.Call) error {
		call.Transaction().Put(s.Pools.TestData, key, []byte("value"))
		call.Emit(testEvent("lost"))
		return failure
	})
	assert.Equal(t, failure, err, "wrong error")
	assert.False(t, s.Pools.TestData.Has(key), "aborted value visible")
	assert.Empty(t, r.events, "events delivered")

	_, position := l.Head()
	assert.Equal(t, uint64(0), position, "position moved")

	// the transaction must be free again
	err = l.Execute(context.Background(), "after", func(call *ledger.Call) error {
		return nil
	})
	assert.Nil(t, err, "execute after abort")
}

func TestExecuteCancelled(t *testing.T) {
	s, l, r := setup(t)
	defer teardown(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := l.Execute(ctx, "cancelled", func(call *ledger.Call) error {
		ran = true
		return nil
	})
	assert.Equal(t, fault.ContextCancelled, err, "wrong error")
	assert.False(t, ran, "operation ran")

	ctx, cancel = context.WithCancel(context.Background())
	err = l.Execute(ctx, "late", func(call *ledger.Call) error {
		call.Transaction().Put(s.Pools.TestData, key, []byte("value"))
		call.Emit(testEvent("lost"))
		cancel()
		return nil
	})
	assert.Equal(t, fault.ContextCancelled, err, "wrong error")
	assert.False(t, s.Pools.TestData.Has(key), "cancelled value visible")
	assert.Empty(t, r.events, "events delivered")
}

func TestSeeds(t *testing.T) {
	s, l, _ := setup(t)
	defer teardown(s)

	var first [2]uint32
	var position uint64
	var fingerprint [32]byte
	_ = l.Execute(context.Background(), "seed", func(call *ledger.Call) error {
		a := call.Seed()
		b := call.Seed()
		first[0], first[1] = a.SubPosition, b.SubPosition
		position = a.Position
		fingerprint = a.Fingerprint
		assert.Equal(t, a.Position, b.Position, "position differs in one call")
		return nil
	})
	assert.Equal(t, [2]uint32{0, 1}, first, "wrong sub-positions")
	assert.Equal(t, uint64(0), position, "wrong initial position")

	_ = l.Execute(context.Background(), "seed", func(call *ledger.Call) error {
		seed := call.Seed()
		assert.Equal(t, uint64(1), seed.Position, "position not advanced")
		assert.Equal(t, uint32(0), seed.SubPosition, "sub-position not reset")
		assert.NotEqual(t, fingerprint, seed.Fingerprint, "fingerprint not advanced")
		return nil
	})
}

func TestObserverFunc(t *testing.T) {
	n := 0
	var o ledger.Observer = ledger.ObserverFunc(func(e ledger.Event) {
		n += len(e.Kind())
	})
	o.Notify(testEvent("abc"))
	assert.Equal(t, 3, n, "function not called")
}
