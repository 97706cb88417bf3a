// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
// Head:
//
//   H ⧺ "fingerprint"    - SHA3-256 chain over every committed write log
//   H ⧺ "position"       - number of committed calls

var (
	fingerprintKey = []byte("fingerprint")
	positionKey    = []byte("position")
)

// Ledger - serialises calls against a store
type Ledger struct {
	sync.Mutex
	log       *logger.L
	store     *storage.Store
	head      storage.Handle
	observers []Observer
}

// Operation - the body of a call
type Operation func(*Call) error

// New - create a ledger over an open store
func New(store *storage.Store, observers ...Observer) *Ledger {
	return &Ledger{
		log:       logger.New("ledger"),
		store:     store,
		head:      store.Pools.Head,
		observers: observers,
	}
}

// Head - the committed fingerprint and position
func (l *Ledger) Head() ([32]byte, uint64) {
	l.Lock()
	defer l.Unlock()

	return l.readHead(nil)
}

// Execute - run one operation as an all-or-nothing unit
//
// on success the write log is committed and the call's events are
// delivered to every observer; otherwise nothing is written and no
// event is seen
func (l *Ledger) Execute(ctx context.Context, name string, operation Operation) error {
	l.Lock()
	defer l.Unlock()

	if nil != ctx.Err() {
		l.log.Debugf("%s: cancelled before start", name)
		return fault.ContextCancelled
	}

	trx, err := l.store.NewDBTransaction()
	if nil != err {
		l.log.Errorf("%s: begin error: %s", name, err)
		return err
	}

	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	fingerprint, position := l.readHead(trx)
	call := &Call{
		trx:         trx,
		fingerprint: fingerprint,
		position:    position,
	}

	err = operation(call)
	if nil != err {
		l.log.Debugf("%s: rejected: %s", name, err)
		return err
	}

	if nil != ctx.Err() {
		l.log.Debugf("%s: cancelled before commit", name)
		return fault.ContextCancelled
	}

	next := sha3.Sum256(append(fingerprint[:], trx.Dump()...))
	trx.Put(l.head, fingerprintKey, next[:])
	trx.PutN(l.head, positionKey, position+1)

	err = trx.Commit()
	committed = true
	if nil != err {
		l.log.Criticalf("%s: commit error: %s", name, err)
		return err
	}

	l.log.Tracef("%s: committed at position: %d  events: %d", name, position+1, len(call.events))

	for _, e := range call.events {
		for _, o := range l.observers {
			o.Notify(e)
		}
	}
	return nil
}

// trx may be nil to read committed values
func (l *Ledger) readHead(trx storage.Transaction) ([32]byte, uint64) {
	var packed []byte
	var position uint64
	if nil == trx {
		packed = l.head.Get(fingerprintKey)
		position, _ = l.head.GetN(positionKey)
	} else {
		packed = trx.Get(l.head, fingerprintKey)
		position, _ = trx.GetN(l.head, positionKey)
	}

	var fingerprint [32]byte
	if nil != packed {
		if len(fingerprint) != len(packed) {
			logger.Panicf("ledger: corrupt fingerprint length: %d", len(packed))
		}
		copy(fingerprint[:], packed)
	}
	return fingerprint, position
}
