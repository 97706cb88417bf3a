// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"math"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// from storage/doc.go:
//
// Balances:
//
//   B ⧺ account          - spendable funds
//                          data: 8 byte big endian amount

// Preservation - what may happen to the paying account
type Preservation int

// possible preservation modes
const (
	Preserve   Preservation = iota // payer must remain at or above the existential deposit
	Expendable                     // payer record may be reaped
)

func (p Preservation) String() string {
	switch p {
	case Preserve:
		return "preserve"
	case Expendable:
		return "expendable"
	default:
		return "unknown"
	}
}

// Ledger - account balances held in the same store as the assets
type Ledger struct {
	balances           storage.Handle
	existentialDeposit uint64
}

// New - ledger over the balances pool
//
// an account holding less than existentialDeposit does not exist
func New(balances storage.Handle, existentialDeposit uint64) *Ledger {
	return &Ledger{
		balances:           balances,
		existentialDeposit: existentialDeposit,
	}
}

// ExistentialDeposit - the minimum balance of a live account
func (l *Ledger) ExistentialDeposit() uint64 {
	return l.existentialDeposit
}

// Get - current balance, zero for a missing account
//
// trx may be nil for a read of committed data
func (l *Ledger) Get(trx storage.Transaction, acct *account.Account) uint64 {
	var n uint64
	if nil == trx {
		n, _ = l.balances.GetN(acct.Bytes())
	} else {
		n, _ = trx.GetN(l.balances, acct.Bytes())
	}
	return n
}

// Deposit - create funds in an account
func (l *Ledger) Deposit(trx storage.Transaction, acct *account.Account, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}
	current := l.Get(trx, acct)
	if current > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}
	total := current + amount
	if total < l.existentialDeposit {
		return fault.BelowMinimum
	}
	trx.PutN(l.balances, acct.Bytes(), total)
	return nil
}

// Transfer - move amount from one account to another
//
// a zero amount or a transfer to self succeeds without writing
func (l *Ledger) Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64, preservation Preservation) error {
	if 0 == amount || from.Equal(to) {
		return nil
	}

	fromBalance := l.Get(trx, from)
	if fromBalance < amount {
		return fault.InsufficientFunds
	}

	remaining := fromBalance - amount
	reap := false
	if remaining < l.existentialDeposit {
		if Preserve == preservation {
			return fault.InsufficientFunds
		}
		reap = true
	}

	toBalance := l.Get(trx, to)
	if toBalance > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}
	received := toBalance + amount
	if received < l.existentialDeposit {
		return fault.BelowMinimum
	}

	if reap || 0 == remaining {
		trx.Delete(l.balances, from.Bytes())
	} else {
		trx.PutN(l.balances, from.Bytes(), remaining)
	}
	trx.PutN(l.balances, to.Bytes(), received)

	return nil
}
