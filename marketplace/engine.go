// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Scope - the enclosing all-or-nothing call
//
// *ledger.Call satisfies this
type Scope interface {
	Transaction() storage.Transaction
	Seed() identifier.Seed
	Emit(ledger.Event)
}

// Payments - the balance transfer primitive
//
// writes must go to trx so an abort of the scope undoes them
type Payments interface {
	Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64, preservation balance.Preservation) error
}

// Generator - derive an identifier from a seed and the asset count
type Generator func(identifier.Seed, uint32) identifier.Identifier

// Engine - the only writer of the registry and the ownership index
type Engine struct {
	log      *logger.L
	registry *registry.Registry
	owners   *ownership.Index
	payments Payments
	generate Generator
}

// New - create an engine, a nil generator selects identifier.Generate
func New(reg *registry.Registry, owners *ownership.Index, payments Payments, generate Generator) *Engine {
	if nil == generate {
		generate = identifier.Generate
	}
	return &Engine{
		log:      logger.New("marketplace"),
		registry: reg,
		owners:   owners,
		payments: payments,
		generate: generate,
	}
}

// Create - mint a new unlisted kitty for owner
func (e *Engine) Create(scope Scope, owner *account.Account) (identifier.Identifier, error) {
	trx := scope.Transaction()

	id := e.generate(scope.Seed(), e.registry.Count(trx))

	_, err := e.registry.Create(trx, id, owner)
	if nil != err {
		e.log.Debugf("create: %s  owner: %s  error: %s", id, owner, err)
		return identifier.Identifier{}, err
	}

	err = e.owners.Append(trx, owner, id)
	if nil != err {
		e.log.Debugf("create: %s  owner: %s  error: %s", id, owner, err)
		return identifier.Identifier{}, err
	}

	e.log.Infof("created: %s  owner: %s", id, owner)
	scope.Emit(Created{
		Owner: owner,
		Id:    id,
	})
	return id, nil
}

// Transfer - give a kitty away, clearing any listing
func (e *Engine) Transfer(scope Scope, from *account.Account, to *account.Account, id identifier.Identifier) error {
	if from.Equal(to) {
		return fault.SameAccountTransfer
	}

	trx := scope.Transaction()

	asset, err := e.registry.Get(trx, id)
	if nil != err {
		return err
	}

	if !asset.Owner.Equal(from) {
		return fault.NotOwner
	}

	asset.Owner = to
	asset.Price = nil

	err = e.owners.Append(trx, to, id)
	if nil != err {
		e.log.Debugf("transfer: %s  to: %s  error: %s", id, to, err)
		return err
	}

	err = e.owners.Remove(trx, from, id)
	if nil != err {
		// registry and index disagree
		e.log.Criticalf("transfer: %s  registry owner: %s  missing from index: %s", id, from, err)
		return err
	}

	e.registry.Replace(trx, asset)

	e.log.Infof("transferred: %s  from: %s  to: %s", id, from, to)
	scope.Emit(Transferred{
		From: from,
		To:   to,
		Id:   id,
	})
	return nil
}

// SetPrice - list a kitty for sale, or delist it with a nil price
func (e *Engine) SetPrice(scope Scope, caller *account.Account, id identifier.Identifier, price *uint64) error {
	trx := scope.Transaction()

	asset, err := e.registry.Get(trx, id)
	if nil != err {
		return err
	}

	if !asset.Owner.Equal(caller) {
		return fault.NotOwner
	}

	if nil != price {
		p := *price
		price = &p
	}
	asset.Price = price
	e.registry.Replace(trx, asset)

	if nil == price {
		e.log.Infof("delisted: %s", id)
	} else {
		e.log.Infof("listed: %s  price: %d", id, *price)
	}
	scope.Emit(PriceSet{
		Owner:    caller,
		Id:       id,
		NewPrice: price,
	})
	return nil
}

// Buy - pay the listed price and take ownership
//
// payment precedes the ownership transfer; a failed transfer makes the
// scope abort and so undoes the payment too
func (e *Engine) Buy(scope Scope, buyer *account.Account, id identifier.Identifier, maxPrice uint64) error {
	trx := scope.Transaction()

	asset, err := e.registry.Get(trx, id)
	if nil != err {
		return err
	}

	if !asset.IsListed() {
		return fault.NotForSale
	}
	price := *asset.Price

	if maxPrice < price {
		return fault.PriceTooLow
	}

	seller := asset.Owner

	err = e.payments.Transfer(trx, buyer, seller, price, balance.Preserve)
	if nil != err {
		e.log.Debugf("buy: %s  buyer: %s  payment error: %s", id, buyer, err)
		return err
	}

	err = e.Transfer(scope, seller, buyer, id)
	if nil != err {
		e.log.Debugf("buy: %s  buyer: %s  transfer error: %s", id, buyer, err)
		return err
	}

	e.log.Infof("sold: %s  buyer: %s  price: %d", id, buyer, price)
	scope.Emit(Sold{
		Buyer: buyer,
		Id:    id,
		Price: price,
	})
	return nil
}
