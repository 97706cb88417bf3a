// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"context"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/storage"
)

// Service - the engine bound to a store, each operation one ledger call
type Service struct {
	ledger   *ledger.Ledger
	engine   *Engine
	registry *registry.Registry
	owners   *ownership.Index
	balances *balance.Ledger
}

// NewService - assemble the registry, index, balances and engine over store
func NewService(store *storage.Store, existentialDeposit uint64, observers ...ledger.Observer) *Service {
	reg := registry.New(store.Pools.Kitties, store.Pools.Count)
	owners := ownership.New(store.Pools.Owned)
	balances := balance.New(store.Pools.Balances, existentialDeposit)

	return &Service{
		ledger:   ledger.New(store, observers...),
		engine:   New(reg, owners, balances, nil),
		registry: reg,
		owners:   owners,
		balances: balances,
	}
}

// Create - mint a kitty
func (s *Service) Create(ctx context.Context, owner *account.Account) (identifier.Identifier, error) {
	var id identifier.Identifier
	err := s.ledger.Execute(ctx, "create", func(call *ledger.Call) error {
		var err error
		id, err = s.engine.Create(call, owner)
		return err
	})
	return id, err
}

// Transfer - give a kitty away
func (s *Service) Transfer(ctx context.Context, from *account.Account, to *account.Account, id identifier.Identifier) error {
	return s.ledger.Execute(ctx, "transfer", func(call *ledger.Call) error {
		return s.engine.Transfer(call, from, to, id)
	})
}

// SetPrice - list or delist a kitty
func (s *Service) SetPrice(ctx context.Context, caller *account.Account, id identifier.Identifier, price *uint64) error {
	return s.ledger.Execute(ctx, "setPrice", func(call *ledger.Call) error {
		return s.engine.SetPrice(call, caller, id, price)
	})
}

// Buy - purchase a listed kitty
func (s *Service) Buy(ctx context.Context, buyer *account.Account, id identifier.Identifier, maxPrice uint64) error {
	return s.ledger.Execute(ctx, "buy", func(call *ledger.Call) error {
		return s.engine.Buy(call, buyer, id, maxPrice)
	})
}

// Deposit - endow an account with new funds
func (s *Service) Deposit(ctx context.Context, acct *account.Account, amount uint64) error {
	return s.ledger.Execute(ctx, "deposit", func(call *ledger.Call) error {
		return s.balances.Deposit(call.Transaction(), acct, amount)
	})
}

// Get - committed state of a kitty
func (s *Service) Get(id identifier.Identifier) (*registry.Asset, error) {
	return s.registry.Get(nil, id)
}

// Owned - committed inventory of an owner, in no particular order
func (s *Service) Owned(owner *account.Account) []identifier.Identifier {
	return s.owners.List(nil, owner)
}

// Balance - committed balance of an account
func (s *Service) Balance(acct *account.Account) uint64 {
	return s.balances.Get(nil, acct)
}

// Count - number of kitties minted
func (s *Service) Count() uint32 {
	return s.registry.Count(nil)
}

// Head - fingerprint and position of the last committed call
func (s *Service) Head() ([32]byte, uint64) {
	return s.ledger.Head()
}
