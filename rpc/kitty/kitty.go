// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty - RPC access to the marketplace
//
// state changing calls are signed by the acting account; lookups
// are open
package kitty

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitKitty = 200
	rateBurstKitty = 100

	rateLimitLookup = 500
	rateBurstLookup = 200

	callTimeout = 10 * time.Second
)

// Executor - marketplace operations, each applied all-or-nothing
type Executor interface {
	Create(ctx context.Context, owner *account.Account) (identifier.Identifier, error)
	Transfer(ctx context.Context, from *account.Account, to *account.Account, id identifier.Identifier) error
	SetPrice(ctx context.Context, caller *account.Account, id identifier.Identifier, price *uint64) error
	Buy(ctx context.Context, buyer *account.Account, id identifier.Identifier, maxPrice uint64) error
	Get(id identifier.Identifier) (*registry.Asset, error)
	Owned(owner *account.Account) []identifier.Identifier
	Balance(acct *account.Account) uint64
}

// Kitty - type for RPC calls
type Kitty struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	LookupLimiter *rate.Limiter
	Executor      Executor
	verifier      *verifier
}

// New - create the RPC service, isTesting selects the account network
func New(log *logger.L, executor Executor, isTesting bool) *Kitty {
	return &Kitty{
		Log:           log,
		Limiter:       rate.NewLimiter(rateLimitKitty, rateBurstKitty),
		LookupLimiter: rate.NewLimiter(rateLimitLookup, rateBurstLookup),
		Executor:      executor,
		verifier:      newVerifier(isTesting),
	}
}

// Create - mint a new kitty
func (kitty *Kitty) Create(arguments *CreateArguments, reply *Reply) error {
	if err := ratelimit.Limit(kitty.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	owner, err := kitty.verifier.verifyCaller(arguments.Owner, arguments.Pack(), arguments.Timestamp, arguments.Signature)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	id, err := kitty.Executor.Create(ctx, owner)
	if nil != err {
		kitty.Log.Debugf("Create: owner: %s  error: %s", owner, err)
		return err
	}

	kitty.Log.Infof("Create: owner: %s  id: %s", owner, id)
	reply.Id = id
	return nil
}

// Transfer - give a kitty to another account
func (kitty *Kitty) Transfer(arguments *TransferArguments, reply *Reply) error {
	if err := ratelimit.Limit(kitty.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.From {
		return fault.MissingParameters
	}

	if err := kitty.verifier.checkNetwork(arguments.To); nil != err {
		return err
	}

	from, err := kitty.verifier.verifyCaller(arguments.From, arguments.Pack(), arguments.Timestamp, arguments.Signature)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	err = kitty.Executor.Transfer(ctx, from, arguments.To, arguments.Id)
	if nil != err {
		kitty.Log.Debugf("Transfer: id: %s  error: %s", arguments.Id, err)
		return err
	}

	reply.Id = arguments.Id
	return nil
}

// SetPrice - list a kitty, or delist it when price is omitted
func (kitty *Kitty) SetPrice(arguments *SetPriceArguments, reply *Reply) error {
	if err := ratelimit.Limit(kitty.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	owner, err := kitty.verifier.verifyCaller(arguments.Owner, arguments.Pack(), arguments.Timestamp, arguments.Signature)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	err = kitty.Executor.SetPrice(ctx, owner, arguments.Id, arguments.Price)
	if nil != err {
		kitty.Log.Debugf("SetPrice: id: %s  error: %s", arguments.Id, err)
		return err
	}

	reply.Id = arguments.Id
	return nil
}

// Buy - pay for a listed kitty
func (kitty *Kitty) Buy(arguments *BuyArguments, reply *Reply) error {
	if err := ratelimit.Limit(kitty.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Buyer {
		return fault.MissingParameters
	}

	buyer, err := kitty.verifier.verifyCaller(arguments.Buyer, arguments.Pack(), arguments.Timestamp, arguments.Signature)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	err = kitty.Executor.Buy(ctx, buyer, arguments.Id, arguments.MaxPrice)
	if nil != err {
		kitty.Log.Debugf("Buy: id: %s  error: %s", arguments.Id, err)
		return err
	}

	reply.Id = arguments.Id
	return nil
}

// Get - look up a kitty
func (kitty *Kitty) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(kitty.LookupLimiter); nil != err {
		return err
	}

	asset, err := kitty.Executor.Get(arguments.Id)
	if nil != err {
		return err
	}

	reply.Id = asset.Id
	reply.Owner = asset.Owner
	reply.Price = asset.Price
	return nil
}

// Owned - list the kitties an account holds
func (kitty *Kitty) Owned(arguments *OwnedArguments, reply *OwnedReply) error {
	if err := ratelimit.Limit(kitty.LookupLimiter); nil != err {
		return err
	}

	if err := kitty.verifier.checkNetwork(arguments.Owner); nil != err {
		return err
	}

	reply.Owner = arguments.Owner
	reply.Kitties = kitty.Executor.Owned(arguments.Owner)
	return nil
}

// Balance - the funds an account holds
func (kitty *Kitty) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(kitty.LookupLimiter); nil != err {
		return err
	}

	if err := kitty.verifier.checkNetwork(arguments.Account); nil != err {
		return err
	}

	reply.Account = arguments.Account
	reply.Balance = kitty.Executor.Balance(arguments.Account)
	return nil
}
