// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/node"
)

// Create - mint a kitty owned by the key holder
func (client *Client) Create(key *account.PrivateKey) (*kitty.Reply, error) {
	arguments := kitty.CreateArguments{
		Owner:     key.Account(),
		Timestamp: client.now().Unix(),
	}
	arguments.Signature = key.Sign(arguments.Pack())

	return client.call("Kitty.Create", &arguments)
}

// Transfer - give a kitty to another account
func (client *Client) Transfer(key *account.PrivateKey, to *account.Account, id identifier.Identifier) (*kitty.Reply, error) {
	arguments := kitty.TransferArguments{
		From:      key.Account(),
		To:        to,
		Id:        id,
		Timestamp: client.now().Unix(),
	}
	arguments.Signature = key.Sign(arguments.Pack())

	return client.call("Kitty.Transfer", &arguments)
}

// SetPrice - list a kitty, a nil price delists it
func (client *Client) SetPrice(key *account.PrivateKey, id identifier.Identifier, price *uint64) (*kitty.Reply, error) {
	arguments := kitty.SetPriceArguments{
		Owner:     key.Account(),
		Id:        id,
		Price:     price,
		Timestamp: client.now().Unix(),
	}
	arguments.Signature = key.Sign(arguments.Pack())

	return client.call("Kitty.SetPrice", &arguments)
}

// Buy - purchase a listed kitty paying at most maxPrice
func (client *Client) Buy(key *account.PrivateKey, id identifier.Identifier, maxPrice uint64) (*kitty.Reply, error) {
	arguments := kitty.BuyArguments{
		Buyer:     key.Account(),
		Id:        id,
		MaxPrice:  maxPrice,
		Timestamp: client.now().Unix(),
	}
	arguments.Signature = key.Sign(arguments.Pack())

	return client.call("Kitty.Buy", &arguments)
}

func (client *Client) call(method string, arguments interface{}) (*kitty.Reply, error) {
	client.printJson(method+" Request", arguments)

	var reply kitty.Reply
	if err := client.client.Call(method, arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson(method+" Reply", reply)
	return &reply, nil
}

// Get - look up one kitty
func (client *Client) Get(id identifier.Identifier) (*kitty.GetReply, error) {
	var reply kitty.GetReply
	if err := client.client.Call("Kitty.Get", &kitty.GetArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owned - the kitties of an account
func (client *Client) Owned(owner *account.Account) (*kitty.OwnedReply, error) {
	var reply kitty.OwnedReply
	if err := client.client.Call("Kitty.Owned", &kitty.OwnedArguments{Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - the funds of an account
func (client *Client) Balance(a *account.Account) (*kitty.BalanceReply, error) {
	var reply kitty.BalanceReply
	if err := client.client.Call("Kitty.Balance", &kitty.BalanceArguments{Account: a}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetInfo - request status from kittyd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
