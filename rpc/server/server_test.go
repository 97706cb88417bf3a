// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"context"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/marketplace"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/server"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

var address string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	store, err := storage.OpenInMemory()
	if nil != err {
		panic(err)
	}

	service := marketplace.NewService(store, 1)
	err = service.Deposit(context.Background(), fixtures.Bob, 1000)
	if nil != err {
		panic(err)
	}

	c := counter.Counter(0)
	r := server.Create(logger.New(fixtures.LogCategory), chain.Testing, "1.0", &c, service)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		panic(err)
	}
	address = l.Addr().String()

	go r.Accept(l)

	rc := m.Run()

	_ = l.Close()
	store.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func dial(t *testing.T) *rpc.Client {
	conn, err := net.Dial("tcp", address)
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	return rpc.NewClient(conn)
}

// end to end through the registered services: mint, list, buy
func TestKittyLifecycle(t *testing.T) {
	client := dial(t)
	defer client.Close()

	create := kitty.CreateArguments{Owner: fixtures.Alice, Timestamp: time.Now().Unix()}
	create.Signature = fixtures.AliceKey.Sign(create.Pack())

	var created kitty.Reply
	err := client.Call("Kitty.Create", &create, &created)
	assert.Nil(t, err, "wrong Kitty.Create")

	price := uint64(100)
	list := kitty.SetPriceArguments{Owner: fixtures.Alice, Id: created.Id, Price: &price, Timestamp: time.Now().Unix()}
	list.Signature = fixtures.AliceKey.Sign(list.Pack())

	var listed kitty.Reply
	err = client.Call("Kitty.SetPrice", &list, &listed)
	assert.Nil(t, err, "wrong Kitty.SetPrice")

	buy := kitty.BuyArguments{Buyer: fixtures.Bob, Id: created.Id, MaxPrice: 99, Timestamp: time.Now().Unix()}
	buy.Signature = fixtures.BobKey.Sign(buy.Pack())

	var bought kitty.Reply
	err = client.Call("Kitty.Buy", &buy, &bought)
	assert.NotNil(t, err, "bought below price")
	assert.Equal(t, fault.PriceTooLow.Error(), err.Error(), "wrong reply")

	buy.MaxPrice = 100
	buy.Signature = fixtures.BobKey.Sign(buy.Pack())
	err = client.Call("Kitty.Buy", &buy, &bought)
	assert.Nil(t, err, "wrong Kitty.Buy")

	var got kitty.GetReply
	err = client.Call("Kitty.Get", &kitty.GetArguments{Id: created.Id}, &got)
	assert.Nil(t, err, "wrong Kitty.Get")
	assert.True(t, fixtures.Bob.Equal(got.Owner), "wrong owner")
	assert.Nil(t, got.Price, "still listed after sale")

	var owned kitty.OwnedReply
	err = client.Call("Kitty.Owned", &kitty.OwnedArguments{Owner: fixtures.Bob}, &owned)
	assert.Nil(t, err, "wrong Kitty.Owned")
	assert.Contains(t, owned.Kitties, created.Id, "missing from buyer inventory")

	var balance kitty.BalanceReply
	err = client.Call("Kitty.Balance", &kitty.BalanceArguments{Account: fixtures.Bob}, &balance)
	assert.Nil(t, err, "wrong Kitty.Balance")
	assert.Equal(t, uint64(900), balance.Balance, "wrong buyer balance")
}

func TestKittyGetMissing(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply kitty.GetReply
	err := client.Call("Kitty.Get", &kitty.GetArguments{}, &reply)
	assert.NotNil(t, err, "wrong Kitty.Get")
	assert.Equal(t, fault.NotFound.Error(), err.Error(), "wrong reply")
}

func TestNodeInfo(t *testing.T) {
	client := dial(t)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.NotEqual(t, uint64(0), reply.Position, "deposit not committed")
}

// the same services over the JSON codec used by the listener
func TestJSONCodec(t *testing.T) {
	c := counter.Counter(0)
	store, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	defer store.Close()

	r := server.Create(logger.New(fixtures.LogCategory), chain.Testing, "1.0", &c, marketplace.NewService(store, 1))
	serverSide, clientSide := net.Pipe()
	go r.ServeCodec(jsonrpc.NewServerCodec(serverSide))

	client := jsonrpc.NewClient(clientSide)
	defer client.Close()

	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, uint64(0), reply.Position, "fresh store has a position")
}
