// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"context"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/marketplace"
	"github.com/bitmark-inc/kittyd/rpc/server"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

func TestClientAgainstServer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	defer store.Close()

	service := marketplace.NewService(store, 1)
	assert.Nil(t, service.Deposit(context.Background(), fixtures.Carol, 500), "deposit")

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), chain.Testing, "test", &c, service)

	serverSide, clientSide := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverSide))

	var trace bytes.Buffer
	client := newClient(clientSide, true, &trace)
	defer client.Close()

	created, err := client.Create(fixtures.AliceKey)
	assert.Nil(t, err, "create")
	assert.Contains(t, trace.String(), "Kitty.Create Request", "verbose output")

	_, err = client.Transfer(fixtures.AliceKey, fixtures.Bob, created.Id)
	assert.Nil(t, err, "transfer")

	_, err = client.Transfer(fixtures.AliceKey, fixtures.Carol, created.Id)
	assert.NotNil(t, err, "transfer by previous owner")
	assert.Equal(t, fault.NotOwner.Error(), err.Error(), "wrong error")

	price := uint64(75)
	_, err = client.SetPrice(fixtures.BobKey, created.Id, &price)
	assert.Nil(t, err, "set price")

	_, err = client.Buy(fixtures.CarolKey, created.Id, 80)
	assert.Nil(t, err, "buy")

	got, err := client.Get(created.Id)
	assert.Nil(t, err, "get")
	assert.True(t, fixtures.Carol.Equal(got.Owner), "wrong owner")

	owned, err := client.Owned(fixtures.Bob)
	assert.Nil(t, err, "owned")
	assert.Empty(t, owned.Kitties, "seller still holds kitty")

	balance, err := client.Balance(fixtures.Bob)
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(75), balance.Balance, "seller not paid")

	info, err := client.GetInfo()
	assert.Nil(t, err, "info")
	assert.Equal(t, uint32(1), info.Kitties, "wrong count")
}
