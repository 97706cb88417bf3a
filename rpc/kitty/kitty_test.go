// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockExecutor, *kitty.Kitty) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	e := mocks.NewMockExecutor(ctl)
	k := kitty.New(logger.New(fixtures.LogCategory), e, true)
	return ctl, e, k
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestCreate(t *testing.T) {
	ctl, e, k := setup(t)
	defer teardown(ctl)

	id := identifier.Identifier{1, 2, 3}
	e.EXPECT().Create(gomock.Any(), fixtures.Alice).Return(id, nil).Times(1)

	arg := kitty.CreateArguments{
		Owner:     fixtures.Alice,
		Timestamp: time.Now().Unix(),
	}
	arg.Signature = fixtures.AliceKey.Sign(arg.Pack())

	var reply kitty.Reply
	err := k.Create(&arg, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, id, reply.Id, "wrong id")
}

func TestCreateReplayRejected(t *testing.T) {
	ctl, e, k := setup(t)
	defer teardown(ctl)

	e.EXPECT().Create(gomock.Any(), fixtures.Alice).Return(identifier.Identifier{}, nil).Times(1)

	arg := kitty.CreateArguments{
		Owner:     fixtures.Alice,
		Timestamp: time.Now().Unix(),
	}
	arg.Signature = fixtures.AliceKey.Sign(arg.Pack())

	var reply kitty.Reply
	assert.Nil(t, k.Create(&arg, &reply), "first Create")
	assert.Equal(t, fault.DuplicateRequest, k.Create(&arg, &reply), "replayed Create")
}

func TestCreateRejectsBadRequests(t *testing.T) {
	ctl, _, k := setup(t)
	defer teardown(ctl)

	now := time.Now().Unix()

	unsigned := kitty.CreateArguments{Owner: fixtures.Alice, Timestamp: now}

	forged := kitty.CreateArguments{Owner: fixtures.Alice, Timestamp: now}
	forged.Signature = fixtures.BobKey.Sign(forged.Pack())

	stale := kitty.CreateArguments{Owner: fixtures.Alice, Timestamp: now - 3600}
	stale.Signature = fixtures.AliceKey.Sign(stale.Pack())

	liveKey, err := account.NewPrivateKey(false, nil)
	assert.Nil(t, err, "live key")
	live := kitty.CreateArguments{Owner: liveKey.Account(), Timestamp: now}
	live.Signature = liveKey.Sign(live.Pack())

	items := []struct {
		arg      kitty.CreateArguments
		expected error
	}{
		{kitty.CreateArguments{}, fault.MissingParameters},
		{unsigned, fault.MissingParameters},
		{forged, fault.InvalidSignature},
		{stale, fault.RequestExpired},
		{live, fault.WrongNetworkForPublicKey},
	}

	for i, item := range items {
		var reply kitty.Reply
		err := k.Create(&item.arg, &reply)
		assert.Equal(t, item.expected, err, "%d: wrong error", i)
	}
}

func TestSignedCallsRejectMissingSigner(t *testing.T) {
	ctl, _, k := setup(t)
	defer teardown(ctl)

	now := time.Now().Unix()
	signature := fixtures.AliceKey.Sign([]byte("anything"))
	id := identifier.Identifier{3}
	price := uint64(10)

	var reply kitty.Reply

	err := k.Create(&kitty.CreateArguments{Timestamp: now, Signature: signature}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "Create without owner")

	err = k.Transfer(&kitty.TransferArguments{To: fixtures.Bob, Id: id, Timestamp: now, Signature: signature}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "Transfer without sender")

	err = k.Transfer(&kitty.TransferArguments{From: fixtures.Alice, Id: id, Timestamp: now, Signature: signature}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "Transfer without recipient")

	err = k.SetPrice(&kitty.SetPriceArguments{Id: id, Price: &price, Timestamp: now, Signature: signature}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "SetPrice without owner")

	err = k.Buy(&kitty.BuyArguments{Id: id, MaxPrice: 10, Timestamp: now, Signature: signature}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "Buy without buyer")
}

func TestTransfer(t *testing.T) {
	ctl, e, k := setup(t)
	defer teardown(ctl)

	id := identifier.Identifier{7}
	e.EXPECT().Transfer(gomock.Any(), fixtures.Alice, fixtures.Bob, id).Return(fault.NotOwner).Times(1)

	arg := kitty.TransferArguments{
		From:      fixtures.Alice,
		To:        fixtures.Bob,
		Id:        id,
		Timestamp: time.Now().Unix(),
	}
	arg.Signature = fixtures.AliceKey.Sign(arg.Pack())

	var reply kitty.Reply
	err := k.Transfer(&arg, &reply)
	assert.Equal(t, fault.NotOwner, err, "engine error not returned")
}

func TestTransferSignatureCoversRecipient(t *testing.T) {
	ctl, _, k := setup(t)
	defer teardown(ctl)

	arg := kitty.TransferArguments{
		From:      fixtures.Alice,
		To:        fixtures.Bob,
		Id:        identifier.Identifier{7},
		Timestamp: time.Now().Unix(),
	}
	arg.Signature = fixtures.AliceKey.Sign(arg.Pack())
	arg.To = fixtures.Carol

	var reply kitty.Reply
	err := k.Transfer(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "altered recipient accepted")
}

func TestSetPrice(t *testing.T) {
	ctl, e, k := setup(t)
	defer teardown(ctl)

	id := identifier.Identifier{9}
	price := uint64(250)

	gomock.InOrder(
		e.EXPECT().SetPrice(gomock.Any(), fixtures.Alice, id, &price).Return(nil),
		e.EXPECT().SetPrice(gomock.Any(), fixtures.Alice, id, nil).Return(nil),
	)

	listed := kitty.SetPriceArguments{Owner: fixtures.Alice, Id: id, Price: &price, Timestamp: time.Now().Unix()}
	listed.Signature = fixtures.AliceKey.Sign(listed.Pack())

	delisted := kitty.SetPriceArguments{Owner: fixtures.Alice, Id: id, Timestamp: time.Now().Unix()}
	delisted.Signature = fixtures.AliceKey.Sign(delisted.Pack())

	assert.NotEqual(t, listed.Pack(), delisted.Pack(), "listing and delisting pack alike")

	var reply kitty.Reply
	assert.Nil(t, k.SetPrice(&listed, &reply), "wrong list")
	assert.Nil(t, k.SetPrice(&delisted, &reply), "wrong delist")
	assert.Equal(t, id, reply.Id, "wrong id")
}

func TestBuy(t *testing.T) {
	ctl, e, k := setup(t)
	defer teardown(ctl)

	id := identifier.Identifier{4}
	e.EXPECT().Buy(gomock.Any(), fixtures.Bob, id, uint64(100)).Return(nil).Times(1)

	arg := kitty.BuyArguments{
		Buyer:     fixtures.Bob,
		Id:        id,
		MaxPrice:  100,
		Timestamp: time.Now().Unix(),
	}
	arg.Signature = fixtures.BobKey.Sign(arg.Pack())

	var reply kitty.Reply
	err := k.Buy(&arg, &reply)
	assert.Nil(t, err, "wrong Buy")
	assert.Equal(t, id, reply.Id, "wrong id")
}

func TestGet(t *testing.T) {
	ctl, e, k := setup(t)
	defer teardown(ctl)

	id := identifier.Identifier{5}
	price := uint64(42)
	e.EXPECT().Get(id).Return(&registry.Asset{Id: id, Owner: fixtures.Carol, Price: &price}, nil).Times(1)
	e.EXPECT().Get(identifier.Identifier{}).Return(nil, fault.NotFound).Times(1)

	var reply kitty.GetReply
	err := k.Get(&kitty.GetArguments{Id: id}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, fixtures.Carol, reply.Owner, "wrong owner")
	assert.Equal(t, price, *reply.Price, "wrong price")

	err = k.Get(&kitty.GetArguments{}, &reply)
	assert.Equal(t, fault.NotFound, err, "missing kitty found")
}

func TestOwnedAndBalance(t *testing.T) {
	ctl, e, k := setup(t)
	defer teardown(ctl)

	ids := []identifier.Identifier{{1}, {2}}
	e.EXPECT().Owned(fixtures.Bob).Return(ids).Times(1)
	e.EXPECT().Balance(fixtures.Bob).Return(uint64(1234)).Times(1)

	var owned kitty.OwnedReply
	assert.Nil(t, k.Owned(&kitty.OwnedArguments{Owner: fixtures.Bob}, &owned), "wrong Owned")
	assert.Equal(t, ids, owned.Kitties, "wrong kitties")

	var balance kitty.BalanceReply
	assert.Nil(t, k.Balance(&kitty.BalanceArguments{Account: fixtures.Bob}, &balance), "wrong Balance")
	assert.Equal(t, uint64(1234), balance.Balance, "wrong balance")

	assert.Equal(t, fault.MissingParameters, k.Owned(&kitty.OwnedArguments{}, &owned), "nil owner accepted")
}
