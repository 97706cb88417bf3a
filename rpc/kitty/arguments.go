// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
)

// tags that separate the signed messages of each request
const (
	createTag   = "kitty.create"
	transferTag = "kitty.transfer"
	setPriceTag = "kitty.setPrice"
	buyTag      = "kitty.buy"
)

// CreateArguments - mint a kitty for the signing owner
type CreateArguments struct {
	Owner     *account.Account  `json:"owner"`
	Timestamp int64             `json:"timestamp"`
	Signature account.Signature `json:"signature"`
}

// TransferArguments - give a kitty away, signed by From
type TransferArguments struct {
	From      *account.Account      `json:"from"`
	To        *account.Account      `json:"to"`
	Id        identifier.Identifier `json:"id"`
	Timestamp int64                 `json:"timestamp"`
	Signature account.Signature     `json:"signature"`
}

// SetPriceArguments - list or delist (nil price) a kitty, signed by Owner
type SetPriceArguments struct {
	Owner     *account.Account      `json:"owner"`
	Id        identifier.Identifier `json:"id"`
	Price     *uint64               `json:"price"`
	Timestamp int64                 `json:"timestamp"`
	Signature account.Signature     `json:"signature"`
}

// BuyArguments - purchase a listed kitty, signed by Buyer
type BuyArguments struct {
	Buyer     *account.Account      `json:"buyer"`
	Id        identifier.Identifier `json:"id"`
	MaxPrice  uint64                `json:"maxPrice"`
	Timestamp int64                 `json:"timestamp"`
	Signature account.Signature     `json:"signature"`
}

// Pack - the bytes the owner signs
func (arguments *CreateArguments) Pack() []byte {
	return pack(createTag, arguments.Timestamp, arguments.Owner.Bytes())
}

// Pack - the bytes the sender signs
func (arguments *TransferArguments) Pack() []byte {
	return pack(transferTag, arguments.Timestamp, arguments.From.Bytes(), arguments.To.Bytes(), arguments.Id[:])
}

// Pack - the bytes the owner signs
func (arguments *SetPriceArguments) Pack() []byte {
	price := []byte{0}
	if nil != arguments.Price {
		price = append([]byte{1}, uint64Bytes(*arguments.Price)...)
	}
	return pack(setPriceTag, arguments.Timestamp, arguments.Owner.Bytes(), arguments.Id[:], price)
}

// Pack - the bytes the buyer signs
func (arguments *BuyArguments) Pack() []byte {
	return pack(buyTag, arguments.Timestamp, arguments.Buyer.Bytes(), arguments.Id[:], uint64Bytes(arguments.MaxPrice))
}

// tag ⧺ 0x00 ⧺ timestamp ⧺ parts…  all fixed length
func pack(tag string, timestamp int64, parts ...[]byte) []byte {
	buffer := make([]byte, 0, 128)
	buffer = append(buffer, tag...)
	buffer = append(buffer, 0)
	buffer = append(buffer, uint64Bytes(uint64(timestamp))...)
	for _, p := range parts {
		buffer = append(buffer, p...)
	}
	return buffer
}

func uint64Bytes(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// Reply - the kitty affected by a state change
type Reply struct {
	Id identifier.Identifier `json:"id"`
}

// GetArguments - look up one kitty
type GetArguments struct {
	Id identifier.Identifier `json:"id"`
}

// GetReply - committed state of a kitty
type GetReply struct {
	Id    identifier.Identifier `json:"id"`
	Owner *account.Account      `json:"owner"`
	Price *uint64               `json:"price"`
}

// OwnedArguments - look up an inventory
type OwnedArguments struct {
	Owner *account.Account `json:"owner"`
}

// OwnedReply - an owner's kitties in no particular order
type OwnedReply struct {
	Owner   *account.Account        `json:"owner"`
	Kitties []identifier.Identifier `json:"kitties"`
}

// BalanceArguments - look up a balance
type BalanceArguments struct {
	Account *account.Account `json:"account"`
}

// BalanceReply - committed balance
type BalanceReply struct {
	Account *account.Account `json:"account"`
	Balance uint64           `json:"balance"`
}
