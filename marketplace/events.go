// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
)

// event kinds, also used as the publisher's topic frame
const (
	KindCreated     = "created"
	KindTransferred = "transferred"
	KindPriceSet    = "priceSet"
	KindSold        = "sold"
)

// Created - a kitty was minted
type Created struct {
	Owner *account.Account      `json:"owner"`
	Id    identifier.Identifier `json:"id"`
}

// Transferred - ownership moved, including as part of a sale
type Transferred struct {
	From *account.Account      `json:"from"`
	To   *account.Account      `json:"to"`
	Id   identifier.Identifier `json:"id"`
}

// PriceSet - a kitty was listed, relisted or delisted (nil price)
type PriceSet struct {
	Owner    *account.Account      `json:"owner"`
	Id       identifier.Identifier `json:"id"`
	NewPrice *uint64               `json:"newPrice"`
}

// Sold - a sale completed
type Sold struct {
	Buyer *account.Account      `json:"buyer"`
	Id    identifier.Identifier `json:"id"`
	Price uint64                `json:"price"`
}

// Kind - event kind
func (Created) Kind() string { return KindCreated }

// Kind - event kind
func (Transferred) Kind() string { return KindTransferred }

// Kind - event kind
func (PriceSet) Kind() string { return KindPriceSet }

// Kind - event kind
func (Sold) Kind() string { return KindSold }
