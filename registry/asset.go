// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
)

// Asset - a minted kitty
type Asset struct {
	Id    identifier.Identifier `json:"id"`
	Owner *account.Account      `json:"owner"`
	Price *uint64               `json:"price"` // nil when not listed for sale
}

// PackedAsset - stored form, the identifier is the key so is not included
type PackedAsset []byte

const (
	notListed = 0x00
	listed    = 0x01

	ownerStart  = 0
	ownerFinish = ownerStart + account.Length

	flagStart  = ownerFinish
	flagFinish = flagStart + 1

	priceStart  = flagFinish
	priceFinish = priceStart + 8
)

// IsListed - true when a price is set
func (asset *Asset) IsListed() bool {
	return nil != asset.Price
}

// Pack - owner ++ listed flag [++ big endian price]
func (asset *Asset) Pack() PackedAsset {
	packed := make(PackedAsset, 0, priceFinish)
	packed = append(packed, asset.Owner.Bytes()...)

	if nil == asset.Price {
		return append(packed, notListed)
	}

	price := make([]byte, 8)
	binary.BigEndian.PutUint64(price, *asset.Price)
	packed = append(packed, listed)
	return append(packed, price...)
}

// Unpack - restore an asset stored under id
func (packed PackedAsset) Unpack(id identifier.Identifier) (*Asset, error) {
	if len(packed) < flagFinish {
		return nil, fault.RecordHasWrongLength
	}

	owner, err := account.FromBytes(packed[ownerStart:ownerFinish])
	if nil != err {
		return nil, err
	}

	asset := &Asset{
		Id:    id,
		Owner: owner,
	}

	switch packed[flagStart] {
	case notListed:
		if flagFinish != len(packed) {
			return nil, fault.RecordHasWrongLength
		}
	case listed:
		if priceFinish != len(packed) {
			return nil, fault.RecordHasWrongLength
		}
		price := binary.BigEndian.Uint64(packed[priceStart:priceFinish])
		asset.Price = &price
	default:
		return nil, fault.RecordHasWrongLength
	}

	return asset, nil
}
