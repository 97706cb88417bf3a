// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

var countKey = []byte("count")

// Registry - asset table plus total count
type Registry struct {
	kitties storage.Handle
	count   storage.Handle
}

// New - registry over the kitties and count pools
func New(kitties storage.Handle, count storage.Handle) *Registry {
	return &Registry{
		kitties: kitties,
		count:   count,
	}
}

// Create - mint a new unlisted asset
//
// both the record and the incremented count are written to trx
func (r *Registry) Create(trx storage.Transaction, id identifier.Identifier, owner *account.Account) (*Asset, error) {
	if trx.Has(r.kitties, id[:]) {
		return nil, fault.DuplicateAsset
	}

	count := r.Count(trx)
	if math.MaxUint32 == count {
		return nil, fault.TooManyAssets
	}

	asset := &Asset{
		Id:    id,
		Owner: owner,
		Price: nil,
	}

	trx.Put(r.kitties, id[:], asset.Pack())
	trx.PutN(r.count, countKey, uint64(count)+1)

	return asset, nil
}

// Get - fetch an asset, trx may be nil for a read of committed data
func (r *Registry) Get(trx storage.Transaction, id identifier.Identifier) (*Asset, error) {
	var packed []byte
	if nil == trx {
		packed = r.kitties.Get(id[:])
	} else {
		packed = trx.Get(r.kitties, id[:])
	}

	if nil == packed {
		return nil, fault.NotFound
	}

	asset, err := PackedAsset(packed).Unpack(id)
	if nil != err {
		logger.Panicf("registry.Get: corrupt record for: %s  error: %s", id, err)
	}
	return asset, nil
}

// Replace - overwrite an existing asset, caller has checked existence
func (r *Registry) Replace(trx storage.Transaction, asset *Asset) {
	trx.Put(r.kitties, asset.Id[:], asset.Pack())
}

// Count - number of assets ever minted, trx may be nil
func (r *Registry) Count(trx storage.Transaction) uint32 {
	var n uint64
	if nil == trx {
		n, _ = r.count.GetN(countKey)
	} else {
		n, _ = trx.GetN(r.count, countKey)
	}
	if n > math.MaxUint32 {
		logger.Panicf("registry.Count: corrupt count: %d", n)
	}
	return uint32(n)
}
