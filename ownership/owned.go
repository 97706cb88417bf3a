// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
)

// MaximumOwned - capacity of every owner's set
const MaximumOwned = 100

// Owned - fixed capacity arena of identifiers
//
// the order of items is not meaningful: Remove moves the last item
// into the vacated slot
type Owned struct {
	items [MaximumOwned]identifier.Identifier
	count int
}

// Len - number of live items
func (o *Owned) Len() int {
	return o.count
}

// Append - add an item, failing when full
func (o *Owned) Append(id identifier.Identifier) error {
	if MaximumOwned == o.count {
		return fault.TooManyOwned
	}
	o.items[o.count] = id
	o.count += 1
	return nil
}

// Remove - compact removal of an item
func (o *Owned) Remove(id identifier.Identifier) error {
	i := o.find(id)
	if i < 0 {
		return fault.AssetNotOwned
	}
	last := o.count - 1
	o.items[i] = o.items[last]
	o.items[last] = identifier.Identifier{}
	o.count = last
	return nil
}

// Contains - check for an item
func (o *Owned) Contains(id identifier.Identifier) bool {
	return o.find(id) >= 0
}

// Items - copy of the live items in arena order
func (o *Owned) Items() []identifier.Identifier {
	items := make([]identifier.Identifier, o.count)
	copy(items, o.items[:o.count])
	return items
}

func (o *Owned) find(id identifier.Identifier) int {
	for i := 0; i < o.count; i += 1 {
		if id == o.items[i] {
			return i
		}
	}
	return -1
}

// Pack - concatenation of the live items
func (o *Owned) Pack() []byte {
	packed := make([]byte, 0, o.count*identifier.Length)
	for i := 0; i < o.count; i += 1 {
		packed = append(packed, o.items[i][:]...)
	}
	return packed
}

// UnpackOwned - restore an arena from its packed form
func UnpackOwned(packed []byte) (*Owned, error) {
	if 0 != len(packed)%identifier.Length {
		return nil, fault.RecordHasWrongLength
	}
	n := len(packed) / identifier.Length
	if n > MaximumOwned {
		return nil, fault.RecordHasWrongLength
	}

	o := &Owned{
		count: n,
	}
	for i := 0; i < n; i += 1 {
		copy(o.items[i][:], packed[i*identifier.Length:])
	}
	return o, nil
}
