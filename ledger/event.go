// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// Event - a notification raised by a call
type Event interface {
	Kind() string
}

// Observer - receives the events of each committed call, in order
type Observer interface {
	Notify(Event)
}

// ObserverFunc - adapt a plain function to an Observer
type ObserverFunc func(Event)

// Notify - call f(e)
func (f ObserverFunc) Notify(e Event) {
	f(e)
}
