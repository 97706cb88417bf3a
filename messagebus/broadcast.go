// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// Message - a command and its encoded parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - one sender, many listeners
type BroadcastQueue struct {
	sync.RWMutex
	out []chan Message
}

type busses struct {
	Broadcast *BroadcastQueue
}

// Bus - the process wide set of queues
var Bus = busses{
	Broadcast: &BroadcastQueue{},
}

// Send - deliver to every current listener without blocking
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, out := range queue.out {
		select {
		case out <- m:
		default:
		}
	}
}

// Chan - register a new listener with a queue of the given size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = 0
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()

	return c
}

// Release - close and forget every listener
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, out := range queue.out {
		close(out)
	}
	queue.out = nil
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.out)
}
