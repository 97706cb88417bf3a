// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/background"
)

type ticker struct {
	ticks   int32
	stopped int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	delay := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			atomic.AddInt32(&state.ticks, 1)
		}
	}

	atomic.StoreInt32(&state.stopped, 1)
}

func TestStartStop(t *testing.T) {
	t1 := &ticker{}
	t2 := &ticker{}

	p := background.Start(background.Processes{t1, t2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, state := range []*ticker{t1, t2} {
		assert.NotZero(t, atomic.LoadInt32(&state.ticks), "%d: never ran", i)
		assert.Equal(t, int32(1), atomic.LoadInt32(&state.stopped), "%d: Stop returned before Run", i)
	}
}

func TestStopNil(t *testing.T) {
	var p *background.T
	assert.NotPanics(t, p.Stop, "nil stop")
}
