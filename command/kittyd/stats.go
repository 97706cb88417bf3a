// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/kittyd/background"
	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory usage in the log
type memstats struct {
	log *logger.L
}

func (m *memstats) Run(args interface{}, shutdown <-chan struct{}) {
	delay := time.After(0)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-delay:
			delay = time.After(statsDelay)
		}

		var s runtime.MemStats
		runtime.ReadMemStats(&s)
		m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d",
			s.Alloc/mega, s.TotalAlloc/mega, s.Sys/mega, runtime.NumGoroutine())
	}
}

func startMemstats() *background.T {
	return background.Start(background.Processes{
		&memstats{log: logger.New("memory")},
	}, nil)
}
