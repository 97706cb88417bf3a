// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"encoding/json"

	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/logger"
)

// Notify - broadcast a committed event as its kind and JSON body
func (queue *BroadcastQueue) Notify(e ledger.Event) {
	data, err := json.Marshal(e)
	if nil != err {
		logger.Criticalf("messagebus: cannot encode: %s  error: %s", e.Kind(), err)
		return
	}
	queue.Send(e.Kind(), data)
}
