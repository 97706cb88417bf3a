// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in-process fan out of committed events
//
// a message sent while nobody listens is dropped, and a listener
// whose queue is full misses the message rather than stalling the
// sender
package messagebus
