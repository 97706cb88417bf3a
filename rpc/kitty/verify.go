// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

// a request is accepted this far either side of the server clock
const requestWindow = 5 * time.Minute

// verifier - authenticates signed requests and rejects replays
type verifier struct {
	testing bool
	seen    *cache.Cache
	now     func() time.Time
}

func newVerifier(testing bool) *verifier {
	return &verifier{
		testing: testing,
		seen:    cache.New(2*requestWindow, requestWindow),
		now:     time.Now,
	}
}

// verifyCaller - the caller when the signature over message is theirs
func (v *verifier) verifyCaller(caller *account.Account, message []byte, timestamp int64, signature account.Signature) (*account.Account, error) {
	if nil == caller || 0 == len(signature) {
		return nil, fault.MissingParameters
	}

	if caller.IsTesting() != v.testing {
		return nil, fault.WrongNetworkForPublicKey
	}

	delta := v.now().Sub(time.Unix(timestamp, 0))
	if delta > requestWindow || delta < -requestWindow {
		return nil, fault.RequestExpired
	}

	if err := caller.CheckSignature(message, signature); nil != err {
		return nil, fault.InvalidSignature
	}

	// the signature covers the timestamp so a repeat is a replay
	if err := v.seen.Add(hex.EncodeToString(signature), nil, cache.DefaultExpiration); nil != err {
		return nil, fault.DuplicateRequest
	}

	return caller, nil
}

// checkNetwork - a non-signing account must be on this network
func (v *verifier) checkNetwork(a *account.Account) error {
	if nil == a {
		return fault.MissingParameters
	}
	if a.IsTesting() != v.testing {
		return fault.WrongNetworkForPublicKey
	}
	return nil
}
