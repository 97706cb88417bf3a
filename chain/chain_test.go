// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Kitty, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "%q rejected", name)
	}
	assert.False(t, chain.Valid("bitmark"), "unknown chain accepted")
	assert.False(t, chain.Valid(""), "empty chain accepted")
}

func TestIsTesting(t *testing.T) {
	assert.False(t, chain.IsTesting(chain.Kitty), "live chain")
	assert.True(t, chain.IsTesting(chain.Testing), "testing chain")
	assert.True(t, chain.IsTesting(chain.Local), "local chain")
}
