// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/zmqutil"
)

var hex32 = strings.Repeat("5a", 32)

func TestParseKey(t *testing.T) {
	key, private, err := zmqutil.ParseKey("PUBLIC:" + hex32 + "\n")
	assert.Nil(t, err, "public")
	assert.False(t, private, "public marked private")
	assert.Len(t, key, 32, "public length")

	key, private, err = zmqutil.ParseKey("  PRIVATE:" + hex32)
	assert.Nil(t, err, "private")
	assert.True(t, private, "private marked public")
	assert.Len(t, key, 32, "private length")
}

func TestReadKeyKinds(t *testing.T) {
	_, err := zmqutil.ReadPublicKey("PRIVATE:" + hex32)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private accepted as public")

	_, err = zmqutil.ReadPrivateKey("PUBLIC:" + hex32)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public accepted as private")

	_, err = zmqutil.ReadPublicKey("PUBLIC:" + hex32[2:])
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short key accepted")

	_, err = zmqutil.ReadPublicKey(hex32)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged key accepted")
}
