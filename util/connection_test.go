// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/util"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in  string
		out string
		v6  bool
	}{
		{"127.0.0.1:1234", "127.0.0.1:1234", false},
		{" 127.0.0.1:1 ", "127.0.0.1:1", false},
		{"127.0.0.1:65535", "127.0.0.1:65535", false},
		{"0.0.0.0:1234", "0.0.0.0:1234", false},
		{"[::1]:1234", "[::1]:1234", true},
		{"[0:0::0:0]:1234", "[::]:1234", true},
		{"*:2136", "[::]:2136", true},
	}

	for i, item := range tests {
		c, err := util.NewConnection(item.in)
		if !assert.Nil(t, err, "%d: %q", i, item.in) {
			continue
		}
		s, v6 := c.CanonicalIPandPort("tcp://")
		assert.Equal(t, "tcp://"+item.out, s, "%d: wrong canonical form", i)
		assert.Equal(t, item.v6, v6, "%d: wrong IPv6 flag", i)
		assert.Equal(t, item.out, c.String(), "%d: wrong string", i)
	}
}

func TestCanonicalErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"127.1:1234", fault.InvalidIpAddress},
		{"256.0.0.0:1234", fault.InvalidIpAddress},
		{"[as34::]:1234", fault.InvalidIpAddress},
		{"no-port", fault.InvalidIpAddress},
		{"127.0.0.1:0", fault.InvalidPortNumber},
		{"127.0.0.1:65536", fault.InvalidPortNumber},
		{"127.0.0.1:port", fault.InvalidPortNumber},
	}

	for i, item := range tests {
		_, err := util.NewConnection(item.in)
		assert.Equal(t, item.err, err, "%d: %q", i, item.in)
	}

	_, err := util.NewConnections(nil)
	assert.Equal(t, fault.InvalidIpAddress, err, "empty list")
}
