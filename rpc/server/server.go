// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register the RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/marketplace"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with Kitty and Node registered
func Create(log *logger.L, chainName string, version string, rpcCount *counter.Counter, service *marketplace.Service) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(kitty.New(log, service, chain.IsTesting(chainName)))
	_ = server.Register(node.New(log, chainName, start, version, rpcCount, service))

	return server
}
