// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Status - committed ledger state
type Status interface {
	Count() uint32
	Head() ([32]byte, uint64)
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Chain   string
	Version string
	Status  Status
	counter *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, chain string, start time.Time, version string, counter *counter.Counter, status Status) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Chain:   chain,
		Version: version,
		Status:  status,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain       string `json:"chain"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	RPCs        uint64 `json:"rpcs"`
	Kitties     uint32 `json:"kitties"`
	Position    uint64 `json:"position"`
	Fingerprint string `json:"fingerprint"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Status {
		return fault.DatabaseIsNotSet
	}

	fingerprint, position := node.Status.Head()

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Kitties = node.Status.Count()
	reply.Position = position
	reply.Fingerprint = hex.EncodeToString(fingerprint[:])
	return nil
}
