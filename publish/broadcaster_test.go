// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"testing"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/background"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/logger"
)

const endpoint = "inproc://publish-test"

func TestBroadcasterSendsTwoFrames(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	pub, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		t.Fatalf("pub socket error: %s", err)
	}
	if err := pub.Bind(endpoint); nil != err {
		t.Fatalf("bind error: %s", err)
	}

	sub, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		t.Fatalf("sub socket error: %s", err)
	}
	defer sub.Close()
	_ = sub.SetSubscribe("")
	_ = sub.SetRcvtimeo(2 * time.Second)
	if err := sub.Connect(endpoint); nil != err {
		t.Fatalf("connect error: %s", err)
	}

	queue := make(chan messagebus.Message, 1)
	brdc := &broadcaster{
		log:     logger.New(fixtures.LogCategory),
		queue:   queue,
		socket4: pub,
	}
	p := background.Start(background.Processes{brdc}, nil)
	defer p.Stop()

	// allow the subscription to reach the publisher
	time.Sleep(100 * time.Millisecond)

	queue <- messagebus.Message{
		Command:    "sold",
		Parameters: [][]byte{[]byte(`{"price":100}`)},
	}

	frames, err := sub.RecvMessageBytes(0)
	assert.Nil(t, err, "receive")
	assert.Equal(t, [][]byte{[]byte("sold"), []byte(`{"price":100}`)}, frames, "wrong frames")
}
