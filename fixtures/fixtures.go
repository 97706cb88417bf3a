// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test accounts and logger setup
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// test keys, derived from fixed seeds so runs are repeatable
var (
	AliceKey = keyFromSeed(0xa1)
	BobKey   = keyFromSeed(0xb0)
	CarolKey = keyFromSeed(0xc4)

	Alice = AliceKey.Account()
	Bob   = BobKey.Account()
	Carol = CarolKey.Account()
)

func keyFromSeed(b byte) *account.PrivateKey {
	key, err := account.NewPrivateKey(true, bytes.NewReader(bytes.Repeat([]byte{b}, 64)))
	if nil != err {
		panic(err)
	}
	return key
}

// NumberedAccount - a distinct test account for each n
func NumberedAccount(n int) *account.Account {
	seed := bytes.Repeat([]byte{byte(n), byte(n >> 8), 0x5a, 0xa5}, 16)
	key, err := account.NewPrivateKey(true, bytes.NewReader(seed))
	if nil != err {
		panic(err)
	}
	return key.Account()
}

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
