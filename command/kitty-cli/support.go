// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
)

// common errors - keep in alphabetic order
const (
	ErrMissingKeyFile = fault.InvalidError("missing key file")
	ErrMissingId      = fault.InvalidError("missing kitty id")
	ErrMissingOwner   = fault.InvalidError("missing account")
	ErrWrongNetwork   = fault.InvalidError("account is on a different network")
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// read the hex private key written by generate
func readKey(m *metadata) (*account.PrivateKey, error) {
	if "" == m.keyFile {
		return nil, ErrMissingKeyFile
	}
	data, err := ioutil.ReadFile(m.keyFile)
	if nil != err {
		return nil, err
	}
	return account.PrivateKeyFromHex(m.testnet, strings.TrimSpace(string(data)))
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func checkId(c *cli.Context) (identifier.Identifier, error) {
	var id identifier.Identifier
	s := strings.TrimSpace(c.String("id"))
	if "" == s {
		return id, ErrMissingId
	}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

func checkAccount(m *metadata, s string) (*account.Account, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrMissingOwner
	}
	a, err := account.FromBase58(s)
	if nil != err {
		return nil, err
	}
	if a.IsTesting() != m.testnet {
		return nil, ErrWrongNetwork
	}
	return a, nil
}

// an empty price means not for sale
func checkPrice(s string) (*uint64, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, nil
	}
	price, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return nil, err
	}
	return &price, nil
}

// the account named by --owner, or the key holder
func ownerOrSelf(c *cli.Context, m *metadata) (*account.Account, error) {
	if "" != c.String("owner") {
		return checkAccount(m, c.String("owner"))
	}
	key, err := readKey(m)
	if nil != err {
		return nil, err
	}
	return key.Account(), nil
}
