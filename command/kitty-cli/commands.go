// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
)

type generateResult struct {
	Account    *account.Account `json:"account"`
	PrivateKey string           `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(m.testnet, rand.Reader)
	if nil != err {
		return err
	}

	return printJson(m.w, generateResult{
		Account:    key.Account(),
		PrivateKey: key.String(),
	})
}

func runCreate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := readKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Create(key)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runTransfer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}
	to, err := checkAccount(m, c.String("receiver"))
	if nil != err {
		return err
	}
	key, err := readKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Transfer(key, to, id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runPrice(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}
	price, err := checkPrice(c.String("price"))
	if nil != err {
		return err
	}
	key, err := readKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.SetPrice(key, id, price)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBuy(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}
	key, err := readKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Buy(key, id, c.Uint64("max-price"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runGet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Get(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runOwned(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerOrSelf(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Owned(owner)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerOrSelf(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balance(owner)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
