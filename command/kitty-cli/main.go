// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/chain"
)

type metadata struct {
	connect string
	keyFile string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "trade kitties on a kittyd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Local,
			Usage: " account `NETWORK` [kitty|testing|local]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " kittyd `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: " hex private key `FILE` for signed commands",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a key pair and print it",
			Action: runGenerate,
		},
		{
			Name:   "create",
			Usage:  "create a new kitty owned by the key holder",
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "give a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "price",
			Usage:     "list a kitty for sale, omit the price to delist",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: " asking `PRICE`",
				},
			},
			Action: runPrice,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
				cli.Uint64Flag{
					Name:  "max-price, m",
					Value: 0,
					Usage: "*highest acceptable `PRICE`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "get",
			Usage:     "show one kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "owned",
			Usage:     "list the kitties of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` [default: the key holder]",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "balance",
			Usage:     "show the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` [default: the key holder]",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "info",
			Usage:  "display kittyd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display kitty-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		switch network {
		case chain.Kitty, "live":
			network = chain.Kitty
		case chain.Testing, "test":
			network = chain.Testing
		case chain.Local:
		default:
			return fmt.Errorf("network: %q can only be kitty/testing/local", network)
		}

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			keyFile: c.GlobalString("key"),
			testnet: chain.IsTesting(network),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
