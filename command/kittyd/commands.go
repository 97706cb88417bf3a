// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/marketplace"
	"github.com/bitmark-inc/kittyd/rpc/certificate"
	"github.com/bitmark-inc/kittyd/zmqutil"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publisherPublicKeyFilename  = "publisher.public"
	publisherPrivateKeyFilename = "publisher.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publisher-identity", "publisher":
		publicKeyFilename := getFilenameWithDirectory(arguments, publisherPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publisherPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "start", "run":
		return false // continue processing

	case "count", "owned", "balance", "kitty":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                          (h)          - display this message\n\n")
		fmt.Printf("  version                       (v)          - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]   (rpc)        - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                               and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publisher-identity [DIR]  (publisher)  - create private key in: %q\n", "DIR/"+publisherPrivateKeyFilename)
		fmt.Printf("                                               and the public key in: %q\n", "DIR/"+publisherPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                         (run)        - just run the program, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                   (cfg)        - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  count                                      - number of kitties ever created\n")
		fmt.Printf("  owned ACCOUNT                              - list the kitties of an account\n")
		fmt.Printf("  balance ACCOUNT                            - show the balance of an account\n")
		fmt.Printf("  kitty ID                                   - show one kitty\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is open so these commands can read committed state
func processDataCommand(arguments []string, service *marketplace.Service) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "count":
		fingerprint, position := service.Head()
		fmt.Printf("kitties:     %d\n", service.Count())
		fmt.Printf("position:    %d\n", position)
		fmt.Printf("fingerprint: %x\n", fingerprint)

	case "owned", "balance":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing account argument")
		}
		a, err := account.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in account: %s", err)
		}
		if "balance" == command {
			fmt.Printf("%d\n", service.Balance(a))
			break
		}
		printJSON(service.Owned(a))

	case "kitty":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing kitty id argument")
		}
		var id identifier.Identifier
		if err := id.UnmarshalText([]byte(arguments[0])); nil != err {
			exitwithstatus.Message("error in kitty id: %s", err)
		}
		asset, err := service.Get(id)
		if nil != err {
			exitwithstatus.Message("kitty: %s  error: %s", id, err)
		}
		printJSON(asset)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

func printJSON(item interface{}) {
	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		exitwithstatus.Message("JSON error: %s", err)
	}
	fmt.Printf("%s\n", b)
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
