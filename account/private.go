// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/fault"
)

// PrivateKey - ed25519 signing key for an account
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key pair from the random source
func NewPrivateKey(test bool, random io.Reader) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}, nil
}

// PrivateKeyFromHex - decode the hex form written by String
func PrivateKeyFromHex(test bool, s string) (*PrivateKey, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.InvalidKeyLength
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: ed25519.PrivateKey(buffer),
	}, nil
}

// Account - the public half
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		Test:      privateKey.Test,
		PublicKey: []byte(privateKey.PrivateKey.Public().(ed25519.PublicKey)),
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// String - hex encoded private key
func (privateKey *PrivateKey) String() string {
	return hex.EncodeToString(privateKey.PrivateKey)
}
