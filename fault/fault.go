// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	AssetNotOwned            = RecordError("asset not in owner index")
	BalanceOverflow          = ProcessError("balance overflow")
	BelowMinimum             = InvalidError("resulting balance below minimum")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ChecksumMismatch         = ProcessError("checksum mismatch")
	ConfigurationNotTable    = InvalidError("configuration must return a table")
	ContextCancelled         = ProcessError("call cancelled")
	DatabaseIsNotSet         = ProcessError("database is not set")
	DuplicateAsset           = ExistsError("duplicate asset")
	DuplicateRequest         = ExistsError("duplicate request")
	IdentifierHasWrongLength = LengthError("identifier has wrong length")
	IncompatibleVersion      = InvalidError("incompatible database version")
	InsufficientFunds        = ProcessError("insufficient funds")
	InvalidAmount            = InvalidError("invalid amount")
	InvalidCount             = InvalidError("invalid count")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidKeyLength         = LengthError("invalid key length")
	InvalidKeyType           = InvalidError("invalid key type")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidPrivateKeyFile    = InvalidError("invalid private key file")
	InvalidPublicKeyFile     = InvalidError("invalid public key file")
	InvalidSignature         = InvalidError("invalid signature")
	KeyFileExists            = ExistsError("key file already exists")
	MissingParameters        = InvalidError("missing parameters")
	NotAvailableInReadOnly   = InvalidError("not available in read-only mode")
	NotForSale               = InvalidError("asset is not for sale")
	NotFound                 = NotFoundError("asset not found")
	NotInitialised           = NotFoundError("not initialised")
	NotOwner                 = InvalidError("caller is not the owner")
	NotPublicKey             = InvalidError("not a public key")
	PriceTooLow              = InvalidError("maximum price is below listed price")
	RateLimiting             = InvalidError("rate limiting")
	RecordHasWrongLength     = RecordError("record has wrong length")
	RequestExpired           = InvalidError("request timestamp outside window")
	SameAccountTransfer      = InvalidError("cannot transfer to self")
	TooManyAssets            = ProcessError("asset count overflow")
	TooManyOwned             = InvalidError("owner holds too many assets")
	TransactionInUse         = ProcessError("transaction already in use")
	TransactionNotInUse      = ProcessError("transaction is not in use")
	WrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
