// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/kittyd/fault"
)

// Connection - a canonical IP address and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - parse a host:port
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func NewConnection(hostPort string) (*Connection, error) {
	hostPort = strings.TrimSpace(hostPort)
	if strings.HasPrefix(hostPort, "*:") {
		hostPort = "[::]:" + hostPort[2:]
	}

	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	ip := net.ParseIP(strings.TrimSpace(host))
	if nil == ip {
		return nil, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return nil, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	c := &Connection{
		ip:   ip,
		port: numericPort,
	}
	return c, nil
}

// NewConnections - convert a list of host:port strings
func NewConnections(hostPort []string) ([]*Connection, error) {
	if 0 == len(hostPort) {
		return nil, fault.InvalidIpAddress
	}
	c := make([]*Connection, len(hostPort))
	for i, hp := range hostPort {
		var err error
		c[i], err = NewConnection(hp)
		if nil != err {
			return nil, err
		}
	}
	return c, nil
}

// CanonicalIPandPort - string suitable for net.Listen or a zmq endpoint
//
// the prefix is prepended, e.g. "tcp://"; the second result is true
// for an IPv6 address
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(conn.port)
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// String - host:port form
func (conn *Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}
