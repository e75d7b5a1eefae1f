// Copyright (C) 2024  wwhai
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, see <https://www.gnu.org/licenses/>.

// Package crc16 implements the Modbus CRC-16 checksum (polynomial 0x8005,
// reflected form 0xA001, initial value 0xFFFF, transmitted low byte first).
//
// Checksum is the table-driven fast path. ChecksumDirect computes the same
// value bit by bit without the lookup table and is the reference the table
// is verified against. Both produce identical results for every input.
package crc16

import (
	"fmt"
	"sync"
)

// Size is the length of a Modbus CRC-16 checksum in bytes.
const Size = 2

const (
	// polynomial is the reversed (reflected) form of 0x8005.
	polynomial = 0xA001
	// seed is the initial accumulator value before any input byte.
	seed = 0xFFFF
)

var (
	crcTable  [256]uint16
	tableOnce sync.Once
)

// table returns the process-wide lookup table, generating and verifying it
// on first use. Generation happens at most once even under concurrent
// callers; afterwards the table is read-only.
func table() *[256]uint16 {
	tableOnce.Do(initTable)
	return &crcTable
}

// initTable fills crcTable with the 8-step polynomial reduction of every
// byte value and checks each entry against the published reference table.
// A mismatch is a programming defect; initialization aborts rather than
// serve wrong checksums.
func initTable() {
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ polynomial
			} else {
				crc >>= 1
			}
		}
		crcTable[i] = crc
	}
	for i, want := range referenceTable {
		if crcTable[i] != want {
			panic(fmt.Sprintf("crc16: generated table entry %d is %#04x, reference is %#04x", i, crcTable[i], want))
		}
	}
}

// Checksum returns the Modbus CRC-16 of data using the lookup table.
// The empty input returns the seed value 0xFFFF.
func Checksum(data []byte) uint16 {
	return Update(seed, data)
}

// Update continues a checksum with additional data. crc must be the value
// returned by a previous Update or Checksum call (or the seed 0xFFFF to
// start a new computation).
func Update(crc uint16, data []byte) uint16 {
	tab := table()
	for _, b := range data {
		crc = (crc >> 8) ^ tab[byte(crc)^b]
	}
	return crc
}

// Bytes returns the checksum of data as the two bytes appended to a Modbus
// RTU frame: low byte first, high byte second.
func Bytes(data []byte) []byte {
	crc := Checksum(data)
	return []byte{byte(crc), byte(crc >> 8)}
}
