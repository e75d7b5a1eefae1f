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

package crc16

// Digest computes a Modbus CRC-16 incrementally. The zero value is not
// usable; call New. A Digest is not safe for concurrent use, but distinct
// Digests are independent.
type Digest struct {
	crc uint16
}

// New returns a Digest ready to consume data.
func New() *Digest {
	return &Digest{crc: seed}
}

// Write adds p to the running checksum. It never fails.
func (d *Digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, p)
	return len(p), nil
}

// Sum16 returns the checksum of the data written so far.
func (d *Digest) Sum16() uint16 {
	return d.crc
}

// Sum appends the current checksum to in, low byte first per the Modbus
// wire convention.
func (d *Digest) Sum(in []byte) []byte {
	return append(in, byte(d.crc), byte(d.crc>>8))
}

// Reset restores the Digest to its initial state.
func (d *Digest) Reset() {
	d.crc = seed
}

// Size returns the checksum length in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash block size.
func (d *Digest) BlockSize() int { return 1 }
