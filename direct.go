package crc16

// ChecksumDirect calculates the Modbus CRC-16 of data bit by bit, without
// the lookup table. It is the reference implementation the table path is
// verified against and a fallback where the 512-byte table is unwelcome.
// ChecksumDirect(data) == Checksum(data) for every input.
func ChecksumDirect(data []byte) uint16 {
	return UpdateDirect(seed, data)
}

// UpdateDirect continues a bitwise checksum with additional data, mirroring
// Update on the table path.
func UpdateDirect(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc ^= uint16(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ polynomial
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}
