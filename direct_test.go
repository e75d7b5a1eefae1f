package crc16

import (
	"math/rand"
	"testing"

	sigurn "github.com/sigurn/crc16"
)

func TestChecksumDirect(t *testing.T) {
	testCases := []struct {
		data     []byte
		expected uint16
	}{
		{data: []byte{}, expected: 0xFFFF},
		{data: []byte{0x00}, expected: 0xBF40},
		{data: []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x06}, expected: 0xC8C5},
		{data: []byte("123456789"), expected: 0x4B37},
	}

	for _, tc := range testCases {
		crc := ChecksumDirect(tc.data)
		if crc != tc.expected {
			t.Errorf("ChecksumDirect(% X) returned incorrect CRC: got %#04x, expected %#04x", tc.data, crc, tc.expected)
		}
	}
}

// TestStrategyEquivalence is the primary correctness property: the table
// path and the bitwise path agree on every input.
func TestStrategyEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	lengths := []int{0, 1, 2, 255, 256, 1000}
	for _, n := range lengths {
		data := make([]byte, n)
		rng.Read(data)
		tableCRC := Checksum(data)
		directCRC := ChecksumDirect(data)
		if tableCRC != directCRC {
			t.Errorf("length %d: table gave %#04x, bitwise gave %#04x", n, tableCRC, directCRC)
		}
	}

	for i := 0; i < 500; i++ {
		data := make([]byte, rng.Intn(512))
		rng.Read(data)
		tableCRC := Checksum(data)
		directCRC := ChecksumDirect(data)
		if tableCRC != directCRC {
			t.Fatalf("random input % X: table gave %#04x, bitwise gave %#04x", data, tableCRC, directCRC)
		}
	}
}

// TestChecksumAgainstSigurn cross-checks both strategies against an
// independent CRC16/MODBUS implementation.
func TestChecksumAgainstSigurn(t *testing.T) {
	oracle := sigurn.MakeTable(sigurn.CRC16_MODBUS)
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{0, 1, 2, 6, 255, 256, 1000} {
		data := make([]byte, n)
		rng.Read(data)
		expected := sigurn.Checksum(data, oracle)
		if crc := Checksum(data); crc != expected {
			t.Errorf("length %d: Checksum gave %#04x, oracle gave %#04x", n, crc, expected)
		}
		if crc := ChecksumDirect(data); crc != expected {
			t.Errorf("length %d: ChecksumDirect gave %#04x, oracle gave %#04x", n, crc, expected)
		}
	}
}

func TestUpdateDirectIncremental(t *testing.T) {
	data := []byte{0x10, 0x06, 0x00, 0x01, 0x00, 0x01, 0x01, 0x08}
	whole := ChecksumDirect(data)

	for split := 0; split <= len(data); split++ {
		crc := UpdateDirect(UpdateDirect(0xFFFF, data[:split]), data[split:])
		if crc != whole {
			t.Errorf("UpdateDirect split at %d: got %#04x, expected %#04x", split, crc, whole)
		}
	}
}
