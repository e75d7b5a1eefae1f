package crc16

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerifyTable(t *testing.T) {
	if err := VerifyTable(); err != nil {
		t.Fatalf("VerifyTable failed: %v", err)
	}
}

// TestTableEntriesMatchBitwiseReduction checks the table's defining
// invariant: entry i is the bit-level reduction of byte i over a zero
// accumulator, isolated from the 0xFFFF seed.
func TestTableEntriesMatchBitwiseReduction(t *testing.T) {
	tab := table()
	for i := 0; i < 256; i++ {
		expected := UpdateDirect(0, []byte{byte(i)})
		if tab[i] != expected {
			t.Errorf("table[%d] = %#04x, bitwise reduction gives %#04x", i, tab[i], expected)
		}
	}
}

// TestVerifyTableDetectsCorruption corrupts one table entry and checks the
// conformance check reports it. The entry is restored before returning.
func TestVerifyTableDetectsCorruption(t *testing.T) {
	tab := table()
	original := tab[17]
	tab[17] ^= 0x0001
	defer func() { tab[17] = original }()

	err := VerifyTable()
	if err == nil {
		t.Fatal("VerifyTable accepted a corrupted table")
	}
	if !strings.Contains(err.Error(), "entry 17") {
		t.Errorf("VerifyTable error does not name the bad entry: %v", err)
	}
}

func TestSelfTest(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSimpleLogger(&buf, LevelDebug, "CRC16")

	if err := SelfTest(logger); err != nil {
		t.Fatalf("SelfTest failed: %v", err)
	}
	if !strings.Contains(buf.String(), "self test passed") {
		t.Errorf("SelfTest did not report success, log:\n%s", buf.String())
	}
}

func TestSelfTestNilLogger(t *testing.T) {
	if err := SelfTest(nil); err != nil {
		t.Fatalf("SelfTest with nil logger failed: %v", err)
	}
}
