package mmio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Maps a temp file at an unaligned base and checks that accesses land
// at the right file offsets.
func TestMapRoundTrip(t *testing.T) {
	pageSize := int64(os.Getpagesize())
	f, err := os.Create(filepath.Join(t.TempDir(), "regs"))
	if err != nil {
		t.Fatalf("couldn't create temp file: %v", err)
	}
	defer f.Close()
	if err := f.Truncate(3 * pageSize); err != nil {
		t.Fatalf("couldn't size temp file: %v", err)
	}

	base := pageSize + 16
	m, err := Map(f, base, 256)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	defer m.Close()

	m.Write32(8, 0xdeadbeef)
	if got := m.Read32(8); got != 0xdeadbeef {
		t.Errorf("Read32=%#x, want 0xdeadbeef", got)
	}

	buf := make([]byte, 4)
	if _, err := f.ReadAt(buf, base+8); err != nil {
		t.Fatalf("ReadAt failed: %v", err)
	}
	if got := binary.LittleEndian.Uint32(buf); got != 0xdeadbeef {
		t.Errorf("file contents %#x, want 0xdeadbeef", got)
	}
}

func TestMapPageAlignment(t *testing.T) {
	pageSize := int64(os.Getpagesize())
	f, err := os.Create(filepath.Join(t.TempDir(), "regs"))
	if err != nil {
		t.Fatalf("couldn't create temp file: %v", err)
	}
	defer f.Close()
	if err := f.Truncate(2 * pageSize); err != nil {
		t.Fatalf("couldn't size temp file: %v", err)
	}

	// Base in the middle of a page still maps offset 0 to base.
	base := pageSize / 2
	m, err := Map(f, base, 64)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	defer m.Close()

	m.Write32(0, 0x12345678)
	buf := make([]byte, 4)
	if _, err := f.ReadAt(buf, base); err != nil {
		t.Fatalf("ReadAt failed: %v", err)
	}
	if got := binary.LittleEndian.Uint32(buf); got != 0x12345678 {
		t.Errorf("file contents %#x, want 0x12345678", got)
	}
}
