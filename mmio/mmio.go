// Package mmio maps physical register windows into the process via
// /dev/mem and provides 32-bit access to them.
package mmio

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// Mem is one mapped register window. Offsets passed to Read32/Write32
// are relative to the physical base the window was opened at.
type Mem struct {
	f   *os.File
	mm  mmap.MMap
	off int
}

// Open maps size bytes of physical address space starting at physBase.
// Requires root (or CAP_SYS_RAWIO) for /dev/mem.
func Open(physBase int64, size int) (*Mem, error) {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("couldn't open /dev/mem: %v", err)
	}
	m, err := Map(f, physBase, size)
	if err != nil {
		f.Close()
		return nil, err
	}
	m.f = f
	return m, nil
}

// Map maps a window of f starting at base. mmap needs page alignment,
// so the mapping is widened down to the enclosing page boundary and
// the difference folded into every access.
func Map(f *os.File, base int64, size int) (*Mem, error) {
	pageSize := int64(os.Getpagesize())
	mapBase := base &^ (pageSize - 1)
	size += int(base - mapBase)
	mm, err := mmap.MapRegion(f, size, mmap.RDWR, 0, mapBase)
	if err != nil {
		return nil, fmt.Errorf("couldn't map %d bytes at %08X: %v", size, mapBase, err)
	}
	return &Mem{mm: mm, off: int(base - mapBase)}, nil
}

func (m *Mem) Read32(off uint32) uint32 {
	return *(*uint32)(unsafe.Pointer(&m.mm[m.off+int(off)]))
}

func (m *Mem) Write32(off uint32, val uint32) {
	*(*uint32)(unsafe.Pointer(&m.mm[m.off+int(off)])) = val
}

// Close unmaps the window and closes /dev/mem if this Mem opened it.
func (m *Mem) Close() error {
	err := m.mm.Unmap()
	if m.f != nil {
		if cerr := m.f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
