package cru

import "testing"

// Reset IDs decode to a 16-line bank and a bit: ID 16 is bit 0 of the
// second register.
func TestResetDecode(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	c.Reset().Assert(ResetID(16))
	w := b.lastWrite()
	if want := uint32(SOFTRST_CON_OFFSET + 4); w.off != want {
		t.Errorf("wrote %#x, want %#x", w.off, want)
	}
	if w.val != 0x0001_0001 {
		t.Errorf("Assert wrote %#08x, want 0x00010001", w.val)
	}

	c.Reset().Deassert(ResetID(16))
	w = b.lastWrite()
	if w.val != 0x0001_0000 {
		t.Errorf("Deassert wrote %#08x, want 0x00010000", w.val)
	}
	if b.peek(SOFTRST_CON_OFFSET+4)&1 != 0 {
		t.Error("reset bit still set after Deassert")
	}
}

func TestResetBankAndBit(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	tests := []struct {
		id   ResetID
		off  uint32
		bit  uint32
	}{
		{0, SOFTRST_CON_OFFSET, 0},
		{5, SOFTRST_CON_OFFSET, 5},
		{15, SOFTRST_CON_OFFSET, 15},
		{17, SOFTRST_CON_OFFSET + 4, 1},
		{100, SOFTRST_CON_OFFSET + 24, 4},
	}
	for _, tc := range tests {
		c.Reset().Assert(tc.id)
		w := b.lastWrite()
		if w.off != tc.off {
			t.Errorf("Assert(%d): wrote %#x, want %#x", tc.id, w.off, tc.off)
		}
		if want := (uint32(1)<<tc.bit)<<16 | uint32(1)<<tc.bit; w.val != want {
			t.Errorf("Assert(%d): wrote %#08x, want %#08x", tc.id, w.val, want)
		}
	}
}

// PMU-domain resets go through the PMU softrst bank.
func TestPMUResetBank(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	c.PMUReset().Assert(ResetID(16))
	w := b.lastWrite()
	if want := pmuSoftrstCon(1); w.off != want {
		t.Errorf("wrote %#x, want %#x", w.off, want)
	}
	if w.val != 0x0001_0001 {
		t.Errorf("Assert wrote %#08x, want 0x00010001", w.val)
	}
}

func TestGlobalSoftReset(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	c.GlobalSoftResetFirst()
	w := b.lastWrite()
	if w.off != GLB_SRST_FST || w.val != GLB_SRST_FST_VALUE {
		t.Errorf("first: wrote %#x=%#x, want %#x=%#x", w.off, w.val, uint32(GLB_SRST_FST), uint32(GLB_SRST_FST_VALUE))
	}

	c.GlobalSoftResetSecond()
	w = b.lastWrite()
	if w.off != GLB_SRST_SND || w.val != GLB_SRST_SND_VALUE {
		t.Errorf("second: wrote %#x=%#x, want %#x=%#x", w.off, w.val, uint32(GLB_SRST_SND), uint32(GLB_SRST_SND_VALUE))
	}
}
