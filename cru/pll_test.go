package cru

import (
	"errors"
	"testing"
)

func TestCalcPLLRate(t *testing.T) {
	tests := []struct {
		p, m, s, k uint32
		want       uint64
	}{
		{2, 198, 1, 0, 1_188_000_000},
		{2, 250, 1, 0, 1_500_000_000},
		{3, 550, 2, 0, 1_100_000_000},
		// Fractional rates truncate.
		{2, 262, 2, 9437, 786_431_991},
	}
	for _, tc := range tests {
		got := CalcPLLRate(OSC_HZ, tc.p, tc.m, tc.s, tc.k)
		if got != tc.want {
			t.Errorf("CalcPLLRate(p=%d,m=%d,s=%d,k=%d)=%d, want %d", tc.p, tc.m, tc.s, tc.k, got, tc.want)
		}
	}
}

func TestPLLRateTable(t *testing.T) {
	for _, r := range pllRates {
		got := CalcPLLRate(OSC_HZ, r.p, r.m, r.s, r.k)
		if !withinTolerance(got, r.rate) {
			t.Errorf("table entry %dHz: dividers give %dHz, off by more than 0.1%%", r.rate, got)
		}
	}
}

// Programming any table rate and reading it back lands within 0.1%.
func TestPLLSetGetRoundTrip(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	for _, r := range pllRates {
		got, err := c.SetRate(PLL_V0PLL, r.rate)
		if err != nil {
			t.Fatalf("SetRate(%d) failed: %v", r.rate, err)
		}
		read, err := c.GetRate(PLL_V0PLL)
		if err != nil {
			t.Fatalf("GetRate after SetRate(%d) failed: %v", r.rate, err)
		}
		if read != got {
			t.Errorf("SetRate(%d) returned %d but GetRate reads %d", r.rate, got, read)
		}
		if !withinTolerance(read, r.rate) {
			t.Errorf("round trip of %dHz reads %dHz, off by more than 0.1%%", r.rate, read)
		}
	}
}

func TestPLLGetRateModes(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	b.pokePLL(PLL_GPLL, 2, 198, 1, 0, PLL_MODE_SLOW)
	if rate, err := c.GetRate(PLL_GPLL); err != nil || rate != OSC_HZ {
		t.Errorf("slow mode: got %d, %v, want %d", rate, err, uint64(OSC_HZ))
	}

	b.pokePLL(PLL_GPLL, 2, 198, 1, 0, PLL_MODE_DEEP)
	if rate, err := c.GetRate(PLL_GPLL); err != nil || rate != DEEP_SLOW_HZ {
		t.Errorf("deep mode: got %d, %v, want %d", rate, err, uint64(DEEP_SLOW_HZ))
	}

	b.pokePLL(PLL_GPLL, 2, 198, 1, 0, PLL_MODE_NORMAL)
	if rate, err := c.GetRate(PLL_GPLL); err != nil || rate != 1_188_000_000 {
		t.Errorf("normal mode: got %d, %v, want 1188000000", rate, err)
	}
}

// PPLL reads as locked regardless of its mode field.
func TestPPLLIgnoresModeField(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	b.pokePLL(PLL_PPLL, 3, 550, 2, 0, PLL_MODE_SLOW)
	if rate, err := c.GetRate(PLL_PPLL); err != nil || rate != 1_100_000_000 {
		t.Errorf("got %d, %v, want 1100000000", rate, err)
	}
}

func TestPLLGetRateZeroP(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	b.pokePLL(PLL_NPLL, 0, 0, 0, 0, PLL_MODE_NORMAL)
	if rate, err := c.GetRate(PLL_NPLL); err != nil || rate != OSC_HZ {
		t.Errorf("got %d, %v, want %d", rate, err, uint64(OSC_HZ))
	}
}

func TestPLLSetRateFromTable(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	rate, err := c.SetRate(PLL_GPLL, 1_188_000_000)
	if err != nil {
		t.Fatalf("SetRate failed: %v", err)
	}
	if rate != 1_188_000_000 {
		t.Errorf("got %d, want 1188000000", rate)
	}

	d := pllDescs[PLL_GPLL]
	if m := b.peek(d.conOff) & PLLCON0_M_MASK; m != 198 {
		t.Errorf("m=%d, want 198", m)
	}
	con1 := b.peek(d.conOff + 4)
	if p := con1 & PLLCON1_P_MASK; p != 2 {
		t.Errorf("p=%d, want 2", p)
	}
	if s := (con1 & PLLCON1_S_MASK) >> PLLCON1_S_SHIFT; s != 1 {
		t.Errorf("s=%d, want 1", s)
	}
	if con1&PLLCON1_PWRDOWN != 0 {
		t.Error("pll left powered down")
	}
	if mode := (b.peek(d.modeOff) >> d.modeShift) & PLL_MODE_MASK; mode != PLL_MODE_NORMAL {
		t.Errorf("mode=%d, want normal", mode)
	}
	if c.gpllHz != 1_188_000_000 {
		t.Errorf("cached gpll %d, want 1188000000", c.gpllHz)
	}
}

func TestPLLSetRateComputed(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	// 750MHz is not in the table but divides cleanly with p=2 s=2.
	rate, err := c.SetRate(PLL_V0PLL, 750_000_000)
	if err != nil {
		t.Fatalf("SetRate failed: %v", err)
	}
	if rate != 750_000_000 {
		t.Errorf("got %d, want 750000000", rate)
	}
}

func TestPLLSetRateOutOfRange(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	// VCO would be 40MHz, far below the PLL's range.
	_, err := c.SetRate(PLL_V0PLL, 10_000_000)
	var ce *ClockError
	if !errors.As(err, &ce) || ce.Kind != ErrPLLConfig {
		t.Errorf("got %v, want pll config error", err)
	}
}

func TestPLLSetRateFractional(t *testing.T) {
	b := newRegBank()
	c := New(b, nil)

	rate, err := c.SetRate(PLL_AUPLL, 786_432_000)
	if err != nil {
		t.Fatalf("SetRate failed: %v", err)
	}
	if rate != 786_431_991 {
		t.Errorf("got %d, want 786431991", rate)
	}
	d := pllDescs[PLL_AUPLL]
	if k := b.peek(d.conOff+8) & PLLCON2_K_MASK; k != 9437 {
		t.Errorf("k=%d, want 9437", k)
	}
}
