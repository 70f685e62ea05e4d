package cru

// regBank is a fake RegIO implementing the CRU's write-mask protocol:
// the upper 16 bits of a write select which of the lower 16 bits take
// effect. Registers without a write mask (the UART fractional pairs
// and the global reset triggers) are marked plain. Every raw write is
// logged so tests can check exact bus values.

type regWrite struct {
	off uint32
	val uint32
}

type regBank struct {
	regs   map[uint32]uint32
	plain  map[uint32]bool
	writes []regWrite
}

func newRegBank() *regBank {
	b := &regBank{
		regs:  make(map[uint32]uint32),
		plain: make(map[uint32]bool),
	}
	for _, reg := range []uint32{42, 44, 46, 48} {
		b.plain[clkselCon(reg)] = true
	}
	b.plain[GLB_SRST_FST] = true
	b.plain[GLB_SRST_SND] = true
	return b
}

func (b *regBank) Read32(off uint32) uint32 {
	return b.regs[off]
}

func (b *regBank) Write32(off uint32, val uint32) {
	b.writes = append(b.writes, regWrite{off, val})
	if b.plain[off] {
		b.regs[off] = val
	} else {
		mask := val >> 16
		b.regs[off] = (b.regs[off] &^ mask) | (val & 0xffff & mask)
	}
	b.lockPLL(off)
}

// lockPLL raises the lock bit as soon as a PLL comes out of power-down,
// standing in for the real lock delay.
func (b *regBank) lockPLL(off uint32) {
	for _, d := range pllDescs {
		if off == d.conOff+4 && b.regs[off]&PLLCON1_PWRDOWN == 0 {
			b.regs[d.conOff+0x18] |= PLLCON6_LOCK_STATUS
		}
	}
}

func (b *regBank) poke(off, val uint32) {
	b.regs[off] = val
}

func (b *regBank) peek(off uint32) uint32 {
	return b.regs[off]
}

func (b *regBank) lastWrite() regWrite {
	return b.writes[len(b.writes)-1]
}

// pokePLL programs a PLL's dividers and mode directly, bypassing the
// set-rate sequence.
func (b *regBank) pokePLL(id ClockID, p, m, s, k uint32, mode uint32) {
	d := pllDescs[id]
	b.poke(d.conOff, m<<PLLCON0_M_SHIFT)
	b.poke(d.conOff+4, p<<PLLCON1_P_SHIFT|s<<PLLCON1_S_SHIFT)
	b.poke(d.conOff+8, k<<PLLCON2_K_SHIFT)
	b.poke(d.conOff+0x18, PLLCON6_LOCK_STATUS)
	old := b.regs[d.modeOff]
	b.poke(d.modeOff, old&^(PLL_MODE_MASK<<d.modeShift)|mode<<d.modeShift)
}
