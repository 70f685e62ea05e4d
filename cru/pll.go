package cru

import (
	"log"
	"time"
)

// pllDesc locates one PLL's register set: five CON registers starting
// at conOff (lock status in CON6 at conOff+0x18) and a 2-bit mode
// field at modeShift in the register at modeOff.
type pllDesc struct {
	conOff    uint32
	modeOff   uint32
	modeShift uint32
}

var pllDescs = map[ClockID]pllDesc{
	PLL_B0PLL: {b0PllCon(0), B0_PLL_MODE_CON, 0},
	PLL_B1PLL: {b1PllCon(8), B1_PLL_MODE_CON, 0},
	PLL_LPLL:  {lpllCon(16), LPLL_MODE_CON, 0},
	PLL_V0PLL: {pllCon(88), MODE_CON0, 4},
	PLL_AUPLL: {pllCon(96), MODE_CON0, 6},
	PLL_CPLL:  {pllCon(104), MODE_CON0, 8},
	PLL_GPLL:  {pllCon(112), MODE_CON0, 2},
	PLL_NPLL:  {pllCon(120), MODE_CON0, 0},
	PLL_PPLL:  {pmuPllCon(128), MODE_CON0, 10},
}

// pllRate is one verified configuration: rate = ((OSC/p)*m + frac) >> s
// with frac = OSC*k/(p*65536).
type pllRate struct {
	rate uint64
	p    uint32
	m    uint32
	s    uint32
	k    uint32
}

var pllRates = []pllRate{
	{1_500_000_000, 2, 250, 1, 0},
	{1_200_000_000, 2, 200, 1, 0},
	{1_188_000_000, 2, 198, 1, 0},
	{1_100_000_000, 3, 550, 2, 0},
	{1_008_000_000, 2, 336, 2, 0},
	{1_000_000_000, 3, 500, 2, 0},
	{900_000_000, 2, 300, 2, 0},
	{850_000_000, 3, 425, 2, 0},
	{816_000_000, 2, 272, 2, 0},
	{786_432_000, 2, 262, 2, 9437},
	{786_000_000, 1, 131, 2, 0},
	{742_500_000, 4, 495, 2, 0},
	{722_534_400, 8, 963, 2, 24850},
	{600_000_000, 2, 200, 2, 0},
	{594_000_000, 2, 198, 2, 0},
	{200_000_000, 3, 400, 4, 0},
	{100_000_000, 3, 400, 5, 0},
}

// VCO range of the RK3588 PLL macro.
const (
	pllVCOMin = 2250 * MHZ
	pllVCOMax = 4500 * MHZ
)

// CalcPLLRate computes the output rate for a divider configuration.
// The fractional term uses a 16-bit numerator k over a fixed 65536
// denominator; all arithmetic truncates, so e.g. p=2 m=262 s=2 k=9437
// at a 24MHz input yields 786431991, not 786432000.
func CalcPLLRate(fin uint64, p, m, s, k uint32) uint64 {
	rate := (fin / uint64(p)) * uint64(m)
	if k != 0 {
		rate += fin * uint64(k) / (uint64(p) * 65536)
	}
	return rate >> s
}

// findPLLParams returns divider settings for the requested rate,
// preferring the verified table. Rates not in the table are computed
// with p=2, s=2 if the implied VCO is in range; the result must agree
// with the request to within 0.1%.
func findPLLParams(id ClockID, rate uint64) (pllRate, error) {
	for _, r := range pllRates {
		if r.rate == rate {
			return r, nil
		}
	}

	var r pllRate
	r.rate = rate
	r.p = 2
	r.s = 2
	vco := rate << r.s
	if vco < pllVCOMin || vco > pllVCOMax {
		return r, errPLL(id, "no table entry for %dHz and VCO %dHz out of range", rate, vco)
	}
	r.m = uint32(vco / (OSC_HZ / uint64(r.p)))
	got := CalcPLLRate(OSC_HZ, r.p, r.m, r.s, r.k)
	if !withinTolerance(got, rate) {
		return r, errPLL(id, "computed params give %dHz, wanted %dHz", got, rate)
	}
	log.Printf("pll %d: %dHz not in rate table, using computed p=%d m=%d s=%d", id, rate, r.p, r.m, r.s)
	return r, nil
}

func (c *Cru) pllMode(d pllDesc) uint32 {
	return (c.readl(d.modeOff) >> d.modeShift) & PLL_MODE_MASK
}

func (c *Cru) pllSetMode(d pllDesc, mode uint32) {
	c.clrsetreg(d.modeOff, PLL_MODE_MASK<<d.modeShift, mode<<d.modeShift)
}

func (c *Cru) pllGetRate(id ClockID) (uint64, error) {
	d, ok := pllDescs[id]
	if !ok {
		return 0, errUnsupported(id)
	}

	mode := c.pllMode(d)
	// PPLL has no working mode mux; it always runs locked.
	if id == PLL_PPLL {
		mode = PLL_MODE_NORMAL
	}

	switch mode {
	case PLL_MODE_SLOW:
		return OSC_HZ, nil
	case PLL_MODE_DEEP:
		return DEEP_SLOW_HZ, nil
	}

	con0 := c.readl(d.conOff)
	con1 := c.readl(d.conOff + 4)
	con2 := c.readl(d.conOff + 8)
	m := (con0 & PLLCON0_M_MASK) >> PLLCON0_M_SHIFT
	p := (con1 & PLLCON1_P_MASK) >> PLLCON1_P_SHIFT
	s := (con1 & PLLCON1_S_MASK) >> PLLCON1_S_SHIFT
	k := (con2 & PLLCON2_K_MASK) >> PLLCON2_K_SHIFT
	if p == 0 {
		return OSC_HZ, nil
	}
	return CalcPLLRate(OSC_HZ, p, m, s, k), nil
}

func (c *Cru) pllSetRate(id ClockID, rate uint64) (uint64, error) {
	d, ok := pllDescs[id]
	if !ok {
		return 0, errUnsupported(id)
	}
	params, err := findPLLParams(id, rate)
	if err != nil {
		return 0, err
	}

	// Run from the 24MHz bypass while the PLL is reprogrammed, so
	// downstream consumers never see an unlocked output.
	c.pllSetMode(d, PLL_MODE_SLOW)
	c.setreg(d.conOff+4, PLLCON1_PWRDOWN)

	c.clrsetreg(d.conOff, PLLCON0_M_MASK, params.m<<PLLCON0_M_SHIFT)
	c.clrsetreg(d.conOff+4, PLLCON1_P_MASK|PLLCON1_S_MASK,
		params.p<<PLLCON1_P_SHIFT|params.s<<PLLCON1_S_SHIFT)
	c.clrsetreg(d.conOff+8, PLLCON2_K_MASK, params.k<<PLLCON2_K_SHIFT)

	c.clrreg(d.conOff+4, PLLCON1_PWRDOWN)

	if err := c.pllWaitLock(id, d); err != nil {
		return 0, err
	}
	c.pllSetMode(d, PLL_MODE_NORMAL)

	actual, err := c.pllGetRate(id)
	if err != nil {
		return 0, err
	}
	switch id {
	case PLL_CPLL:
		c.cpllHz = actual
	case PLL_GPLL:
		c.gpllHz = actual
	case PLL_PPLL:
		c.ppllHz = actual
	}
	return actual, nil
}

// pllWaitLock polls the lock bit in CON6. Lock normally arrives well
// under 100us; the iteration cap keeps a dead PLL from hanging us.
func (c *Cru) pllWaitLock(id ClockID, d pllDesc) error {
	i := 0
	for c.readl(d.conOff+0x18)&PLLCON6_LOCK_STATUS == 0 {
		i++
		if i == 100000 {
			return errPLL(id, "pll did not lock")
		}
		time.Sleep(time.Microsecond)
	}
	return nil
}
