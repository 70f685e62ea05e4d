// Package cru drives the RK3588 Clock and Reset Unit: PLL frequency
// synthesis, peripheral clock muxes and dividers, clock gates and the
// software reset banks. All register access goes through the RegIO
// interface, so the same code runs over a mapped /dev/mem window or a
// fake register bank in tests.
package cru

import (
	"fmt"
	"log"
)

// RegIO is 32-bit register access relative to the CRU window base.
type RegIO interface {
	Read32(off uint32) uint32
	Write32(off uint32, val uint32)
}

// Cru is the clock and reset controller. The cached PLL rates back the
// peripheral rate calculations and are refreshed whenever the
// corresponding PLL is reprogrammed.
type Cru struct {
	io  RegIO
	grf RegIO

	cpllHz uint64
	gpllHz uint64
	ppllHz uint64

	reset    *ResetCtl
	pmuReset *ResetCtl
}

// New returns a Cru over the CRU register window. grf is the sys-GRF
// window; none of the rate math reads it today, but the controller
// owns both blocks and callers hand it over here. Cached PLL rates
// start at the nominal values; call Init to read them from hardware.
func New(io, grf RegIO) *Cru {
	return &Cru{
		io:       io,
		grf:      grf,
		cpllHz:   CPLL_HZ,
		gpllHz:   GPLL_HZ,
		ppllHz:   PPLL_HZ,
		reset:    newResetCtl(io, softrstCon(0)),
		pmuReset: newResetCtl(io, pmuSoftrstCon(0)),
	}
}

func (c *Cru) String() string {
	return fmt.Sprintf("Cru{cpll:%dHz gpll:%dHz ppll:%dHz}", c.cpllHz, c.gpllHz, c.ppllHz)
}

// Reset returns the software reset controller for the main CRU bank.
func (c *Cru) Reset() *ResetCtl {
	return c.reset
}

// PMUReset returns the reset controller for the PMU-domain bank.
func (c *Cru) PMUReset() *ResetCtl {
	return c.pmuReset
}

// The CRU registers carry a write-enable mask in the upper 16 bits:
// only bits whose mask bit is set take the written value. clrsetreg
// clears clr and sets set in one write, with no read-modify-write
// cycle.
func (c *Cru) clrsetreg(off, clr, set uint32) {
	c.io.Write32(off, ((clr|set)<<16)|set)
}

func (c *Cru) setreg(off, set uint32) {
	c.clrsetreg(off, 0, set)
}

func (c *Cru) clrreg(off, clr uint32) {
	c.clrsetreg(off, clr, 0)
}

func (c *Cru) readl(off uint32) uint32 {
	return c.io.Read32(off)
}

// Init checks the boot-time clock configuration against the expected
// values, caches the live PLL rates and brings PPLL to its nominal
// rate if the loader left it elsewhere. Mismatches in the bus roots
// are logged, not corrected, since reclocking a live bus root can hang
// masters on it.
func (c *Cru) Init() error {
	con := c.readl(clkselCon(38))
	sel := (con & ACLK_BUS_ROOT_SEL_MASK) >> ACLK_BUS_ROOT_SEL_SHIFT
	if sel != ACLK_BUS_ROOT_SEL_GPLL {
		log.Printf("aclk_bus_root: source select %d, expected gpll (0)", sel)
	}
	wantDiv := uint32(divCeil(GPLL_HZ, 300*MHZ) - 1)
	div := (con & ACLK_BUS_ROOT_DIV_MASK) >> ACLK_BUS_ROOT_DIV_SHIFT
	if div != wantDiv {
		log.Printf("aclk_bus_root: divider %d, expected %d", div, wantDiv)
	}

	con = c.readl(clkselCon(9))
	if s := (con & ACLK_TOP_S400_SEL_MASK) >> ACLK_TOP_S400_SEL_SHIFT; s != ACLK_TOP_S400_SEL_400M {
		log.Printf("aclk_top_s400: source select %d, expected 400M (0)", s)
	}
	if s := (con & ACLK_TOP_S200_SEL_MASK) >> ACLK_TOP_S200_SEL_SHIFT; s != ACLK_TOP_S200_SEL_200M {
		log.Printf("aclk_top_s200: source select %d, expected 200M (0)", s)
	}

	cpll, err := c.pllGetRate(PLL_CPLL)
	if err != nil {
		return err
	}
	c.cpllHz = cpll
	if !withinTolerance(cpll, CPLL_HZ) {
		log.Printf("cpll: %dHz, expected %dHz", cpll, uint64(CPLL_HZ))
	}

	gpll, err := c.pllGetRate(PLL_GPLL)
	if err != nil {
		return err
	}
	c.gpllHz = gpll
	if !withinTolerance(gpll, GPLL_HZ) {
		log.Printf("gpll: %dHz, expected %dHz", gpll, uint64(GPLL_HZ))
	}

	ppll, err := c.pllGetRate(PLL_PPLL)
	if err != nil {
		return err
	}
	c.ppllHz = ppll
	if ppll != PPLL_HZ {
		log.Printf("ppll: %dHz, reprogramming to %dHz", ppll, uint64(PPLL_HZ))
		if _, err := c.pllSetRate(PLL_PPLL, PPLL_HZ); err != nil {
			return err
		}
	}
	return nil
}

// withinTolerance reports whether got is within 0.1% of want.
func withinTolerance(got, want uint64) bool {
	var diff uint64
	if got > want {
		diff = got - want
	} else {
		diff = want - got
	}
	return diff <= want/1000
}

func divCeil(n, d uint64) uint64 {
	return (n + d - 1) / d
}

// clockClass pairs a family predicate with its rate handlers. Dispatch
// order matters: the first matching class wins.
type clockClass struct {
	match func(ClockID) bool
	get   func(*Cru, ClockID) (uint64, error)
	set   func(*Cru, ClockID, uint64) (uint64, error)
}

var clockClasses = []clockClass{
	{isPLLClk, (*Cru).pllGetRate, (*Cru).pllSetRate},
	{isI2CClk, (*Cru).i2cGetRate, (*Cru).i2cSetRate},
	{isUARTClk, (*Cru).uartGetRate, (*Cru).uartSetRate},
	{isSPIClk, (*Cru).spiGetRate, (*Cru).spiSetRate},
	{isPWMClk, (*Cru).pwmGetRate, (*Cru).pwmSetRate},
	{isADCClk, (*Cru).adcGetRate, (*Cru).adcSetRate},
	{isMMCClk, (*Cru).mmcGetRate, (*Cru).mmcSetRate},
	{isUSBClk, (*Cru).usbGetRate, (*Cru).usbSetRate},
	{isRootClk, (*Cru).rootGetRate, (*Cru).rootSetRate},
}

// GetRate returns the current output rate of the clock in Hz.
func (c *Cru) GetRate(id ClockID) (uint64, error) {
	for _, cl := range clockClasses {
		if cl.match(id) {
			return cl.get(c, id)
		}
	}
	return 0, errRateRead(id, "clock type not supported yet")
}

// SetRate programs the clock as close to rate as its mux and divider
// allow and returns the rate actually achieved.
func (c *Cru) SetRate(id ClockID, rate uint64) (uint64, error) {
	for _, cl := range clockClasses {
		if cl.match(id) {
			return cl.set(c, id, rate)
		}
	}
	return 0, errInvalidRate(id, rate)
}
