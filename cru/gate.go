package cru

// Clock gating. Gate bits are active-low enables: a clear bit means
// the clock runs. Register indices at or above pmuGateBase address the
// PMU gate bank instead of the main one. Composite clocks (the MMC
// family and the bus roots) have no gate of their own; enable and
// disable are no-ops and they always report running.

const pmuGateBase = 0x32

type gateKind int

const (
	gateBit gateKind = iota
	gateComposite
)

type gateEntry struct {
	reg  uint32
	bit  uint32
	kind gateKind
}

func (g gateEntry) addr() uint32 {
	if g.reg >= pmuGateBase {
		return pmuClkgateCon(g.reg - pmuGateBase)
	}
	return clkgateCon(g.reg)
}

var gates = map[ClockID]gateEntry{
	// I2C. Instance 0 is in the PMU domain.
	PCLK_I2C1: {10, 8, gateBit},
	PCLK_I2C2: {10, 9, gateBit},
	PCLK_I2C3: {10, 10, gateBit},
	PCLK_I2C4: {10, 11, gateBit},
	PCLK_I2C5: {10, 12, gateBit},
	PCLK_I2C6: {10, 13, gateBit},
	PCLK_I2C7: {10, 14, gateBit},
	PCLK_I2C8: {10, 15, gateBit},
	CLK_I2C1:  {11, 0, gateBit},
	CLK_I2C2:  {11, 1, gateBit},
	CLK_I2C3:  {11, 2, gateBit},
	CLK_I2C4:  {11, 3, gateBit},
	CLK_I2C5:  {11, 4, gateBit},
	CLK_I2C6:  {11, 5, gateBit},
	CLK_I2C7:  {11, 6, gateBit},
	CLK_I2C8:  {11, 7, gateBit},
	PCLK_I2C0: {pmuGateBase + 2, 1, gateBit},
	CLK_I2C0:  {pmuGateBase + 2, 2, gateBit},

	// UART.
	PCLK_UART1: {12, 2, gateBit},
	PCLK_UART2: {12, 3, gateBit},
	PCLK_UART3: {12, 4, gateBit},
	PCLK_UART4: {12, 5, gateBit},
	PCLK_UART5: {12, 6, gateBit},
	PCLK_UART6: {12, 7, gateBit},
	PCLK_UART7: {12, 8, gateBit},
	// PCLK_UART8 shares ID 620 with PCLK_I2C0 in the vendor
	// numbering; the I2C0 entry above owns it.
	PCLK_UART9: {12, 10, gateBit},
	CLK_UART1:  {12, 13, gateBit},
	CLK_UART2:  {13, 0, gateBit},
	CLK_UART3:  {13, 3, gateBit},
	CLK_UART4:  {13, 6, gateBit},
	CLK_UART5:  {13, 9, gateBit},
	CLK_UART6:  {13, 12, gateBit},
	CLK_UART7:  {13, 15, gateBit},
	CLK_UART8:  {14, 2, gateBit},
	CLK_UART9:  {14, 5, gateBit},
	PCLK_UART0: {pmuGateBase + 2, 6, gateBit},
	CLK_UART0:  {pmuGateBase + 2, 5, gateBit},

	// SPI.
	PCLK_SPI0: {14, 6, gateBit},
	PCLK_SPI1: {14, 7, gateBit},
	PCLK_SPI2: {14, 8, gateBit},
	PCLK_SPI3: {14, 9, gateBit},
	PCLK_SPI4: {14, 10, gateBit},
	CLK_SPI0:  {14, 11, gateBit},
	CLK_SPI1:  {14, 12, gateBit},
	CLK_SPI2:  {14, 13, gateBit},
	CLK_SPI3:  {14, 14, gateBit},
	CLK_SPI4:  {14, 15, gateBit},

	// PWM.
	PCLK_PWM1:           {15, 0, gateBit},
	PCLK_PWM3:           {15, 1, gateBit},
	CLK_PWM1:            {15, 3, gateBit},
	CLK_PWM3:            {15, 4, gateBit},
	CLK_PWM1_CAPTURE:    {15, 5, gateBit},
	PCLK_PWM2:           {15, 6, gateBit},
	CLK_PWM2:            {15, 7, gateBit},
	CLK_PWM2_CAPTURE:    {15, 8, gateBit},
	CLK_PWM3_CAPTURE:    {15, 9, gateBit},
	PCLK_PMU1PWM:        {pmuGateBase + 2, 8, gateBit},
	CLK_PMU1PWM:         {pmuGateBase + 2, 11, gateBit},
	CLK_PMU1PWM_CAPTURE: {pmuGateBase + 2, 12, gateBit},

	// ADC.
	PCLK_SARADC: {15, 11, gateBit},
	CLK_SARADC:  {15, 12, gateBit},
	PCLK_TSADC:  {16, 6, gateBit},
	CLK_TSADC:   {16, 7, gateBit},

	// Composites: always-on mux/divider outputs.
	CCLK_EMMC:            {kind: gateComposite},
	BCLK_EMMC:            {kind: gateComposite},
	CCLK_SRC_SDIO:        {kind: gateComposite},
	SCLK_SFC:             {kind: gateComposite},
	ACLK_BUS_ROOT:        {kind: gateComposite},
	ACLK_TOP_ROOT:        {kind: gateComposite},
	PCLK_TOP_ROOT:        {kind: gateComposite},
	ACLK_LOW_TOP_ROOT:    {kind: gateComposite},
	ACLK_CENTER_ROOT:     {kind: gateComposite},
	PCLK_CENTER_ROOT:     {kind: gateComposite},
	HCLK_CENTER_ROOT:     {kind: gateComposite},
	ACLK_CENTER_LOW_ROOT: {kind: gateComposite},
}

// Enable ungates the clock.
func (c *Cru) Enable(id ClockID) error {
	g, ok := gates[id]
	if !ok {
		return errUnsupported(id)
	}
	if g.kind == gateComposite {
		return nil
	}
	c.clrreg(g.addr(), 1<<g.bit)
	return nil
}

// Disable gates the clock off.
func (c *Cru) Disable(id ClockID) error {
	g, ok := gates[id]
	if !ok {
		return errUnsupported(id)
	}
	if g.kind == gateComposite {
		return nil
	}
	c.setreg(g.addr(), 1<<g.bit)
	return nil
}

// IsEnabled reports whether the clock is ungated.
func (c *Cru) IsEnabled(id ClockID) (bool, error) {
	g, ok := gates[id]
	if !ok {
		return false, errUnsupported(id)
	}
	if g.kind == gateComposite {
		return true, nil
	}
	return c.readl(g.addr())&(1<<g.bit) == 0, nil
}
