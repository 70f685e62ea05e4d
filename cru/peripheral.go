package cru

// Peripheral clock get/set. Each family reads its mux and divider
// fields out of the clksel bank and computes rates against the cached
// PLL outputs. Dividers are stored minus one: rate = parent/(div+1).

// parentSrc names a mux input whose rate is either fixed or one of the
// cached PLL outputs.
type parentSrc int

const (
	srcGPLL parentSrc = iota
	srcCPLL
	srcOSC
	src150M
	src100M
	src50M
)

func (c *Cru) parentRate(p parentSrc) uint64 {
	switch p {
	case srcGPLL:
		return c.gpllHz
	case srcCPLL:
		return c.cpllHz
	case srcOSC:
		return OSC_HZ
	case src150M:
		return 150 * MHZ
	case src100M:
		return 100 * MHZ
	case src50M:
		return 50 * MHZ
	}
	return 0
}

// I2C

// i2cSelReg returns the register and shift of the 1-bit source select
// for an I2C instance. I2C0 lives in the PMU domain.
func i2cSelReg(n int) (uint32, uint32) {
	if n == 0 {
		return pmuClkselCon(3), CLK_I2C0_SEL_SHIFT
	}
	return clkselCon(38), uint32(5 + n)
}

func (c *Cru) i2cGetRate(id ClockID) (uint64, error) {
	n, ok := i2cNum(id)
	if !ok {
		return 0, errUnsupported(id)
	}
	reg, shift := i2cSelReg(n)
	if (c.readl(reg)>>shift)&1 == CLK_I2C_SEL_200M {
		return 200 * MHZ, nil
	}
	return 100 * MHZ, nil
}

func (c *Cru) i2cSetRate(id ClockID, rate uint64) (uint64, error) {
	n, ok := i2cNum(id)
	if !ok {
		return 0, errUnsupported(id)
	}
	sel := uint32(CLK_I2C_SEL_100M)
	actual := uint64(100 * MHZ)
	if rate >= 198*MHZ {
		sel = CLK_I2C_SEL_200M
		actual = 200 * MHZ
	}
	reg, shift := i2cSelReg(n)
	c.clrsetreg(reg, 1<<shift, sel<<shift)
	return actual, nil
}

// SPI

func spiNum(id ClockID) int {
	if id >= PCLK_SPI0 && id <= PCLK_SPI4 {
		return int(id - PCLK_SPI0)
	}
	return int(id - CLK_SPI0)
}

func (c *Cru) spiGetRate(id ClockID) (uint64, error) {
	shift := uint32(2 + 2*spiNum(id))
	sel := (c.readl(clkselCon(59)) >> shift) & 0x3
	switch sel {
	case CLK_SPI_SEL_200M:
		return 200 * MHZ, nil
	case CLK_SPI_SEL_150M:
		return 150 * MHZ, nil
	case CLK_SPI_SEL_24M:
		return OSC_HZ, nil
	}
	return 0, errSource(id, sel)
}

func (c *Cru) spiSetRate(id ClockID, rate uint64) (uint64, error) {
	var sel uint32
	var actual uint64
	switch {
	case rate >= 198*MHZ:
		sel, actual = CLK_SPI_SEL_200M, 200*MHZ
	case rate >= 140*MHZ:
		sel, actual = CLK_SPI_SEL_150M, 150*MHZ
	default:
		sel, actual = CLK_SPI_SEL_24M, OSC_HZ
	}
	shift := uint32(2 + 2*spiNum(id))
	c.clrsetreg(clkselCon(59), 0x3<<shift, sel<<shift)
	return actual, nil
}

// PWM

func pwmSelReg(id ClockID) (uint32, uint32, bool) {
	switch id {
	case CLK_PWM1:
		return clkselCon(59), 12, true
	case CLK_PWM2:
		return clkselCon(59), 14, true
	case CLK_PWM3:
		return clkselCon(60), 0, true
	case CLK_PMU1PWM:
		return pmuClkselCon(2), CLK_PMU1PWM_SEL_SHIFT, true
	}
	return 0, 0, false
}

func (c *Cru) pwmGetRate(id ClockID) (uint64, error) {
	reg, shift, ok := pwmSelReg(id)
	if !ok {
		return 0, errUnsupported(id)
	}
	sel := (c.readl(reg) >> shift) & 0x3
	switch sel {
	case CLK_PWM_SEL_100M:
		return 100 * MHZ, nil
	case CLK_PWM_SEL_50M:
		return 50 * MHZ, nil
	case CLK_PWM_SEL_24M:
		return OSC_HZ, nil
	}
	return 0, errSource(id, sel)
}

func (c *Cru) pwmSetRate(id ClockID, rate uint64) (uint64, error) {
	reg, shift, ok := pwmSelReg(id)
	if !ok {
		return 0, errUnsupported(id)
	}
	var sel uint32
	var actual uint64
	switch {
	case rate >= 99*MHZ:
		sel, actual = CLK_PWM_SEL_100M, 100*MHZ
	case rate >= 50*MHZ:
		sel, actual = CLK_PWM_SEL_50M, 50*MHZ
	default:
		sel, actual = CLK_PWM_SEL_24M, OSC_HZ
	}
	c.clrsetreg(reg, 0x3<<shift, sel<<shift)
	return actual, nil
}

// ADC

func (c *Cru) adcGetRate(id ClockID) (uint64, error) {
	switch id {
	case CLK_SARADC:
		con := c.readl(clkselCon(40))
		src := c.gpllHz
		if con&CLK_SARADC_SEL_MASK != 0 {
			src = OSC_HZ
		}
		div := (con & CLK_SARADC_DIV_MASK) >> CLK_SARADC_DIV_SHIFT
		return src / uint64(div+1), nil
	case CLK_TSADC:
		con := c.readl(clkselCon(41))
		src := uint64(100 * MHZ)
		if con&CLK_TSADC_SEL_MASK != 0 {
			src = OSC_HZ
		}
		div := (con & CLK_TSADC_DIV_MASK) >> CLK_TSADC_DIV_SHIFT
		return src / uint64(div+1), nil
	}
	return 0, errUnsupported(id)
}

func (c *Cru) adcSetRate(id ClockID, rate uint64) (uint64, error) {
	if rate == 0 {
		return 0, errInvalidRate(id, rate)
	}
	switch id {
	case CLK_SARADC:
		// Prefer the crystal when it divides evenly, else divide
		// down GPLL.
		var sel, div uint32
		var src uint64
		if OSC_HZ%rate == 0 {
			sel = 1
			src = OSC_HZ
		} else {
			sel = 0
			src = c.gpllHz
		}
		div = uint32(src / rate)
		if div == 0 || div-1 > CLK_SARADC_DIV_MASK>>CLK_SARADC_DIV_SHIFT {
			return 0, errDivider(id, div)
		}
		c.clrsetreg(clkselCon(40), CLK_SARADC_SEL_MASK|CLK_SARADC_DIV_MASK,
			sel<<CLK_SARADC_SEL_SHIFT|(div-1)<<CLK_SARADC_DIV_SHIFT)
		return src / uint64(div), nil
	case CLK_TSADC:
		var sel, div uint32
		var src uint64
		if OSC_HZ%rate == 0 {
			sel = 1
			src = OSC_HZ
		} else {
			sel = 0
			src = 100 * MHZ
		}
		div = uint32(src / rate)
		if div == 0 || div-1 > CLK_TSADC_DIV_MASK>>CLK_TSADC_DIV_SHIFT {
			return 0, errDivider(id, div)
		}
		c.clrsetreg(clkselCon(41), CLK_TSADC_SEL_MASK|CLK_TSADC_DIV_MASK,
			sel<<CLK_TSADC_SEL_SHIFT|(div-1)<<CLK_TSADC_DIV_SHIFT)
		return src / uint64(div), nil
	}
	return 0, errUnsupported(id)
}

// UART

// uartConReg returns the clksel register index holding the source
// divider for a serial clock. The fractional pair sits one register up
// and the output mux two up.
func uartConReg(id ClockID) (uint32, bool) {
	if id >= SCLK_UART0 && id <= SCLK_UART3 {
		return 41 + 2*uint32(id-SCLK_UART0), true
	}
	return 0, false
}

func (c *Cru) uartGetRate(id ClockID) (uint64, error) {
	reg, ok := uartConReg(id)
	if !ok {
		return 0, errUnsupported(id)
	}
	sel := c.readl(clkselCon(reg+2)) & CLK_UART_SEL_MASK
	if sel == CLK_UART_SEL_XIN24M {
		return OSC_HZ, nil
	}

	con := c.readl(clkselCon(reg))
	p := c.gpllHz
	if con&CLK_UART_SRC_SEL_MASK != 0 {
		p = c.cpllHz
	}
	div := (con & CLK_UART_SRC_DIV_MASK) >> CLK_UART_SRC_DIV_SHIFT
	src := p / uint64(div+1)

	switch sel {
	case CLK_UART_SEL_SRC:
		return src, nil
	case CLK_UART_SEL_FRAC:
		frac := c.readl(clkselCon(reg + 1))
		n := uint64(frac >> CLK_UART_FRAC_NUMERATOR_SHIFT)
		m := uint64(frac & CLK_UART_FRAC_MASK)
		if m == 0 {
			return 0, errRateRead(id, "fractional divider denominator is zero")
		}
		return src * n / m, nil
	}
	return 0, errSource(id, sel)
}

func (c *Cru) uartSetRate(id ClockID, rate uint64) (uint64, error) {
	reg, ok := uartConReg(id)
	if !ok {
		return 0, errUnsupported(id)
	}
	if rate == 0 {
		return 0, errInvalidRate(id, rate)
	}

	var pSel, uartSel, div uint32
	switch {
	case c.gpllHz%rate == 0:
		pSel, uartSel = 0, CLK_UART_SEL_SRC
		div = uint32(c.gpllHz / rate)
	case c.cpllHz%rate == 0:
		pSel, uartSel = 1, CLK_UART_SEL_SRC
		div = uint32(c.cpllHz / rate)
	case rate == OSC_HZ:
		pSel, uartSel = 0, CLK_UART_SEL_XIN24M
		div = 2
	default:
		pSel, uartSel = 0, CLK_UART_SEL_FRAC
		div = 2
	}
	if div == 0 || div-1 > CLK_UART_SRC_DIV_MASK>>CLK_UART_SRC_DIV_SHIFT {
		return 0, errDivider(id, div)
	}

	c.clrsetreg(clkselCon(reg), CLK_UART_SRC_SEL_MASK|CLK_UART_SRC_DIV_MASK,
		pSel<<CLK_UART_SRC_SEL_SHIFT|(div-1)<<CLK_UART_SRC_DIV_SHIFT)

	if uartSel == CLK_UART_SEL_FRAC {
		// Fractional registers have no write mask; the whole word
		// is the n/m pair.
		src := c.gpllHz / uint64(div)
		n, m := fracApprox(rate, src, 0xffff)
		if n == 0 || m == 0 {
			return 0, errInvalidRate(id, rate)
		}
		c.io.Write32(clkselCon(reg+1), n<<CLK_UART_FRAC_NUMERATOR_SHIFT|m)
	}

	c.clrsetreg(clkselCon(reg+2), CLK_UART_SEL_MASK, uartSel)
	return c.uartGetRate(id)
}

// fracApprox finds n/m ~= rate/parent with both parts bounded, by
// walking the continued-fraction expansion.
func fracApprox(rate, parent uint64, max uint32) (uint32, uint32) {
	var n0, m0, n1, m1 uint64 = 0, 1, 1, 0
	a, b := rate, parent
	for b != 0 {
		q := a / b
		a, b = b, a%b
		n2 := q*n1 + n0
		m2 := q*m1 + m0
		if n2 > uint64(max) || m2 > uint64(max) {
			break
		}
		n0, m0, n1, m1 = n1, m1, n2, m2
	}
	return uint32(n1), uint32(m1)
}

// MMC / SFC and USB composites

// compositeClk describes a mux-plus-divider output. divMask of zero
// means the mux has no divider stage.
type compositeClk struct {
	con      uint32
	selShift uint32
	selMask  uint32
	divShift uint32
	divMask  uint32
	parents  []parentSrc
}

var compositeClks = map[ClockID]compositeClk{
	CCLK_EMMC: {77, CCLK_EMMC_SEL_SHIFT, CCLK_EMMC_SEL_MASK,
		CCLK_EMMC_DIV_SHIFT, CCLK_EMMC_DIV_MASK,
		[]parentSrc{srcGPLL, srcCPLL, srcOSC}},
	BCLK_EMMC: {78, BCLK_EMMC_SEL_SHIFT, BCLK_EMMC_SEL_MASK,
		BCLK_EMMC_DIV_SHIFT, BCLK_EMMC_DIV_MASK,
		[]parentSrc{srcGPLL, srcCPLL}},
	CCLK_SRC_SDIO: {172, CCLK_SDIO_SRC_SEL_SHIFT, CCLK_SDIO_SRC_SEL_MASK,
		CCLK_SDIO_SRC_DIV_SHIFT, CCLK_SDIO_SRC_DIV_MASK,
		[]parentSrc{srcGPLL, srcCPLL, srcOSC}},
	SCLK_SFC: {78, SCLK_SFC_SEL_SHIFT, SCLK_SFC_SEL_MASK,
		SCLK_SFC_DIV_SHIFT, SCLK_SFC_DIV_MASK,
		[]parentSrc{srcGPLL, srcCPLL, srcOSC}},

	ACLK_USB_ROOT: {96, ACLK_USB_ROOT_SEL_SHIFT, ACLK_USB_ROOT_SEL_MASK,
		ACLK_USB_ROOT_DIV_SHIFT, ACLK_USB_ROOT_DIV_MASK,
		[]parentSrc{srcGPLL, srcCPLL}},
	HCLK_USB_ROOT: {96, HCLK_USB_ROOT_SEL_SHIFT, HCLK_USB_ROOT_SEL_MASK,
		0, 0,
		[]parentSrc{src150M, src100M, src50M, srcOSC}},
	CLK_UTMI_OTG2: {84, CLK_UTMI_OTG2_SEL_SHIFT, CLK_UTMI_OTG2_SEL_MASK,
		CLK_UTMI_OTG2_DIV_SHIFT, CLK_UTMI_OTG2_DIV_MASK,
		[]parentSrc{src150M, src50M, srcOSC}},
}

func (c *Cru) compositeGetRate(id ClockID) (uint64, error) {
	cc, ok := compositeClks[id]
	if !ok {
		return 0, errUnsupported(id)
	}
	con := c.readl(clkselCon(cc.con))
	sel := (con & cc.selMask) >> cc.selShift
	if int(sel) >= len(cc.parents) {
		return 0, errSource(id, sel)
	}
	parent := c.parentRate(cc.parents[sel])
	if cc.divMask == 0 {
		return parent, nil
	}
	div := (con & cc.divMask) >> cc.divShift
	return parent / uint64(div+1), nil
}

// compositeSetRate tries every parent, picking the divider that lands
// closest to the requested rate.
func (c *Cru) compositeSetRate(id ClockID, rate uint64) (uint64, error) {
	cc, ok := compositeClks[id]
	if !ok {
		return 0, errUnsupported(id)
	}
	if rate == 0 {
		return 0, errInvalidRate(id, rate)
	}
	if cc.divMask == 0 {
		return 0, errUnsupported(id)
	}

	maxDiv := uint64(cc.divMask>>cc.divShift) + 1
	bestErr := ^uint64(0)
	var bestSel, bestDiv uint32
	var bestRate uint64
	for i, p := range cc.parents {
		parent := c.parentRate(p)
		div := (parent + rate/2) / rate
		if div < 1 {
			div = 1
		}
		if div > maxDiv {
			div = maxDiv
		}
		actual := parent / div
		var e uint64
		if actual > rate {
			e = actual - rate
		} else {
			e = rate - actual
		}
		if e < bestErr {
			bestErr = e
			bestSel = uint32(i)
			bestDiv = uint32(div)
			bestRate = actual
		}
	}
	c.clrsetreg(clkselCon(cc.con), cc.selMask|cc.divMask,
		bestSel<<cc.selShift|(bestDiv-1)<<cc.divShift)
	return bestRate, nil
}

func (c *Cru) mmcGetRate(id ClockID) (uint64, error) {
	return c.compositeGetRate(id)
}

func (c *Cru) mmcSetRate(id ClockID, rate uint64) (uint64, error) {
	return c.compositeSetRate(id, rate)
}

func (c *Cru) usbGetRate(id ClockID) (uint64, error) {
	return c.compositeGetRate(id)
}

func (c *Cru) usbSetRate(id ClockID, rate uint64) (uint64, error) {
	return c.compositeSetRate(id, rate)
}

// Root clocks

func (c *Cru) rootGetRate(id ClockID) (uint64, error) {
	switch id {
	case ACLK_BUS_ROOT:
		div := (c.readl(clkselCon(38)) & ACLK_BUS_ROOT_DIV_MASK) >> ACLK_BUS_ROOT_DIV_SHIFT
		return c.gpllHz / uint64(div+1), nil
	case ACLK_TOP_ROOT, ACLK_LOW_TOP_ROOT:
		return 200 * MHZ, nil
	case PCLK_TOP_ROOT:
		return 100 * MHZ, nil
	case ACLK_CENTER_ROOT, PCLK_CENTER_ROOT, HCLK_CENTER_ROOT, ACLK_CENTER_LOW_ROOT:
		return c.gpllHz / 2, nil
	}
	return OSC_HZ, nil
}

// The bus roots are set up by the boot loader and verified by Init;
// reclocking them at runtime is not supported.
func (c *Cru) rootSetRate(id ClockID, rate uint64) (uint64, error) {
	return 0, errInvalidRate(id, rate)
}
