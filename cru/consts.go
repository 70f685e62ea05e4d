package cru

// Frequency constants.
const (
	KHZ = 1_000
	MHZ = 1_000_000

	OSC_HZ = 24 * MHZ

	// Rate the PLLs output in deep-slow mode (the 32kHz always-on
	// oscillator).
	DEEP_SLOW_HZ = 32768

	LPLL_HZ = 816 * MHZ
	GPLL_HZ = 1188 * MHZ
	CPLL_HZ = 1500 * MHZ
	NPLL_HZ = 850 * MHZ
	PPLL_HZ = 1100 * MHZ
)

// CRU sub-block base offsets within the mapped window.
const (
	PHP_CRU_BASE      = 0x8000
	PMU_CRU_BASE      = 0x30000
	BIGCORE0_CRU_BASE = 0x50000
	BIGCORE1_CRU_BASE = 0x52000
	DSU_CRU_BASE      = 0x58000

	MODE_CON0 = 0x280

	CLKSEL_CON_OFFSET  = 0x300
	CLKGATE_CON_OFFSET = 0x800
	SOFTRST_CON_OFFSET = 0xa00

	B0_PLL_MODE_CON = BIGCORE0_CRU_BASE + 0x280
	B1_PLL_MODE_CON = BIGCORE1_CRU_BASE + 0x280
	LPLL_MODE_CON   = DSU_CRU_BASE + 0x280
)

// Global reset registers.
const (
	GLB_CNT_TH   = 0xc00
	GLB_RST_ST   = 0xc04
	GLB_SRST_FST = 0xc08
	GLB_SRST_SND = 0xc0c
	GLB_RST_CON  = 0xc10

	// Trigger values the hardware expects in GLB_SRST_FST/SND.
	GLB_SRST_FST_VALUE = 0xfdb9
	GLB_SRST_SND_VALUE = 0xeca8
)

// SDIO/SDMMC tuning registers.
const (
	SDIO_CON0  = 0xc24
	SDIO_CON1  = 0xc28
	SDMMC_CON0 = 0xc30
	SDMMC_CON1 = 0xc34
)

// Main CRU register banks.

func pllCon(x uint32) uint32 {
	return x * 4
}

func clkselCon(x uint32) uint32 {
	return x*4 + CLKSEL_CON_OFFSET
}

func clkgateCon(x uint32) uint32 {
	return x*4 + CLKGATE_CON_OFFSET
}

func softrstCon(x uint32) uint32 {
	return x*4 + SOFTRST_CON_OFFSET
}

// PMU CRU register banks. The PLL block for the PMU domain sits in the
// PHP region, everything else under PMU_CRU_BASE.

func pmuPllCon(x uint32) uint32 {
	return x*4 + PHP_CRU_BASE
}

func pmuClkselCon(x uint32) uint32 {
	return x*4 + PMU_CRU_BASE + CLKSEL_CON_OFFSET
}

func pmuClkgateCon(x uint32) uint32 {
	return x*4 + PMU_CRU_BASE + CLKGATE_CON_OFFSET
}

func pmuSoftrstCon(x uint32) uint32 {
	return x*4 + PMU_CRU_BASE + SOFTRST_CON_OFFSET
}

// Big-core and DSU PLL banks.

func b0PllCon(x uint32) uint32 {
	return x*4 + BIGCORE0_CRU_BASE
}

func b1PllCon(x uint32) uint32 {
	return x*4 + BIGCORE1_CRU_BASE
}

func lpllCon(x uint32) uint32 {
	return x*4 + DSU_CRU_BASE
}

// PLL mode values (2-bit field per PLL in the mode register).
const (
	PLL_MODE_SLOW   = 0
	PLL_MODE_NORMAL = 1
	PLL_MODE_DEEP   = 2

	PLL_MODE_MASK = 0x3
)

// PLLCON0: M (main divider), 10 bits.
const (
	PLLCON0_M_SHIFT = 0
	PLLCON0_M_MASK  = 0x3ff << PLLCON0_M_SHIFT
)

// PLLCON1: P (pre-divider) 6 bits, S (post-divider exponent) 3 bits,
// power-down control.
const (
	PLLCON1_P_SHIFT = 0
	PLLCON1_P_MASK  = 0x3f << PLLCON1_P_SHIFT

	PLLCON1_S_SHIFT = 6
	PLLCON1_S_MASK  = 0x7 << PLLCON1_S_SHIFT

	PLLCON1_PWRDOWN = 1 << 13
)

// PLLCON2: K (fractional divider), 16 bits over a fixed 65536
// denominator.
const (
	PLLCON2_K_SHIFT = 0
	PLLCON2_K_MASK  = 0xffff << PLLCON2_K_SHIFT
)

// PLLCON6: lock status.
const PLLCON6_LOCK_STATUS = 1 << 15

// clksel_con[38]: I2C selectors and ACLK_BUS_ROOT.
const (
	ACLK_BUS_ROOT_SEL_SHIFT = 5
	ACLK_BUS_ROOT_SEL_MASK  = 0x3 << ACLK_BUS_ROOT_SEL_SHIFT
	ACLK_BUS_ROOT_SEL_GPLL  = 0

	ACLK_BUS_ROOT_DIV_SHIFT = 0
	ACLK_BUS_ROOT_DIV_MASK  = 0x1f << ACLK_BUS_ROOT_DIV_SHIFT
)

// clksel_con[9]: top-level source selects.
const (
	ACLK_TOP_S400_SEL_SHIFT = 8
	ACLK_TOP_S400_SEL_MASK  = 0x3 << ACLK_TOP_S400_SEL_SHIFT
	ACLK_TOP_S400_SEL_400M  = 0

	ACLK_TOP_S200_SEL_SHIFT = 6
	ACLK_TOP_S200_SEL_MASK  = 0x3 << ACLK_TOP_S200_SEL_SHIFT
	ACLK_TOP_S200_SEL_200M  = 0
)

// I2C source select: one bit per instance, 0 = 200MHz, 1 = 100MHz.
const (
	CLK_I2C_SEL_200M = 0
	CLK_I2C_SEL_100M = 1
)

// SPI source select (clksel_con[59], 2 bits per instance).
const (
	CLK_SPI_SEL_200M = 0
	CLK_SPI_SEL_150M = 1
	CLK_SPI_SEL_24M  = 2
)

// PWM source select (clksel_con[59]/[60]/pmu_clksel_con[2]).
const (
	CLK_PWM_SEL_100M = 0
	CLK_PWM_SEL_50M  = 1
	CLK_PWM_SEL_24M  = 2
)

// SARADC (clksel_con[40]): sel bit 14 (0=GPLL, 1=24M), div bits 6-13.
const (
	CLK_SARADC_SEL_SHIFT = 14
	CLK_SARADC_SEL_MASK  = 1 << CLK_SARADC_SEL_SHIFT

	CLK_SARADC_DIV_SHIFT = 6
	CLK_SARADC_DIV_MASK  = 0xff << CLK_SARADC_DIV_SHIFT
)

// TSADC (clksel_con[41]): sel bit 8 (0=100M, 1=24M), div bits 0-7.
const (
	CLK_TSADC_SEL_SHIFT = 8
	CLK_TSADC_SEL_MASK  = 1 << CLK_TSADC_SEL_SHIFT

	CLK_TSADC_DIV_SHIFT = 0
	CLK_TSADC_DIV_MASK  = 0xff << CLK_TSADC_DIV_SHIFT
)

// UART source (clksel_con[41+2n]): p-source bit 14 (0=GPLL, 1=CPLL),
// div bits 9-13. The per-UART output select lives two registers up and
// the fractional n/m pair one register up.
const (
	CLK_UART_SRC_SEL_SHIFT = 14
	CLK_UART_SRC_SEL_MASK  = 1 << CLK_UART_SRC_SEL_SHIFT

	CLK_UART_SRC_DIV_SHIFT = 9
	CLK_UART_SRC_DIV_MASK  = 0x1f << CLK_UART_SRC_DIV_SHIFT

	CLK_UART_FRAC_NUMERATOR_SHIFT   = 16
	CLK_UART_FRAC_DENOMINATOR_SHIFT = 0
	CLK_UART_FRAC_MASK              = 0xffff

	CLK_UART_SEL_MASK   = 0x3
	CLK_UART_SEL_SRC    = 0
	CLK_UART_SEL_FRAC   = 1
	CLK_UART_SEL_XIN24M = 2
)

// EMMC card clock (clksel_con[77]): sel bits 14-15, div bits 8-13.
const (
	CCLK_EMMC_SEL_SHIFT = 14
	CCLK_EMMC_SEL_MASK  = 0x3 << CCLK_EMMC_SEL_SHIFT
	CCLK_EMMC_SEL_GPLL  = 0
	CCLK_EMMC_SEL_CPLL  = 1
	CCLK_EMMC_SEL_24M   = 2

	CCLK_EMMC_DIV_SHIFT = 8
	CCLK_EMMC_DIV_MASK  = 0x3f << CCLK_EMMC_DIV_SHIFT
)

// SFC and EMMC bus clocks (clksel_con[78]).
const (
	SCLK_SFC_SEL_SHIFT = 12
	SCLK_SFC_SEL_MASK  = 0x3 << SCLK_SFC_SEL_SHIFT
	SCLK_SFC_SEL_GPLL  = 0
	SCLK_SFC_SEL_CPLL  = 1
	SCLK_SFC_SEL_24M   = 2

	SCLK_SFC_DIV_SHIFT = 6
	SCLK_SFC_DIV_MASK  = 0x3f << SCLK_SFC_DIV_SHIFT

	BCLK_EMMC_SEL_SHIFT = 5
	BCLK_EMMC_SEL_MASK  = 1 << BCLK_EMMC_SEL_SHIFT
	BCLK_EMMC_SEL_GPLL  = 0
	BCLK_EMMC_SEL_CPLL  = 1

	BCLK_EMMC_DIV_SHIFT = 0
	BCLK_EMMC_DIV_MASK  = 0x1f << BCLK_EMMC_DIV_SHIFT
)

// SDIO source clock (clksel_con[172]): sel bits 8-9, div bits 2-7.
const (
	CCLK_SDIO_SRC_SEL_SHIFT = 8
	CCLK_SDIO_SRC_SEL_MASK  = 0x3 << CCLK_SDIO_SRC_SEL_SHIFT
	CCLK_SDIO_SRC_SEL_GPLL  = 0
	CCLK_SDIO_SRC_SEL_CPLL  = 1
	CCLK_SDIO_SRC_SEL_24M   = 2

	CCLK_SDIO_SRC_DIV_SHIFT = 2
	CCLK_SDIO_SRC_DIV_MASK  = 0x3f << CCLK_SDIO_SRC_DIV_SHIFT
)

// USB root clocks (clksel_con[96]).
const (
	ACLK_USB_ROOT_SEL_SHIFT = 5
	ACLK_USB_ROOT_SEL_MASK  = 1 << ACLK_USB_ROOT_SEL_SHIFT
	ACLK_USB_ROOT_SEL_GPLL  = 0
	ACLK_USB_ROOT_SEL_CPLL  = 1

	ACLK_USB_ROOT_DIV_SHIFT = 0
	ACLK_USB_ROOT_DIV_MASK  = 0x1f << ACLK_USB_ROOT_DIV_SHIFT

	HCLK_USB_ROOT_SEL_SHIFT = 6
	HCLK_USB_ROOT_SEL_MASK  = 0x3 << HCLK_USB_ROOT_SEL_SHIFT
)

// UTMI clock for OTG2 (clksel_con[84]): sel bits 12-13, div bits 8-11.
const (
	CLK_UTMI_OTG2_SEL_SHIFT = 12
	CLK_UTMI_OTG2_SEL_MASK  = 0x3 << CLK_UTMI_OTG2_SEL_SHIFT
	CLK_UTMI_OTG2_SEL_150M  = 0
	CLK_UTMI_OTG2_SEL_50M   = 1
	CLK_UTMI_OTG2_SEL_24M   = 2

	CLK_UTMI_OTG2_DIV_SHIFT = 8
	CLK_UTMI_OTG2_DIV_MASK  = 0xf << CLK_UTMI_OTG2_DIV_SHIFT
)

// PMU1PWM select (pmu_clksel_con[2]) and I2C0 select
// (pmu_clksel_con[3]).
const (
	CLK_PMU1PWM_SEL_SHIFT = 9
	CLK_PMU1PWM_SEL_MASK  = 0x3 << CLK_PMU1PWM_SEL_SHIFT

	CLK_I2C0_SEL_SHIFT = 6
	CLK_I2C0_SEL_MASK  = 1 << CLK_I2C0_SEL_SHIFT
)
