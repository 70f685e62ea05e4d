package cru

import "fmt"

// ClockID identifies one clock output in the RK3588 numbering scheme.
// The values come from the vendor's rk3588-cru.h device-tree binding and
// must not be renumbered.
type ClockID uint32

func (id ClockID) Value() uint32 {
	return uint32(id)
}

func (id ClockID) String() string {
	return fmt.Sprintf("ClockID(%d)", uint32(id))
}

// ResetID identifies one software reset line. It decodes into a register
// bank (id/16) and bit offset (id%16).
type ResetID uint32

func (id ResetID) Value() uint32 {
	return uint32(id)
}

func (id ResetID) String() string {
	return fmt.Sprintf("ResetID(%#x)", uint32(id))
}

// PLL clock IDs.
const (
	PLL_B0PLL ClockID = 1
	PLL_B1PLL ClockID = 2
	PLL_LPLL  ClockID = 3
	PLL_V0PLL ClockID = 4
	PLL_AUPLL ClockID = 5
	PLL_CPLL  ClockID = 6
	PLL_GPLL  ClockID = 7
	PLL_NPLL  ClockID = 8
	PLL_PPLL  ClockID = 9
)

// I2C clock IDs.
const (
	CLK_I2C0 ClockID = 146
	CLK_I2C1 ClockID = 147
	CLK_I2C2 ClockID = 148
	CLK_I2C3 ClockID = 149
	CLK_I2C4 ClockID = 150
	CLK_I2C5 ClockID = 151
	CLK_I2C6 ClockID = 152
	CLK_I2C7 ClockID = 153
	CLK_I2C8 ClockID = 154

	PCLK_I2C0 ClockID = 620
	PCLK_I2C1 ClockID = 133
	PCLK_I2C2 ClockID = 134
	PCLK_I2C3 ClockID = 135
	PCLK_I2C4 ClockID = 136
	PCLK_I2C5 ClockID = 137
	PCLK_I2C6 ClockID = 138
	PCLK_I2C7 ClockID = 139
	PCLK_I2C8 ClockID = 140
)

// UART clock IDs.
const (
	CLK_UART0 ClockID = 622
	CLK_UART1 ClockID = 623
	CLK_UART2 ClockID = 624
	CLK_UART3 ClockID = 625
	CLK_UART4 ClockID = 626
	CLK_UART5 ClockID = 627
	CLK_UART6 ClockID = 628
	CLK_UART7 ClockID = 629
	CLK_UART8 ClockID = 630
	CLK_UART9 ClockID = 631

	PCLK_UART0 ClockID = 612
	PCLK_UART1 ClockID = 613
	PCLK_UART2 ClockID = 614
	PCLK_UART3 ClockID = 615
	PCLK_UART4 ClockID = 616
	PCLK_UART5 ClockID = 617
	PCLK_UART6 ClockID = 618
	PCLK_UART7 ClockID = 619
	PCLK_UART8 ClockID = 620
	PCLK_UART9 ClockID = 621

	SCLK_UART0 ClockID = 632
	SCLK_UART1 ClockID = 633
	SCLK_UART2 ClockID = 634
	SCLK_UART3 ClockID = 635
	SCLK_UART4 ClockID = 636
)

// SPI clock IDs.
const (
	CLK_SPI0 ClockID = 165
	CLK_SPI1 ClockID = 166
	CLK_SPI2 ClockID = 167
	CLK_SPI3 ClockID = 168
	CLK_SPI4 ClockID = 169

	PCLK_SPI0 ClockID = 155
	PCLK_SPI1 ClockID = 156
	PCLK_SPI2 ClockID = 157
	PCLK_SPI3 ClockID = 158
	PCLK_SPI4 ClockID = 159
)

// PWM clock IDs.
const (
	CLK_PWM1    ClockID = 84
	CLK_PWM2    ClockID = 87
	CLK_PWM3    ClockID = 90
	CLK_PMU1PWM ClockID = 646

	PCLK_PWM1 ClockID = 83
	PCLK_PWM2 ClockID = 86
	PCLK_PWM3 ClockID = 89

	PCLK_PMU1PWM        ClockID = 647
	CLK_PWM1_CAPTURE    ClockID = 85
	CLK_PWM2_CAPTURE    ClockID = 88
	CLK_PWM3_CAPTURE    ClockID = 91
	CLK_PMU1PWM_CAPTURE ClockID = 648
)

// ADC clock IDs.
const (
	CLK_SARADC  ClockID = 653
	CLK_TSADC   ClockID = 654
	PCLK_SARADC ClockID = 655
	PCLK_TSADC  ClockID = 656
)

// Bus/root clock IDs.
const (
	ACLK_BUS_ROOT        ClockID = 123
	ACLK_TOP_ROOT        ClockID = 652
	PCLK_TOP_ROOT        ClockID = 651
	ACLK_LOW_TOP_ROOT    ClockID = 650
	ACLK_CENTER_ROOT     ClockID = 649
	PCLK_CENTER_ROOT     ClockID = 644
	HCLK_CENTER_ROOT     ClockID = 645
	ACLK_CENTER_LOW_ROOT ClockID = 643
)

// MMC/eMMC/SDIO/SFC clock IDs.
const (
	CCLK_EMMC     ClockID = 660
	CCLK_SRC_SDIO ClockID = 661
	BCLK_EMMC     ClockID = 662
	SCLK_SFC      ClockID = 663
)

// USB clock IDs.
const (
	ACLK_USB_ROOT ClockID = 664
	HCLK_USB_ROOT ClockID = 665
	CLK_UTMI_OTG2 ClockID = 666
)

// isPLLClk reports whether id names one of the nine PLL outputs.
func isPLLClk(id ClockID) bool {
	return id >= 1 && id <= 9
}

func isI2CClk(id ClockID) bool {
	return (id >= 146 && id <= 154) || (id >= 133 && id <= 140)
}

func isUARTClk(id ClockID) bool {
	return (id >= 622 && id <= 631) || (id >= 612 && id <= 621) || (id >= 632 && id <= 636)
}

func isSPIClk(id ClockID) bool {
	return (id >= 165 && id <= 169) || (id >= 155 && id <= 159)
}

func isPWMClk(id ClockID) bool {
	switch id {
	case CLK_PWM1, CLK_PWM2, CLK_PWM3, CLK_PMU1PWM:
		return true
	}
	return false
}

func isADCClk(id ClockID) bool {
	return id == CLK_SARADC || id == CLK_TSADC
}

func isMMCClk(id ClockID) bool {
	return id >= CCLK_EMMC && id <= SCLK_SFC
}

func isUSBClk(id ClockID) bool {
	return id >= ACLK_USB_ROOT && id <= CLK_UTMI_OTG2
}

func isRootClk(id ClockID) bool {
	switch id {
	case ACLK_BUS_ROOT, ACLK_TOP_ROOT, PCLK_TOP_ROOT, ACLK_LOW_TOP_ROOT,
		ACLK_CENTER_ROOT, PCLK_CENTER_ROOT, HCLK_CENTER_ROOT, ACLK_CENTER_LOW_ROOT:
		return true
	}
	return false
}

// i2cNum returns the I2C instance number (0-8) for an I2C clock ID.
func i2cNum(id ClockID) (int, bool) {
	switch {
	case id >= 146 && id <= 154:
		return int(id - 146), true
	case id >= 133 && id <= 140:
		return int(id-133) + 1, true
	case id == PCLK_I2C0:
		return 0, true
	}
	return 0, false
}

// uartNum returns the UART instance number (0-9) for a UART clock ID.
func uartNum(id ClockID) (int, bool) {
	switch {
	case id >= 622 && id <= 631:
		return int(id - 622), true
	case id >= 612 && id <= 621:
		return int(id - 612), true
	case id >= 632 && id <= 636:
		return int(id - 632), true
	}
	return 0, false
}
