package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/drivercraft/rockchip-soc/cru"
	"github.com/drivercraft/rockchip-soc/mmio"
)

var cruBase = flag.Int64("crubase", 0xfd7c0000, "The physical base address of the CRU register block")
var cruSize = flag.Int("crusize", 0x60000, "The size of the CRU register window to map")
var grfBase = flag.Int64("grfbase", 0xfd58c000, "The physical base address of the sys-GRF register block")
var grfSize = flag.Int("grfsize", 0x1000, "The size of the sys-GRF register window to map")
var initCru = flag.Bool("init", false, "Verify boot-time clock configuration and reprogram PPLL if needed")

var plls = []struct {
	name string
	id   cru.ClockID
}{
	{"b0pll", cru.PLL_B0PLL},
	{"b1pll", cru.PLL_B1PLL},
	{"lpll", cru.PLL_LPLL},
	{"v0pll", cru.PLL_V0PLL},
	{"aupll", cru.PLL_AUPLL},
	{"cpll", cru.PLL_CPLL},
	{"gpll", cru.PLL_GPLL},
	{"npll", cru.PLL_NPLL},
	{"ppll", cru.PLL_PPLL},
}

var clocks = []struct {
	name string
	id   cru.ClockID
}{
	{"aclk_bus_root", cru.ACLK_BUS_ROOT},
	{"clk_i2c1", cru.CLK_I2C1},
	{"sclk_uart1", cru.SCLK_UART1},
	{"clk_spi0", cru.CLK_SPI0},
	{"clk_pwm1", cru.CLK_PWM1},
	{"clk_saradc", cru.CLK_SARADC},
	{"clk_tsadc", cru.CLK_TSADC},
	{"cclk_emmc", cru.CCLK_EMMC},
	{"sclk_sfc", cru.SCLK_SFC},
	{"aclk_usb_root", cru.ACLK_USB_ROOT},
}

func main() {
	flag.Parse()

	mem, err := mmio.Open(*cruBase, *cruSize)
	if err != nil {
		log.Fatalf("Failed mapping CRU window: %v", err)
	}
	defer mem.Close()

	grf, err := mmio.Open(*grfBase, *grfSize)
	if err != nil {
		log.Fatalf("Failed mapping sys-GRF window: %v", err)
	}
	defer grf.Close()

	c := cru.New(mem, grf)
	if *initCru {
		if err := c.Init(); err != nil {
			log.Fatalf("Failed initializing CRU: %v", err)
		}
	}

	for _, p := range plls {
		rate, err := c.GetRate(p.id)
		if err != nil {
			log.Printf("Failed reading %s: %v", p.name, err)
			continue
		}
		fmt.Printf("%-14s %12d Hz\n", p.name, rate)
	}
	for _, cl := range clocks {
		rate, err := c.GetRate(cl.id)
		if err != nil {
			log.Printf("Failed reading %s: %v", cl.name, err)
			continue
		}
		state := ""
		if on, err := c.IsEnabled(cl.id); err == nil {
			if on {
				state = "on"
			} else {
				state = "gated"
			}
		}
		fmt.Printf("%-14s %12d Hz %s\n", cl.name, rate, state)
	}
}
