// This file is part of eehw.
//
// eehw is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// eehw is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with eehw.  If not, see <https://www.gnu.org/licenses/>.

package addresses

import "fmt"

// Symbols indexes the canonical symbol of every named register by address.
var Symbols = map[uint32]string{
	RCNT0_COUNT:  "RCNT0_COUNT",
	RCNT0_MODE:   "RCNT0_MODE",
	RCNT0_TARGET: "RCNT0_TARGET",
	RCNT0_HOLD:   "RCNT0_HOLD",
	RCNT1_COUNT:  "RCNT1_COUNT",
	RCNT1_MODE:   "RCNT1_MODE",
	RCNT2_COUNT:  "RCNT2_COUNT",
	RCNT2_MODE:   "RCNT2_MODE",
	RCNT3_COUNT:  "RCNT3_COUNT",
	RCNT3_MODE:   "RCNT3_MODE",

	IPU_CMD:  "IPU_CMD",
	IPU_CTRL: "IPU_CTRL",
	IPU_BP:   "IPU_BP",
	IPU_TOP:  "IPU_TOP",

	GIF_CTRL:   "GIF_CTRL",
	GIF_MODE:   "GIF_MODE",
	GIF_STAT:   "GIF_STAT",
	VIF0_STAT:  "VIF0_STAT",
	VIF0_FBRST: "VIF0_FBRST",
	VIF1_STAT:  "VIF1_STAT",
	VIF1_FBRST: "VIF1_FBRST",

	VIF0_FIFO:   "VIF0_FIFO",
	VIF1_FIFO:   "VIF1_FIFO",
	GIF_FIFO:    "GIF_FIFO",
	IPUout_FIFO: "IPUout_FIFO",
	IPUin_FIFO:  "IPUin_FIFO",

	D0_CHCR: "D0_CHCR",
	D1_CHCR: "D1_CHCR",
	D2_CHCR: "D2_CHCR",
	D3_CHCR: "D3_CHCR",
	D4_CHCR: "D4_CHCR",
	D5_CHCR: "D5_CHCR",
	D6_CHCR: "D6_CHCR",
	D7_CHCR: "D7_CHCR",
	D8_CHCR: "D8_CHCR",
	D9_CHCR: "D9_CHCR",

	DMAC_CTRL:     "DMAC_CTRL",
	DMAC_STAT:     "DMAC_STAT",
	DMAC_PCR:      "DMAC_PCR",
	DMAC_SQWC:     "DMAC_SQWC",
	DMAC_RBSR:     "DMAC_RBSR",
	DMAC_RBOR:     "DMAC_RBOR",
	DMAC_STADR:    "DMAC_STADR",
	DMAC_FAKESTAT: "DMAC_FAKESTAT",

	INTC_STAT: "INTC_STAT",
	INTC_MASK: "INTC_MASK",

	SIO_LCR:    "SIO_LCR",
	SIO_LSR:    "SIO_LSR",
	SIO_IER:    "SIO_IER",
	SIO_ISR:    "SIO_ISR",
	SIO_FCR:    "SIO_FCR",
	SIO_BGR:    "SIO_BGR",
	SIO_TXFIFO: "SIO_TXFIFO",
	SIO_RXFIFO: "SIO_RXFIFO",

	SBUS_F200: "SBUS_F200",
	SBUS_F210: "SBUS_F210",
	SBUS_F220: "SBUS_F220",
	SBUS_F230: "SBUS_F230",
	SBUS_F240: "SBUS_F240",
	SBUS_F250: "SBUS_F250",
	SBUS_F260: "SBUS_F260",
	SBUS_F300: "SBUS_F300",
	SBUS_F380: "SBUS_F380",

	MCH_RICM: "MCH_RICM",
	MCH_DRD:  "MCH_DRD",

	DMAC_ENABLER: "DMAC_ENABLER",
	DMAC_ENABLEW: "DMAC_ENABLEW",
}

// Symbol returns the canonical symbol for the address. Addresses that are not
// named are returned as a hexadecimal string.
func Symbol(address uint32) string {
	if s, ok := Symbols[address]; ok {
		return s
	}
	return fmt.Sprintf("%08x", address)
}
