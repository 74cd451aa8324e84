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

// Timers.
const (
	RCNT0_COUNT  = uint32(0x10000000)
	RCNT0_MODE   = uint32(0x10000010)
	RCNT0_TARGET = uint32(0x10000020)
	RCNT0_HOLD   = uint32(0x10000030)
	RCNT1_COUNT  = uint32(0x10000800)
	RCNT1_MODE   = uint32(0x10000810)
	RCNT2_COUNT  = uint32(0x10001000)
	RCNT2_MODE   = uint32(0x10001010)
	RCNT3_COUNT  = uint32(0x10001800)
	RCNT3_MODE   = uint32(0x10001810)
)

// Image processing unit.
const (
	IPU_CMD  = uint32(0x10002000)
	IPU_CTRL = uint32(0x10002010)
	IPU_BP   = uint32(0x10002020)
	IPU_TOP  = uint32(0x10002030)
)

// Graphics interface and vector interface units.
const (
	GIF_CTRL = uint32(0x10003000)
	GIF_MODE = uint32(0x10003010)
	GIF_STAT = uint32(0x10003020)

	VIF0_STAT  = uint32(0x10003800)
	VIF0_FBRST = uint32(0x10003810)
	VIF1_STAT  = uint32(0x10003c00)
	VIF1_FBRST = uint32(0x10003c10)
)

// FIFO windows.
const (
	VIF0_FIFO   = uint32(0x10004000)
	VIF1_FIFO   = uint32(0x10005000)
	GIF_FIFO    = uint32(0x10006000)
	IPUout_FIFO = uint32(0x10007000)
	IPUin_FIFO  = uint32(0x10007010)
)

// DMA channel control registers.
const (
	D0_CHCR = uint32(0x10008000)
	D1_CHCR = uint32(0x10009000)
	D2_CHCR = uint32(0x1000a000)
	D3_CHCR = uint32(0x1000b000)
	D4_CHCR = uint32(0x1000b400)
	D5_CHCR = uint32(0x1000c000)
	D6_CHCR = uint32(0x1000c400)
	D7_CHCR = uint32(0x1000c800)
	D8_CHCR = uint32(0x1000d000)
	D9_CHCR = uint32(0x1000d400)
)

// CHCR_STR is the start bit of a DMA channel control register.
const CHCR_STR = uint32(0x100)

// DMA controller.
const (
	DMAC_CTRL     = uint32(0x1000e000)
	DMAC_STAT     = uint32(0x1000e010)
	DMAC_PCR      = uint32(0x1000e020)
	DMAC_SQWC     = uint32(0x1000e030)
	DMAC_RBSR     = uint32(0x1000e040)
	DMAC_RBOR     = uint32(0x1000e050)
	DMAC_STADR    = uint32(0x1000e060)
	DMAC_FAKESTAT = uint32(0x1000e100)
)

// Interrupt controller.
const (
	INTC_STAT = uint32(0x1000f000)
	INTC_MASK = uint32(0x1000f010)
)

// Serial port.
const (
	SIO_LCR    = uint32(0x1000f100)
	SIO_LSR    = uint32(0x1000f110)
	SIO_IER    = uint32(0x1000f120)
	SIO_ISR    = uint32(0x1000f130)
	SIO_FCR    = uint32(0x1000f140)
	SIO_BGR    = uint32(0x1000f150)
	SIO_TXFIFO = uint32(0x1000f180)
	SIO_RXFIFO = uint32(0x1000f1c0)
)

// Sub-bus.
const (
	SBUS_F200 = uint32(0x1000f200)
	SBUS_F210 = uint32(0x1000f210)
	SBUS_F220 = uint32(0x1000f220)
	SBUS_F230 = uint32(0x1000f230)
	SBUS_F240 = uint32(0x1000f240)
	SBUS_F250 = uint32(0x1000f250)
	SBUS_F260 = uint32(0x1000f260)
	SBUS_F300 = uint32(0x1000f300)
	SBUS_F380 = uint32(0x1000f380)
)

// Memory controller.
const (
	MCH_RICM = uint32(0x1000f430)
	MCH_DRD  = uint32(0x1000f440)
)

// DMA enable.
const (
	DMAC_ENABLER = uint32(0x1000f520)
	DMAC_ENABLEW = uint32(0x1000f590)
)

// Legacy co-processor status slots that are forced to fixed values when the
// legacy co-processor is reset through SBUS_F240.
const (
	LegacyStatus1450 = uint32(0x1f801450)
	LegacyStatus1078 = uint32(0x1f801078)
)
