// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pl011

// Register byte offsets from the base of the PL011 register block.
// The layout is fixed by the PL011 TRM and must never be reordered.
// Registers are 32 bit cells with a narrower effective width; the
// interrupt and DMA registers are modelled here but the polling
// transfer engine never reads them.
const (
	rDR    = 0x000 // Data (RW)
	rRSR   = 0x004 // Receive status (R) / error clear (W)
	rFR    = 0x018 // Flags (RO)
	rILPR  = 0x020 // IrDA low-power counter (RW)
	rIBRD  = 0x024 // Integer baud rate divisor (RW)
	rFBRD  = 0x028 // Fractional baud rate divisor (RW)
	rLCRH  = 0x02C // Line control (RW)
	rCR    = 0x030 // Control (RW)
	rIFLS  = 0x034 // Interrupt FIFO level select (RW)
	rIMSC  = 0x038 // Interrupt mask set/clear (RW)
	rRIS   = 0x03C // Raw interrupt status (RO)
	rMIS   = 0x040 // Masked interrupt status (RO)
	rICR   = 0x044 // Interrupt clear (WO)
	rDMACR = 0x048 // DMA control (RW)

	// Size of the register block mapped by Open.
	regSize = 0x04C
)

// Flag register bits.
const (
	frCTS  = 1 << 0 // Clear to send
	frDSR  = 1 << 1 // Data set ready
	frDCD  = 1 << 2 // Data carrier detect
	frBUSY = 1 << 3 // UART busy transmitting data
	frRXFE = 1 << 4 // Receive FIFO empty
	frTXFF = 1 << 5 // Transmit FIFO full
	frRXFF = 1 << 6 // Receive FIFO full
	frTXFE = 1 << 7 // Transmit FIFO empty
	frRI   = 1 << 8 // Ring indicator
)

// Receive status register bits.
const (
	rsrFE = 1 << 0 // Framing error
	rsrPE = 1 << 1 // Parity error
	rsrBE = 1 << 2 // Break error
	rsrOE = 1 << 3 // Overrun error
)

// Line control register bits.
const (
	lcrBRK   = 1 << 0 // Send break
	lcrPEN   = 1 << 1 // Parity enable
	lcrEPS   = 1 << 2 // Even parity select
	lcrSTP2  = 1 << 3 // Two stop bits select
	lcrFEN   = 1 << 4 // Enable FIFOs
	lcrWLEN8 = 3 << 5 // 8 bit word length
	lcrSPS   = 1 << 7 // Stick parity select
)

// Control register bits.
const (
	crUARTEN = 1 << 0  // UART enable
	crSIREN  = 1 << 1  // SIR enable
	crSIRLP  = 1 << 2  // SIR low power mode
	crLBE    = 1 << 7  // Loopback enable
	crTXE    = 1 << 8  // Transmit enable
	crRXE    = 1 << 9  // Receive enable
	crRTS    = 1 << 11 // Request to send
	crRTSEn  = 1 << 14 // RTS hardware flow control enable
	crCTSEn  = 1 << 15 // CTS hardware flow control enable
)

// icrAll clears every PL011 interrupt source when written to rICR.
const icrAll = 0x7FF
