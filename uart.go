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

import "unsafe"

// UART is a driver for a single PL011 device. It holds no mutable
// state of its own; all state lives in the hardware registers it is
// bound to, so a UART is just an owned handle over the register
// block. A UART must be the sole accessor of its register block -
// the driver performs no locking, and concurrent use from multiple
// goroutines or interrupt contexts requires external synchronisation.
type UART struct {
	regs regio
}

// New binds a driver to the PL011 register block at the given
// address.
//
// The address must point to the base of the memory-mapped control
// registers of a PL011 device, mapped into the address space of the
// caller as device memory, correctly aligned, and not aliased by any
// other live binding. None of this can be verified here; upholding
// it is entirely the caller's obligation.
func New(base unsafe.Pointer) *UART {
	return &UART{regs: rawRegs{base}}
}

// divisors splits the baud rate divisor clockHz/(16*baud) into the
// integer part for IBRD and the 6 bit fractional part for FBRD,
// rounded to nearest. A clock/baud pair yielding a zero integer
// divisor is a caller error the hardware cannot report; the
// resulting serial timing is unusable.
func divisors(clockHz, baud uint32) (ibrd uint16, fbrd uint8) {
	d := uint64(clockHz)
	b := 16 * uint64(baud)
	ibrd = uint16(d / b)
	fbrd = uint8((d%b*64+b/2)/b) & 0x3F
	return
}

// Configure programs the baud rate generator for the given reference
// clock and baud rate, and enables the UART for transmit and receive
// with 8-N-1 framing and the hardware FIFOs on. Both arguments must
// be positive; this is not checked, and the hardware gives no
// feedback that the configuration was applied. Call once after
// construction; calling again with the same arguments leaves the
// registers in the same state.
//
// The divisor registers are written while the UART is disabled, and
// the line control write that follows them is what latches the new
// divisor into the baud generator, so the write order here is fixed.
func (u *UART) Configure(clockHz, baud uint32) {
	u.regs.wr(rCR, 0)
	ibrd, fbrd := divisors(clockHz, baud)
	u.regs.wr(rIBRD, uint32(ibrd))
	u.regs.wr(rFBRD, uint32(fbrd))
	u.regs.wr(rLCRH, lcrFEN|lcrWLEN8)
	// Polling only: mask and clear all interrupt sources.
	u.regs.wr(rIMSC, 0)
	u.regs.wr(rICR, icrAll)
	u.regs.wr(rCR, crUARTEN|crTXE|crRXE)
}

// flags reads the flag register.
func (u *UART) flags() uint32 {
	return u.regs.rd(rFR)
}
