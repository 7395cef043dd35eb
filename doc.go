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

/*

Package pl011 is a driver for the Arm PrimeCell PL011 UART
(https://developer.arm.com/documentation/ddi0183/latest/), the
memory-mapped serial port found on many Arm based systems, including
the QEMU virt machine and several Raspberry Pi models.

The driver is a thin, polling-only view over the hardware registers.
Configure programs the baud rate generator and enables the port with
8-N-1 framing and hardware FIFOs; the byte level read and write calls
busy-wait on the flag register before touching the data register.
There is no interrupt or DMA support, no buffering beyond the hardware
FIFOs, and no timeouts - blocking calls poll until the hardware is
ready. Any timeout or cancellation policy must be layered above the
driver, either by wrapping the blocking calls or by using the TxReady
and RxReady probes directly.

A driver may be bound to an already mapped register block with New
(bare-metal style), or to a physical address via a /dev/mem mapping
with Open (userspace, typically requires root). Exactly one driver
must own a given register block at a time; the driver itself performs
no locking, so concurrent callers must provide their own
synchronisation.

The UART implements io.Reader, io.Writer and io.StringWriter, so it
can be used directly as a sink for the fmt package:

	u, err := pl011.Open(0x09000000)
	if err != nil {
		log.Fatalf("%s", err)
	}
	u.Configure(24000000, 115200)
	fmt.Fprintf(u, "hello from %s\r\n", "pl011")
	u.Flush()

*/
package pl011
