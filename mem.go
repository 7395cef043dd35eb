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

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Device path for physical memory access.
const drvMem = "/dev/mem"

// regio is the access seam between the driver and its register
// block. Every access is a single 32 bit load or store at a fixed
// offset, never batched or elided; each one has a hardware side
// effect (reading the data register pops a FIFO entry). Both
// production implementations go through sync/atomic so the polling
// loops always observe hardware-driven changes and the compiler
// never merges or reorders the accesses.
type regio interface {
	rd(offs uintptr) uint32
	wr(offs uintptr, v uint32)
}

// rawRegs accesses a register block that the caller has already
// mapped at a fixed address.
type rawRegs struct {
	base unsafe.Pointer
}

// rd reads one 32 bit register at the offset from the base address.
func (r rawRegs) rd(offs uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Add(r.base, offs)))
}

// wr writes one 32 bit register at the offset from the base address.
func (r rawRegs) wr(offs uintptr, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Add(r.base, offs)), v)
}

// mappedRegs accesses a register block mapped into the process
// through /dev/mem.
type mappedRegs struct {
	mmapFile *os.File
	mem      []byte // whole page mapping
	regs     []byte // register block within mem
}

func (m *mappedRegs) rd(offs uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&m.regs[offs])))
}

func (m *mappedRegs) wr(offs uintptr, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(&m.regs[offs])), v)
}

// openMapped maps the pages covering the register block at the
// physical address base.
func openMapped(base uintptr) (*mappedRegs, error) {
	f, err := os.OpenFile(drvMem, os.O_RDWR|os.O_SYNC, 0660)
	if err != nil {
		return nil, err
	}
	pg := uintptr(unix.Getpagesize())
	start := base &^ (pg - 1)
	size := (base + regSize - start + pg - 1) &^ (pg - 1)
	mem, err := unix.Mmap(int(f.Fd()), int64(start), int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %v", drvMem, err)
	}
	return &mappedRegs{mmapFile: f, mem: mem, regs: mem[base-start:]}, nil
}

func (m *mappedRegs) close() error {
	err := unix.Munmap(m.mem)
	if cerr := m.mmapFile.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open maps the PL011 register block at the given physical address
// through /dev/mem and returns a driver bound to the mapping. The
// caller must ensure the address really is the base of a PL011
// register block, and that no other driver instance owns it.
// Typically requires root.
func Open(base uintptr) (*UART, error) {
	m, err := openMapped(base)
	if err != nil {
		return nil, err
	}
	return &UART{regs: m}, nil
}

// Close releases the /dev/mem mapping made by Open. It is a no-op
// for a driver constructed with New. The hardware is left as-is;
// the PL011 has no defined deinitialisation.
func (u *UART) Close() error {
	if m, ok := u.regs.(*mappedRegs); ok {
		return m.close()
	}
	return nil
}
