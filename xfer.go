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

// WriteByte writes one byte to the UART, busy-waiting until the
// transmit FIFO has room. It returns once the byte has been accepted
// into the FIFO, not once it has left the wire; use Flush for that.
func (u *UART) WriteByte(b byte) {
	for u.flags()&frTXFF != 0 {
	}
	u.regs.wr(rDR, uint32(b))
}

// ReadByte returns the next received byte, busy-waiting until one is
// available. There is no timeout; if nothing ever arrives, ReadByte
// never returns. Callers needing a bound should poll RxReady
// themselves and apply their own policy.
func (u *UART) ReadByte() byte {
	for u.flags()&frRXFE != 0 {
	}
	return byte(u.regs.rd(rDR))
}

// TxReady reports whether the transmit FIFO can accept a byte, i.e.
// whether WriteByte would return without blocking.
func (u *UART) TxReady() bool {
	return u.flags()&frTXFF == 0
}

// RxReady reports whether a received byte is pending, i.e. whether
// ReadByte would return without blocking.
func (u *UART) RxReady() bool {
	return u.flags()&frRXFE == 0
}

// Flush busy-waits until the transmit FIFO has drained and the last
// byte has left the wire.
func (u *UART) Flush() {
	for f := u.flags(); f&frTXFE == 0 || f&frBUSY != 0; f = u.flags() {
	}
}

// Write writes every byte of p in order, blocking on the transmit
// FIFO as needed. It implements io.Writer so the UART can be used as
// a sink for fmt.Fprintf and friends; the returned error is always
// nil.
func (u *UART) Write(p []byte) (int, error) {
	for _, b := range p {
		u.WriteByte(b)
	}
	return len(p), nil
}

// WriteString writes every byte of s in order. It implements
// io.StringWriter; the returned error is always nil.
func (u *UART) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		u.WriteByte(s[i])
	}
	return len(s), nil
}

// Read blocks until at least one byte has been received, then fills
// p with it and with any further bytes already pending, without
// blocking again. It implements io.Reader; the returned error is
// always nil.
func (u *UART) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = u.ReadByte()
	n := 1
	for n < len(p) && u.RxReady() {
		p[n] = byte(u.regs.rd(rDR))
		n++
	}
	return n, nil
}
