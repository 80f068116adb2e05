/*
 * Copyright (C) 2023 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package cidr

import (
	"fmt"
	"math"
	"net/netip"
	"strconv"
	"strings"
)

// MaxLen is the number of bits in an IPv4 address.
const MaxLen = 32

// Prefix is an immutable IPv4 CIDR block: the first Len bits of a 32-bit
// address, MSB of the first octet first. Bits beyond Len are always zero, so
// the zero value is 0.0.0.0/0 and equal bit sequences compare equal with ==.
type Prefix struct {
	addr uint32
	len  int
}

// Parse parses text in the form "a.b.c.d/n" with octets 0-255 and a prefix
// length 0-32. Host bits beyond the prefix length are zeroed, so the result
// is always canonical. Malformed input returns a *ParseError.
func Parse(text string) (Prefix, error) {
	addrText, lenText, found := strings.Cut(text, "/")
	if !found {
		return Prefix{}, &ParseError{Text: text, Reason: "missing prefix length"}
	}
	octets := strings.Split(addrText, ".")
	if len(octets) != 4 {
		return Prefix{}, &ParseError{Text: text, Reason: fmt.Sprintf("expected 4 octets, got %d", len(octets))}
	}
	var addr uint32
	for _, octet := range octets {
		v, err := strconv.ParseUint(octet, 10, 8)
		if err != nil {
			return Prefix{}, &ParseError{Text: text, Reason: fmt.Sprintf("invalid octet %q", octet)}
		}
		addr = addr<<8 | uint32(v)
	}
	n, err := strconv.Atoi(lenText)
	if err != nil || n < 0 || n > MaxLen {
		return Prefix{}, &ParseError{Text: text, Reason: fmt.Sprintf("invalid prefix length %q", lenText)}
	}
	return Prefix{addr: mask(addr, n), len: n}, nil
}

// MustParse is like Parse but panics on malformed input. For tests and
// constants only.
func MustParse(text string) Prefix {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// mask zeroes all bits of addr beyond the first n.
func mask(addr uint32, n int) uint32 {
	if n <= 0 {
		return 0
	}
	return addr &^ (1<<uint(MaxLen-n) - 1)
}

// Len returns the prefix length in bits.
func (p Prefix) Len() int {
	return p.len
}

// Bit returns the i-th network bit, i counted from the MSB of the first
// octet. i must be < Len.
func (p Prefix) Bit(i int) bool {
	return p.addr>>uint(MaxLen-1-i)&1 == 1
}

// Bits returns the network bits as a fresh slice, MSB first.
func (p Prefix) Bits() []bool {
	bits := make([]bool, p.len)
	for i := range bits {
		bits[i] = p.Bit(i)
	}
	return bits
}

// AppendBit returns a new Prefix one bit longer with b as its last bit. The
// receiver is not modified. Appending beyond /32 is a logic error.
func (p Prefix) AppendBit(b bool) Prefix {
	if p.len >= MaxLen {
		panic("cidr: AppendBit beyond /32")
	}
	next := p.addr
	if b {
		next |= 1 << uint(MaxLen-1-p.len)
	}
	return Prefix{addr: next, len: p.len + 1}
}

// DropLastBit returns a new Prefix one bit shorter, re-canonicalized.
// Dropping below /0 is a logic error.
func (p Prefix) DropLastBit() Prefix {
	if p.len <= 0 {
		panic("cidr: DropLastBit below /0")
	}
	return Prefix{addr: mask(p.addr, p.len-1), len: p.len - 1}
}

// Size returns the number of addresses the prefix covers, 2^(32-Len).
func (p Prefix) Size() float64 {
	return math.Exp2(float64(MaxLen - p.len))
}

// Compare orders prefixes by network address, then by length. It returns a
// negative number, zero, or a positive number as p sorts before, equal to,
// or after o.
func (p Prefix) Compare(o Prefix) int {
	switch {
	case p.addr < o.addr:
		return -1
	case p.addr > o.addr:
		return 1
	}
	return p.len - o.len
}

// String renders the canonical "a.b.c.d/n" form.
func (p Prefix) String() string {
	return fmt.Sprintf("%d.%d.%d.%d/%d",
		byte(p.addr>>24), byte(p.addr>>16), byte(p.addr>>8), byte(p.addr), p.len)
}

// Netip converts to the equivalent netip.Prefix.
func (p Prefix) Netip() netip.Prefix {
	a := netip.AddrFrom4([4]byte{byte(p.addr >> 24), byte(p.addr >> 16), byte(p.addr >> 8), byte(p.addr)})
	return netip.PrefixFrom(a, p.len)
}

// FromNetip converts a 4-byte netip.Prefix, canonicalizing host bits.
func FromNetip(np netip.Prefix) (Prefix, error) {
	if !np.Addr().Is4() {
		return Prefix{}, &ParseError{Text: np.String(), Reason: "not an IPv4 prefix"}
	}
	b := np.Addr().As4()
	addr := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return Prefix{addr: mask(addr, np.Bits()), len: np.Bits()}, nil
}
