// Package mem implements the Memory Port the cpu package depends on: a
// 16-bit address space reachable through a pair of byte-wide Read/Write
// operations, plus loader utilities that fill that space from a hex-text
// or raw-binary program image.
package mem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Port is the capability the cpu package requires of its host: a total,
// side-effect-ordered pair of byte operations over the full 16-bit address
// range. No caching or re-ordering is performed by callers.
type Port interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// FlatMemory is a 64 KiB flat address space, zeroed on construction. It is
// the simplest possible Port implementation, suitable for tests and the
// cmd/mos6502 harness; a real host may map devices into some of this range
// instead.
type FlatMemory struct {
	ram [64 * 1024]byte
}

// NewFlatMemory returns a zeroed 64 KiB memory.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// Read implements Port.
func (m *FlatMemory) Read(addr uint16) byte {
	return m.ram[addr]
}

// Write implements Port.
func (m *FlatMemory) Write(addr uint16, data byte) {
	m.ram[addr] = data
}

// Dump renders the inclusive range [start, end] as a hex dump, lines breaking
// at 16-byte-aligned addresses, each line prefixed with the address of its
// first byte. Mirrors the original emulator's memoryDump.
func (m *FlatMemory) Dump(start, end uint16) string {
	var b strings.Builder
	for i := uint32(start); i <= uint32(end); i++ {
		if i%16 == 0 || i == uint32(start) {
			fmt.Fprintf(&b, "\n%04x: ", i)
		}
		fmt.Fprintf(&b, "%02x ", m.ram[uint16(i)])
		if i == 0xffff {
			break
		}
	}
	b.WriteString("\n")
	return b.String()
}

// LoadHex reads whitespace-separated pairs of [0-9A-F] hex digits from r and
// writes them sequentially into port starting at addr. Any token that isn't
// exactly two hex digits is an error; the load stops at the first such
// token, leaving port partially written.
func LoadHex(port Port, addr uint16, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := addr
	for scanner.Scan() {
		tok := scanner.Text()
		if len(tok) != 2 {
			return errors.Errorf("invalid hex byte %q: must be exactly 2 digits", tok)
		}
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return errors.Wrapf(err, "invalid hex byte %q", tok)
		}
		port.Write(next, byte(b))
		next++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading hex program")
	}
	return nil
}

// LoadBinary reads raw bytes from r and writes them sequentially into port
// starting at addr. Reading stops at EOF or once the address space wraps.
func LoadBinary(port Port, addr uint16, r io.Reader) error {
	buf := bufio.NewReader(r)
	next := addr
	for {
		b, err := buf.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading binary program")
		}
		port.Write(next, b)
		if next == 0xFFFF {
			return nil
		}
		next++
	}
}
