// Package cpu implements the MOS 6502 instruction decoder and execution
// engine: register file, status flags, the thirteen addressing modes, the
// 256-entry opcode dispatch table, interrupt handling and a breakpointed
// run loop. The Cpu has no memory of its own; it is driven entirely through
// the mem.Port it is constructed with.
package cpu

import (
	"fmt"
	"time"

	"github.com/giusgal/mos6502/mask"
	"github.com/giusgal/mos6502/mem"
)

const (
	nmiVectorLo   uint16 = 0xFFFA
	nmiVectorHi   uint16 = 0xFFFB
	resetVectorLo uint16 = 0xFFFC
	resetVectorHi uint16 = 0xFFFD
	irqVectorLo   uint16 = 0xFFFE
	irqVectorHi   uint16 = 0xFFFF

	stackPage uint16 = 0x0100
)

// ResetVectorLo and ResetVectorHi are exported for hosts that want to seed
// PC from the reset vector themselves before the first Execute/Step, since
// Reset does not do this automatically.
const (
	ResetVectorLo = resetVectorLo
	ResetVectorHi = resetVectorHi
)

// Flags is the processor status register P, held as individual bits rather
// than a packed byte: the B flag and the unused bit only ever matter on the
// pushed copy of P, so keeping them as separate in-register state avoids
// smuggling stack-only behaviour into arithmetic.
type Flags struct {
	Negative  bool // N, bit 7
	Overflow  bool // V, bit 6
	Unused    bool // bit 5, always pushed as 1
	Break     bool // B, bit 4, meaningful only in a pushed copy
	Decimal   bool // D, bit 3
	Interrupt bool // I, bit 2, disables IRQ when set
	Zero      bool // Z, bit 1
	Carry     bool // C, bit 0
}

// AddressingMode identifies how an opcode's operand resolves to an
// effective address. There are thirteen: the eleven enumerated below plus
// Implied and Accumulator, which consume no operand byte.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// Cpu is a single MOS 6502 core. Bus is the host-provided memory port; all
// program and data access goes through it.
type Cpu struct {
	Bus mem.Port

	PC    uint16
	A     byte
	X     byte
	Y     byte
	SP    byte
	Flags Flags

	cycles     uint64
	breakpoint uint16
	hasBreak   bool

	// Throttle, when true, makes Step sleep roughly in proportion to the
	// cycles it spent, for interactive use such as the debugger. Tests and
	// the functional-test harness leave it false to run at full speed.
	Throttle bool
}

// New returns a Cpu wired to bus, already brought to its reset state.
func New(bus mem.Port) *Cpu {
	c := &Cpu{Bus: bus}
	c.Reset()
	return c
}

// Read reads a single byte from the bus.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write writes a single byte to the bus.
func (c *Cpu) Write(addr uint16, v byte) {
	c.Bus.Write(addr, v)
}

// Reset brings the Cpu to its defined power-up state: PC=0x0000, A=X=Y=0,
// P=0x20 (only the unused bit set), SP=0xFF. The running cycle count is
// untouched, matching the original emulator's reset.
func (c *Cpu) Reset() {
	c.PC = 0
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.Flags = Flags{Unused: true}
}

// GetPC returns the program counter.
func (c *Cpu) GetPC() uint16 { return c.PC }

// SetPC assigns the program counter.
func (c *Cpu) SetPC(v uint16) { c.PC = v }

// GetA returns the accumulator.
func (c *Cpu) GetA() byte { return c.A }

// SetA assigns the accumulator.
func (c *Cpu) SetA(v byte) { c.A = v }

// GetX returns the X index register.
func (c *Cpu) GetX() byte { return c.X }

// SetX assigns the X index register.
func (c *Cpu) SetX(v byte) { c.X = v }

// GetY returns the Y index register.
func (c *Cpu) GetY() byte { return c.Y }

// SetY assigns the Y index register.
func (c *Cpu) SetY(v byte) { c.Y = v }

// GetSP returns the stack pointer.
func (c *Cpu) GetSP() byte { return c.SP }

// SetSP assigns the stack pointer.
func (c *Cpu) SetSP(v byte) { c.SP = v }

// GetP returns the status register exactly as currently held, B and the
// unused bit included.
func (c *Cpu) GetP() byte {
	p := c.statusByte(c.Flags.Break)
	if !c.Flags.Unused {
		p &^= 0x20
	}
	return p
}

// SetP overwrites every flag, including B and the unused bit, from v.
func (c *Cpu) SetP(v byte) {
	c.Flags.Carry = v&0x01 != 0
	c.Flags.Zero = v&0x02 != 0
	c.Flags.Interrupt = v&0x04 != 0
	c.Flags.Decimal = v&0x08 != 0
	c.Flags.Break = v&0x10 != 0
	c.Flags.Unused = v&0x20 != 0
	c.Flags.Overflow = v&0x40 != 0
	c.Flags.Negative = v&0x80 != 0
}

// Cycles returns the running total of cycles spent since construction.
// Reset does not clear it.
func (c *Cpu) Cycles() uint64 { return c.cycles }

// SetBreakpoint arms a single breakpoint address. Execute stops, without
// executing the instruction at addr, the moment PC reaches it.
func (c *Cpu) SetBreakpoint(addr uint16) {
	c.breakpoint = addr
	c.hasBreak = true
}

// ClearBreakpoint disarms any breakpoint previously set.
func (c *Cpu) ClearBreakpoint() {
	c.hasBreak = false
}

// statusByte packs the current flags into a byte, forcing the B bit to
// breakBit and the unused bit to 1. It never mutates Flags; PHP, BRK, IRQ
// and NMI each pick their own breakBit and push the result directly.
func (c *Cpu) statusByte(breakBit bool) byte {
	var p byte
	if c.Flags.Carry {
		p |= 0x01
	}
	if c.Flags.Zero {
		p |= 0x02
	}
	if c.Flags.Interrupt {
		p |= 0x04
	}
	if c.Flags.Decimal {
		p |= 0x08
	}
	if breakBit {
		p |= 0x10
	}
	p |= 0x20
	if c.Flags.Overflow {
		p |= 0x40
	}
	if c.Flags.Negative {
		p |= 0x80
	}
	return p
}

// restoreStatus loads C, Z, I, D, V, N from p, leaving the in-register B
// and unused bits untouched. PLP and RTI use this.
func (c *Cpu) restoreStatus(p byte) {
	c.Flags.Carry = p&0x01 != 0
	c.Flags.Zero = p&0x02 != 0
	c.Flags.Interrupt = p&0x04 != 0
	c.Flags.Decimal = p&0x08 != 0
	c.Flags.Overflow = p&0x40 != 0
	c.Flags.Negative = p&0x80 != 0
}

func (c *Cpu) setNZ(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

func (c *Cpu) push(v byte) {
	c.Write(stackPage|uint16(c.SP), v)
	c.SP--
}

func (c *Cpu) pull() byte {
	c.SP++
	return c.Read(stackPage | uint16(c.SP))
}

// decode resolves the operand addressing for mode, advancing PC past any
// operand bytes it consumes. addr is meaningless for Implied and
// Accumulator. pageCrossed reports whether an indexed or relative
// computation crossed a page boundary, for the caller to charge the extra
// cycle where that applies.
func (c *Cpu) decode(mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		addr = c.PC
		c.PC++

	case ZeroPage:
		addr = uint16(c.Read(c.PC))
		c.PC++

	case ZeroPageX:
		addr = uint16(c.Read(c.PC) + c.X)
		c.PC++

	case ZeroPageY:
		addr = uint16(c.Read(c.PC) + c.Y)
		c.PC++

	case Absolute:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		addr = mask.Word(hi, lo)

	case AbsoluteX:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		base := mask.Word(hi, lo)
		addr = base + uint16(c.X)
		pageCrossed = uint16(lo)+uint16(c.X) > 0xFF

	case AbsoluteY:
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		base := mask.Word(hi, lo)
		addr = base + uint16(c.Y)
		pageCrossed = uint16(lo)+uint16(c.Y) > 0xFF

	case Indirect:
		// JMP (indirect). The original hardware's page-wrap bug, where a
		// pointer ending in 0xFF reads its high byte from the start of
		// the same page, is not reproduced here.
		lo := c.Read(c.PC)
		c.PC++
		hi := c.Read(c.PC)
		c.PC++
		ptr := mask.Word(hi, lo)
		effLo := c.Read(ptr)
		effHi := c.Read(ptr + 1)
		addr = mask.Word(effHi, effLo)

	case IndirectX:
		op := c.Read(c.PC)
		c.PC++
		ptr := op + c.X // wraps within the zero page
		lo := c.Read(uint16(ptr))
		hi := c.Read(uint16(ptr + 1))
		addr = mask.Word(hi, lo)

	case IndirectY:
		op := c.Read(c.PC)
		c.PC++
		lo := c.Read(uint16(op))
		hi := c.Read(uint16(op + 1)) // wraps within the zero page
		base := mask.Word(hi, lo)
		addr = base + uint16(c.Y)
		pageCrossed = uint16(lo)+uint16(c.Y) > 0xFF

	case Relative:
		op := c.Read(c.PC)
		c.PC++
		addr = uint16(int32(c.PC) + int32(int8(op)))
		pageCrossed = addr&0xFF00 != c.PC&0xFF00
	}
	return addr, pageCrossed
}

// operand reads the effective operand for a read-modify-write opcode,
// dereferencing the accumulator instead of the bus when mode is
// Accumulator.
func (c *Cpu) operand(mode AddressingMode, addr uint16) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.Read(addr)
}

// storeOperand is the write-back half of operand.
func (c *Cpu) storeOperand(mode AddressingMode, addr uint16, v byte) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.Write(addr, v)
}

// Step fetches, decodes and executes exactly one instruction, advancing
// the cycle count by its total cost: base cost, plus any page-cross
// penalty, plus any conditional extra such as a taken branch.
func (c *Cpu) Step() {
	opByte := c.Read(c.PC)
	c.PC++

	op := lookup(opByte)
	addr, pageCrossed := c.decode(op.Mode)
	extra := op.Exec(c, op.Mode, addr, pageCrossed)

	total := uint64(op.Cycles) + uint64(extra)
	if op.PageCrossRead && pageCrossed {
		total++
	}
	c.cycles += total

	if c.Throttle {
		time.Sleep(time.Duration(total*500) * time.Nanosecond)
	}
}

// Execute runs instructions starting at initPC until PC exceeds endPC or
// the armed breakpoint is reached. The breakpointed instruction is never
// executed: the check happens before each fetch.
func (c *Cpu) Execute(initPC, endPC uint16) {
	c.PC = initPC
	for c.PC <= endPC {
		if c.hasBreak && c.PC == c.breakpoint {
			break
		}
		c.Step()
	}
}

// IRQ requests a maskable interrupt. It is ignored while the interrupt
// disable flag is set; otherwise it pushes PC high, PC low, then P (with B
// forced to 0), sets the interrupt disable flag, loads PC from the IRQ/BRK
// vector and charges 7 cycles.
func (c *Cpu) IRQ() {
	if c.Flags.Interrupt {
		return
	}
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC))
	c.push(c.statusByte(false))
	c.Flags.Interrupt = true
	c.PC = mask.Word(c.Read(irqVectorHi), c.Read(irqVectorLo))
	c.cycles += 7
}

// NMI requests a non-maskable interrupt; unlike IRQ it is never ignored.
// The push order matches IRQ, except B is pushed as whatever it currently
// holds in-register rather than being forced to 0. PC loads from the NMI
// vector.
func (c *Cpu) NMI() {
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC))
	c.push(c.statusByte(c.Flags.Break))
	c.Flags.Interrupt = true
	c.PC = mask.Word(c.Read(nmiVectorHi), c.Read(nmiVectorLo))
	c.cycles += 7
}

// Info renders a one-line-plus-legend snapshot of the core, matching the
// original emulator's diagnostic dump.
func (c *Cpu) Info() string {
	return fmt.Sprintf(
		"SR:%08b | AC:%02x X:%02x Y:%02x | PC:%04x SP:%02x Cycles:%x\n   NV-BDIZC\n",
		c.GetP(), c.A, c.X, c.Y, c.PC, c.SP, c.cycles,
	)
}
