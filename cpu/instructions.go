package cpu

import "github.com/giusgal/mos6502/mask"

// ExecFunc is the work closure behind a single opcode. addr and
// pageCrossed come from the addressing-mode decode that already ran this
// step; the return value is any cycle cost beyond the opcode's base cost
// (used by the branches, which add 1 or 2 depending on whether they were
// taken and whether the branch target crosses a page).
type ExecFunc func(c *Cpu, mode AddressingMode, addr uint16, pageCrossed bool) byte

// --- loads and stores ---

func execLDA(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.A = c.Read(addr)
	c.setNZ(c.A)
	return 0
}

func execLDX(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.X = c.Read(addr)
	c.setNZ(c.X)
	return 0
}

func execLDY(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.Y = c.Read(addr)
	c.setNZ(c.Y)
	return 0
}

func execSTA(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.Write(addr, c.A)
	return 0
}

func execSTX(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.Write(addr, c.X)
	return 0
}

func execSTY(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.Write(addr, c.Y)
	return 0
}

// --- register transfers ---

func execTAX(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.X = c.A
	c.setNZ(c.X)
	return 0
}

func execTAY(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.Y = c.A
	c.setNZ(c.Y)
	return 0
}

func execTXA(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.A = c.X
	c.setNZ(c.A)
	return 0
}

func execTYA(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.A = c.Y
	c.setNZ(c.A)
	return 0
}

func execTSX(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.X = c.SP
	c.setNZ(c.X)
	return 0
}

func execTXS(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	// does not touch N or Z: SP is not a value register
	c.SP = c.X
	return 0
}

// --- stack ---

func execPHA(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.push(c.A)
	return 0
}

func execPHP(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.push(c.statusByte(true))
	return 0
}

func execPLA(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.A = c.pull()
	c.setNZ(c.A)
	return 0
}

func execPLP(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.restoreStatus(c.pull())
	return 0
}

// --- logical ---

func execAND(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.A &= c.Read(addr)
	c.setNZ(c.A)
	return 0
}

func execORA(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.A |= c.Read(addr)
	c.setNZ(c.A)
	return 0
}

func execEOR(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.A ^= c.Read(addr)
	c.setNZ(c.A)
	return 0
}

func execBIT(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	m := c.Read(addr)
	c.Flags.Zero = c.A&m == 0
	c.Flags.Overflow = m&0x40 != 0
	c.Flags.Negative = m&0x80 != 0
	return 0
}

// --- arithmetic ---

// addWithCarry implements ADC's binary-mode semantics: decimal mode is a
// non-goal, so D has no effect here.
func (c *Cpu) addWithCarry(m byte) {
	var carryIn uint16
	if c.Flags.Carry {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(m) + carryIn
	result := byte(sum)

	c.Flags.Overflow = (c.A^result)&(m^result)&0x80 != 0
	c.Flags.Carry = sum > 0xFF
	c.A = result
	c.setNZ(c.A)
}

func execADC(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.addWithCarry(c.Read(addr))
	return 0
}

func execSBC(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.addWithCarry(^c.Read(addr))
	return 0
}

func (c *Cpu) compare(reg byte, m byte) {
	result := reg - m
	c.Flags.Carry = reg >= m
	c.Flags.Zero = reg == m
	c.Flags.Negative = result&0x80 != 0
}

func execCMP(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.compare(c.A, c.Read(addr))
	return 0
}

func execCPX(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.compare(c.X, c.Read(addr))
	return 0
}

func execCPY(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.compare(c.Y, c.Read(addr))
	return 0
}

// --- increments and decrements ---

func execINC(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.setNZ(v)
	return 0
}

func execDEC(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.setNZ(v)
	return 0
}

func execINX(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.X++
	c.setNZ(c.X)
	return 0
}

func execINY(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.Y++
	c.setNZ(c.Y)
	return 0
}

func execDEX(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.X--
	c.setNZ(c.X)
	return 0
}

func execDEY(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.Y--
	c.setNZ(c.Y)
	return 0
}

// --- shifts and rotates ---

func execASL(c *Cpu, mode AddressingMode, addr uint16, _ bool) byte {
	v := c.operand(mode, addr)
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	c.setNZ(v)
	c.storeOperand(mode, addr, v)
	return 0
}

func execLSR(c *Cpu, mode AddressingMode, addr uint16, _ bool) byte {
	v := c.operand(mode, addr)
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	c.setNZ(v)
	c.storeOperand(mode, addr, v)
	return 0
}

func execROL(c *Cpu, mode AddressingMode, addr uint16, _ bool) byte {
	v := c.operand(mode, addr)
	carryIn := byte(0)
	if c.Flags.Carry {
		carryIn = 1
	}
	c.Flags.Carry = v&0x80 != 0
	v = v<<1 | carryIn
	c.setNZ(v)
	c.storeOperand(mode, addr, v)
	return 0
}

func execROR(c *Cpu, mode AddressingMode, addr uint16, _ bool) byte {
	v := c.operand(mode, addr)
	carryIn := byte(0)
	if c.Flags.Carry {
		carryIn = 0x80
	}
	c.Flags.Carry = v&0x01 != 0
	v = v>>1 | carryIn
	c.setNZ(v)
	c.storeOperand(mode, addr, v)
	return 0
}

// --- flag instructions ---

func execCLC(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte { c.Flags.Carry = false; return 0 }
func execSEC(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte { c.Flags.Carry = true; return 0 }
func execCLI(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte { c.Flags.Interrupt = false; return 0 }
func execSEI(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte { c.Flags.Interrupt = true; return 0 }
func execCLV(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte { c.Flags.Overflow = false; return 0 }
func execCLD(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte { c.Flags.Decimal = false; return 0 }
func execSED(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte { c.Flags.Decimal = true; return 0 }

// --- branches ---

// branch jumps to addr when cond holds, returning the extra cycles a
// taken branch costs: 1 normally, 2 if the target is on a different page.
func (c *Cpu) branch(cond bool, addr uint16, pageCrossed bool) byte {
	if !cond {
		return 0
	}
	c.PC = addr
	if pageCrossed {
		return 2
	}
	return 1
}

func execBCC(c *Cpu, _ AddressingMode, addr uint16, pc bool) byte {
	return c.branch(!c.Flags.Carry, addr, pc)
}
func execBCS(c *Cpu, _ AddressingMode, addr uint16, pc bool) byte {
	return c.branch(c.Flags.Carry, addr, pc)
}
func execBEQ(c *Cpu, _ AddressingMode, addr uint16, pc bool) byte {
	return c.branch(c.Flags.Zero, addr, pc)
}
func execBNE(c *Cpu, _ AddressingMode, addr uint16, pc bool) byte {
	return c.branch(!c.Flags.Zero, addr, pc)
}
func execBMI(c *Cpu, _ AddressingMode, addr uint16, pc bool) byte {
	return c.branch(c.Flags.Negative, addr, pc)
}
func execBPL(c *Cpu, _ AddressingMode, addr uint16, pc bool) byte {
	return c.branch(!c.Flags.Negative, addr, pc)
}
func execBVC(c *Cpu, _ AddressingMode, addr uint16, pc bool) byte {
	return c.branch(!c.Flags.Overflow, addr, pc)
}
func execBVS(c *Cpu, _ AddressingMode, addr uint16, pc bool) byte {
	return c.branch(c.Flags.Overflow, addr, pc)
}

// --- jumps and calls ---

func execJMP(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	c.PC = addr
	return 0
}

func execJSR(c *Cpu, _ AddressingMode, addr uint16, _ bool) byte {
	// PC already points past both operand bytes; the address of the
	// operand's last byte is PC-1.
	returnAddr := c.PC - 1
	c.push(byte(returnAddr >> 8))
	c.push(byte(returnAddr))
	c.PC = addr
	return 0
}

func execRTS(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	lo := c.pull()
	hi := c.pull()
	c.PC = mask.Word(hi, lo) + 1
	return 0
}

func execRTI(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	c.restoreStatus(c.pull())
	lo := c.pull()
	hi := c.pull()
	c.PC = mask.Word(hi, lo)
	return 0
}

func execBRK(c *Cpu, _ AddressingMode, _ uint16, _ bool) byte {
	returnAddr := c.PC + 1 // skips the padding byte after the BRK opcode
	c.push(byte(returnAddr >> 8))
	c.push(byte(returnAddr))
	c.push(c.statusByte(true))
	c.Flags.Break = false
	c.Flags.Interrupt = true
	c.PC = mask.Word(c.Read(irqVectorHi), c.Read(irqVectorLo))
	return 0
}

// --- no operation ---

func execNOP(_ *Cpu, _ AddressingMode, _ uint16, _ bool) byte { return 0 }
