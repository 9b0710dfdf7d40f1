package cpu

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giusgal/mos6502/mem"
)

func newCpu() (*Cpu, *mem.FlatMemory) {
	m := mem.NewFlatMemory()
	return New(m), m
}

func TestResetState(t *testing.T) {
	c, _ := newCpu()
	assert.Equal(t, uint16(0), c.GetPC())
	assert.Equal(t, byte(0), c.GetA())
	assert.Equal(t, byte(0xFF), c.GetSP())
	assert.Equal(t, byte(0x20), c.GetP())
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, m := newCpu()
	m.Write(0x8000, 0xA9) // LDA #$80
	m.Write(0x8001, 0x80)
	c.SetPC(0x8000)
	c.Step()

	assert.Equal(t, byte(0x80), c.GetA())
	assert.True(t, c.Flags.Negative)
	assert.False(t, c.Flags.Zero)
	assert.Equal(t, uint16(0x8002), c.GetPC())
}

func TestADCSetsCarryAndOverflow(t *testing.T) {
	c, m := newCpu()
	// 0x50 + 0x50 overflows into negative: V set, C clear
	m.Write(0x8000, 0xA9) // LDA #$50
	m.Write(0x8001, 0x50)
	m.Write(0x8002, 0x69) // ADC #$50
	m.Write(0x8003, 0x50)
	c.SetPC(0x8000)
	c.Step()
	c.Step()

	assert.Equal(t, byte(0xA0), c.GetA())
	assert.True(t, c.Flags.Overflow)
	assert.False(t, c.Flags.Carry)
	assert.True(t, c.Flags.Negative)
}

func TestADCHonorsIncomingCarry(t *testing.T) {
	c, m := newCpu()
	m.Write(0x8000, 0x38) // SEC
	m.Write(0x8001, 0xA9) // LDA #$01
	m.Write(0x8002, 0x01)
	m.Write(0x8003, 0x69) // ADC #$01
	m.Write(0x8004, 0x01)
	c.SetPC(0x8000)
	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, byte(0x03), c.GetA())
	assert.False(t, c.Flags.Carry)
}

func TestSBCIsAddWithCarryOfComplement(t *testing.T) {
	c, m := newCpu()
	m.Write(0x8000, 0x38) // SEC (no borrow)
	m.Write(0x8001, 0xA9) // LDA #$10
	m.Write(0x8002, 0x10)
	m.Write(0x8003, 0xE9) // SBC #$01
	m.Write(0x8004, 0x01)
	c.SetPC(0x8000)
	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, byte(0x0F), c.GetA())
	assert.True(t, c.Flags.Carry) // no borrow occurred
}

func TestBranchTimingNotTaken(t *testing.T) {
	c, m := newCpu()
	m.Write(0x8000, 0x90) // BCC (carry clear by default: taken, but test NOT taken path)
	m.Write(0x8001, 0x05)
	c.Flags.Carry = true // BCC not taken
	c.SetPC(0x8000)
	c.Step()

	assert.Equal(t, uint64(2), c.Cycles())
	assert.Equal(t, uint16(0x8002), c.GetPC())
}

func TestBranchTimingTakenSamePage(t *testing.T) {
	c, m := newCpu()
	m.Write(0x8000, 0x90) // BCC, offset +5, stays on same page
	m.Write(0x8001, 0x05)
	c.Flags.Carry = false
	c.SetPC(0x8000)
	c.Step()

	assert.Equal(t, uint64(3), c.Cycles())
	assert.Equal(t, uint16(0x8007), c.GetPC())
}

func TestBranchTimingTakenCrossesPage(t *testing.T) {
	c, m := newCpu()
	m.Write(0x80F0, 0x90) // BCC, offset +0x20: 0x80F2 + 0x20 = 0x8112, crosses page
	m.Write(0x80F1, 0x20)
	c.Flags.Carry = false
	c.SetPC(0x80F0)
	c.Step()

	assert.Equal(t, uint64(4), c.Cycles())
	assert.Equal(t, uint16(0x8112), c.GetPC())
}

func TestAbsoluteXPageCrossPenalty(t *testing.T) {
	c, m := newCpu()
	m.Write(0x8000, 0xBD) // LDA $80FF,X
	m.Write(0x8001, 0xFF)
	m.Write(0x8002, 0x80)
	m.Write(0x8101, 0x42) // 0x80FF + 0x02 = 0x8101
	c.X = 0x02
	c.SetPC(0x8000)
	c.Step()

	assert.Equal(t, byte(0x42), c.GetA())
	assert.Equal(t, uint64(5), c.Cycles()) // 4 base + 1 page-cross
}

func TestAbsoluteXNoPageCrossCost(t *testing.T) {
	c, m := newCpu()
	m.Write(0x8000, 0xBD) // LDA $8010,X
	m.Write(0x8001, 0x10)
	m.Write(0x8002, 0x80)
	m.Write(0x8011, 0x07) // 0x8010 + 0x01, same page
	c.X = 0x01
	c.SetPC(0x8000)
	c.Step()

	assert.Equal(t, byte(0x07), c.GetA())
	assert.Equal(t, uint64(4), c.Cycles())
}

func TestZeroPageXWraps(t *testing.T) {
	c, m := newCpu()
	m.Write(0x0005, 0x77)
	m.Write(0x8000, 0xB5) // LDA $FF,X
	m.Write(0x8001, 0xFF)
	c.X = 0x06 // 0xFF + 0x06 wraps to 0x05
	c.SetPC(0x8000)
	c.Step()

	assert.Equal(t, byte(0x77), c.GetA())
}

func TestIndirectXWrapsWithinZeroPage(t *testing.T) {
	c, m := newCpu()
	m.Write(0x00FF, 0x00) // low byte of pointer, at 0xFE+0x01
	m.Write(0x0000, 0x90) // high byte of pointer, wrapped to 0x00
	m.Write(0x9000, 0x99)
	m.Write(0x8000, 0xA1) // LDA ($FE,X)
	m.Write(0x8001, 0xFE)
	c.X = 0x01
	c.SetPC(0x8000)
	c.Step()

	assert.Equal(t, byte(0x99), c.GetA())
}

func TestStackConfinedToPageOne(t *testing.T) {
	c, _ := newCpu()
	c.SP = 0xFF
	c.push(0xAB)
	assert.Equal(t, byte(0xFE), c.SP)
	assert.Equal(t, byte(0xAB), c.Read(0x01FF))

	c.SP = 0x00
	c.push(0xCD)
	assert.Equal(t, byte(0xFF), c.SP) // wraps within the stack page
	assert.Equal(t, byte(0xCD), c.Read(0x0100))
}

func TestJSRThenRTSRoundTrips(t *testing.T) {
	c, m := newCpu()
	m.Write(0x8000, 0x20) // JSR $9000
	m.Write(0x8001, 0x00)
	m.Write(0x8002, 0x90)
	m.Write(0x9000, 0x60) // RTS
	c.SetPC(0x8000)
	c.Step() // JSR
	assert.Equal(t, uint16(0x9000), c.GetPC())
	assert.Equal(t, byte(0x80), c.Read(0x01FF))
	assert.Equal(t, byte(0x02), c.Read(0x01FE))

	c.Step() // RTS
	assert.Equal(t, uint16(0x8003), c.GetPC())
	assert.Equal(t, byte(0xFF), c.SP)
}

func TestPHPForcesBreakBitOnlyOnStackCopy(t *testing.T) {
	c, _ := newCpu()
	c.Flags.Carry = true
	c.Flags.Break = false
	execPHP(c, Implied, 0, false)

	pushed := c.Read(0x01FF)
	assert.True(t, pushed&0x10 != 0) // B forced to 1 on the pushed copy
	assert.False(t, c.Flags.Break)   // in-register B untouched
}

func TestPLPPreservesBreakAndUnusedBits(t *testing.T) {
	c, _ := newCpu()
	c.Flags.Break = true
	c.Flags.Unused = true
	c.push(0x00) // all other flags cleared
	execPLP(c, Implied, 0, false)

	assert.True(t, c.Flags.Break)
	assert.True(t, c.Flags.Unused)
	assert.False(t, c.Flags.Carry)
}

func TestBRKPushesPCPlusOneAndSetsInterruptDisable(t *testing.T) {
	c, m := newCpu()
	m.Write(irqVectorLo, 0x00)
	m.Write(irqVectorHi, 0x90)
	m.Write(0x8000, 0x00) // BRK
	c.SetPC(0x8000)
	c.Step()

	assert.Equal(t, uint16(0x9000), c.GetPC())
	assert.True(t, c.Flags.Interrupt)
	assert.False(t, c.Flags.Break)

	lo := c.Read(0x01FE)
	hi := c.Read(0x01FF)
	assert.Equal(t, uint16(0x8002), uint16(hi)<<8|uint16(lo))

	pushedP := c.Read(0x01FD)
	assert.True(t, pushedP&0x10 != 0)
}

func TestIRQIgnoredWhenInterruptDisabled(t *testing.T) {
	c, _ := newCpu()
	c.Flags.Interrupt = true
	before := c.GetPC()
	c.IRQ()
	assert.Equal(t, before, c.GetPC())
	assert.Equal(t, uint64(0), c.Cycles())
}

func TestIRQHonoredWhenEnabled(t *testing.T) {
	c, m := newCpu()
	m.Write(irqVectorLo, 0x34)
	m.Write(irqVectorHi, 0x12)
	c.SetPC(0x8000)
	c.IRQ()

	assert.Equal(t, uint16(0x1234), c.GetPC())
	assert.True(t, c.Flags.Interrupt)
	assert.Equal(t, uint64(7), c.Cycles())
}

func TestNMIAlwaysHonored(t *testing.T) {
	c, m := newCpu()
	m.Write(nmiVectorLo, 0x78)
	m.Write(nmiVectorHi, 0x56)
	c.Flags.Interrupt = true // NMI ignores the interrupt disable flag
	c.SetPC(0x8000)
	c.NMI()

	assert.Equal(t, uint16(0x5678), c.GetPC())
}

func TestBreakpointStopsBeforeExecutingIt(t *testing.T) {
	c, m := newCpu()
	m.Write(0x8000, 0xA9) // LDA #$01
	m.Write(0x8001, 0x01)
	m.Write(0x8002, 0xA9) // LDA #$02 (breakpointed, never runs)
	m.Write(0x8003, 0x02)
	c.SetBreakpoint(0x8002)
	c.Execute(0x8000, 0x8003)

	assert.Equal(t, byte(0x01), c.GetA())
	assert.Equal(t, uint16(0x8002), c.GetPC())
}

func TestInfoFormat(t *testing.T) {
	c, _ := newCpu()
	info := c.Info()
	assert.Contains(t, info, "SR:00100000")
	assert.Contains(t, info, "AC:00")
	assert.Contains(t, info, "NV-BDIZC")
}

// TestFunctionalTestSuite runs Klaus Dormann's well-known 6502 functional
// test ROM when present under testdata/, mirroring the original emulator's
// own test harness. The binary is large and not distributed with this
// repository, so the test skips itself when it can't find it.
func TestFunctionalTestSuite(t *testing.T) {
	const path = "testdata/6502_functional_test.bin"
	data, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("functional test ROM not present: %v", err)
	}

	m := mem.NewFlatMemory()
	for i, b := range data {
		m.Write(uint16(0x0400+i), b)
	}

	c := New(m)
	const successTrap = 0x36b9
	c.SetBreakpoint(successTrap)
	c.Execute(0x0400, 0x3a19)

	assert.Equal(t, uint16(successTrap), c.GetPC(), "did not reach the success trap")
}
