package mem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatMemoryReadWrite(t *testing.T) {
	m := NewFlatMemory()
	m.Write(0x1234, 0x42)
	assert.Equal(t, byte(0x42), m.Read(0x1234))
	assert.Equal(t, byte(0), m.Read(0x1235))
}

func TestLoadHex(t *testing.T) {
	m := NewFlatMemory()
	err := LoadHex(m, 0x8000, strings.NewReader("A9 42 8D 00 02"))
	assert.NoError(t, err)
	assert.Equal(t, byte(0xa9), m.Read(0x8000))
	assert.Equal(t, byte(0x42), m.Read(0x8001))
	assert.Equal(t, byte(0x8d), m.Read(0x8002))
	assert.Equal(t, byte(0x00), m.Read(0x8003))
	assert.Equal(t, byte(0x02), m.Read(0x8004))
}

func TestLoadHexInvalidToken(t *testing.T) {
	m := NewFlatMemory()
	err := LoadHex(m, 0x8000, strings.NewReader("A9 ZZ"))
	assert.Error(t, err)
}

func TestLoadBinary(t *testing.T) {
	m := NewFlatMemory()
	err := LoadBinary(m, 0x0400, strings.NewReader(string([]byte{0x01, 0x02, 0x03})))
	assert.NoError(t, err)
	assert.Equal(t, byte(0x01), m.Read(0x0400))
	assert.Equal(t, byte(0x02), m.Read(0x0401))
	assert.Equal(t, byte(0x03), m.Read(0x0402))
}

func TestDump(t *testing.T) {
	m := NewFlatMemory()
	m.Write(0x0000, 0xaa)
	m.Write(0x000f, 0xbb)
	out := m.Dump(0x0000, 0x000f)
	assert.Contains(t, out, "0000: aa")
	assert.Contains(t, out, "bb")
}
