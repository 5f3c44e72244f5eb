// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

// putInstructions is a helper function to assemble bytes into memory,
// returning the address of the next free location.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#04x)", d, value, address)
	}
}

func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.ExecuteInstruction(); err != nil {
		t.Fatal(err)
	}
}

func TestLDAImmediateFlags(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// neither zero nor negative
	mem.putInstructions(0x0000, 0xa9, 0x05)
	mc.Reset()
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x05)
	test.ExpectedFailure(t, mc.Status.Zero)
	test.ExpectedFailure(t, mc.Status.Sign)

	// zero
	mem.Clear()
	mem.putInstructions(0x0000, 0xa9, 0x00)
	mc.Reset()
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.ExpectedSuccess(t, mc.Status.Zero)
	test.ExpectedFailure(t, mc.Status.Sign)

	// negative
	mem.Clear()
	mem.putInstructions(0x0000, 0xa9, 0x88)
	mc.Reset()
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x88)
	test.ExpectedFailure(t, mc.Status.Zero)
	test.ExpectedSuccess(t, mc.Status.Sign)
}

func TestLDAAddressingModes(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	var origin uint16

	// LDA zero page
	mem.Clear()
	mc.Reset()
	_ = mem.Write(0x0081, 0x42)
	origin = mem.putInstructions(0x1000, 0xa5, 0x81)
	mc.PC.Load(0x1000)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x42)
	test.Equate(t, mc.PC.Address(), origin)

	// LDA zero page,X - index wraps inside the zero page
	mem.Clear()
	mc.Reset()
	mc.X.Load(0x02)
	_ = mem.Write(0x0001, 0x99)
	mem.putInstructions(0x1000, 0xb5, 0xff)
	mc.PC.Load(0x1000)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x99)

	// LDA absolute
	mem.Clear()
	mc.Reset()
	_ = mem.Write(0x1234, 0x56)
	origin = mem.putInstructions(0x1000, 0xad, 0x34, 0x12)
	mc.PC.Load(0x1000)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x56)
	test.Equate(t, mc.PC.Address(), origin)

	// LDA absolute,X
	mem.Clear()
	mc.Reset()
	mc.X.Load(0x10)
	_ = mem.Write(0x1244, 0x57)
	mem.putInstructions(0x1000, 0xbd, 0x34, 0x12)
	mc.PC.Load(0x1000)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x57)

	// LDA absolute,Y with 16 bit wraparound
	mem.Clear()
	mc.Reset()
	mc.Y.Load(0x02)
	_ = mem.Write(0x0001, 0x58)
	mem.putInstructions(0x1000, 0xb9, 0xff, 0xff)
	mc.PC.Load(0x1000)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x58)

	// LDA (ind,X) - pointer wraps at 8 bits before dereferencing
	mem.Clear()
	mc.Reset()
	mc.X.Load(0x04)
	_ = mem.Write(0x0002, 0x00) // (0xfe + 0x04) wraps to 0x02
	_ = mem.Write(0x0003, 0x20)
	_ = mem.Write(0x2000, 0x61)
	mem.putInstructions(0x1000, 0xa1, 0xfe)
	mc.PC.Load(0x1000)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x61)

	// LDA (ind),Y - base is dereferenced unindexed, Y added after
	mem.Clear()
	mc.Reset()
	mc.Y.Load(0x10)
	_ = mem.Write(0x0040, 0x00)
	_ = mem.Write(0x0041, 0x30)
	_ = mem.Write(0x3010, 0x62)
	mem.putInstructions(0x1000, 0xb1, 0x40)
	mc.PC.Load(0x1000)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x62)
}

func TestLDXZeroPageY(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mc.Reset()
	mc.Y.Load(0x03)
	_ = mem.Write(0x0013, 0x77)
	mem.putInstructions(0x1000, 0xb6, 0x10)
	mc.PC.Load(0x1000)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x77)
}

func TestStores(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// STA zero page; store instructions do not affect flags
	mc.Reset()
	mc.A.Load(0x00)
	mc.Status.Zero = false
	mem.putInstructions(0x1000, 0x85, 0x20)
	mc.PC.Load(0x1000)
	step(t, mc)
	mem.assert(t, 0x0020, 0x00)
	test.ExpectedFailure(t, mc.Status.Zero)

	// STA (ind),Y
	mem.Clear()
	mc.Reset()
	mc.A.Load(0xab)
	mc.Y.Load(0x01)
	_ = mem.Write(0x0060, 0x00)
	_ = mem.Write(0x0061, 0x40)
	mem.putInstructions(0x1000, 0x91, 0x60)
	mc.PC.Load(0x1000)
	step(t, mc)
	mem.assert(t, 0x4001, 0xab)

	// STX zero page,Y and STY zero page,X
	mem.Clear()
	mc.Reset()
	mc.X.Load(0x11)
	mc.Y.Load(0x22)
	mem.putInstructions(0x1000, 0x96, 0x30, 0x94, 0x40)
	mc.PC.Load(0x1000)
	step(t, mc)
	mem.assert(t, 0x0052, 0x11) // 0x30 + Y
	step(t, mc)
	mem.assert(t, 0x0051, 0x22) // 0x40 + X
}

func TestTransfersAndCounts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// TAX is a pure copy; flags reflect the copied value
	mc.Reset()
	mc.A.Load(0x88)
	mem.putInstructions(0x0000, 0xaa, 0xa8, 0x8a, 0x98)
	step(t, mc) // TAX
	test.Equate(t, mc.X.Value(), 0x88)
	test.ExpectedSuccess(t, mc.Status.Sign)
	step(t, mc) // TAY
	test.Equate(t, mc.Y.Value(), 0x88)
	step(t, mc) // TXA
	test.Equate(t, mc.A.Value(), 0x88)
	step(t, mc) // TYA
	test.Equate(t, mc.A.Value(), 0x88)

	// INX wraps modulo 256: 0xff + 1 = 0x00, not 0x01
	mem.Clear()
	mc.Reset()
	mc.X.Load(0xff)
	mem.putInstructions(0x0000, 0xe8)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x00)
	test.ExpectedSuccess(t, mc.Status.Zero)
	test.ExpectedFailure(t, mc.Status.Sign)

	// DEX wraps the other way
	mem.Clear()
	mc.Reset()
	mc.X.Load(0x00)
	mem.putInstructions(0x0000, 0xca)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0xff)
	test.ExpectedSuccess(t, mc.Status.Sign)

	// INY and DEY
	mem.Clear()
	mc.Reset()
	mc.Y.Load(0x05)
	mem.putInstructions(0x0000, 0xc8, 0x88, 0x88)
	step(t, mc)
	test.Equate(t, mc.Y.Value(), 0x06)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.Y.Value(), 0x04)
}

// the zero/sign update is a pure function of the result value. repeating an
// instruction with the same result leaves the status register unchanged.
func TestFlagUpdateIdempotence(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mc.Reset()
	mem.putInstructions(0x0000, 0xa9, 0x88, 0xa9, 0x88)
	step(t, mc)
	before := mc.Status.Value()
	step(t, mc)
	test.Equate(t, mc.Status.Value(), before)
}

func TestBRKHalts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mc.Reset()
	mc.A.Load(0x09)
	mem.putInstructions(0x0000, 0x00)
	step(t, mc)
	test.ExpectedSuccess(t, mc.Halted)

	// BRK consumes no operand bytes and changes no other state
	test.Equate(t, mc.PC.Address(), 0x0001)
	test.Equate(t, mc.A.Value(), 0x09)
	test.Equate(t, mc.LastResult.ByteCount, 1)
}

func TestUnimplementedInstruction(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// 0x02 is not in the instruction table
	mc.Reset()
	mem.putInstructions(0x0000, 0x02)
	err := mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.UnimplementedInstruction))
}

func TestLoadPCIndirect(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mc.Reset()
	_ = mem.Write(0xfffc, 0x00)
	_ = mem.Write(0xfffd, 0x80)
	test.ExpectedSuccess(t, mc.LoadPCIndirect(0xfffc))
	test.Equate(t, mc.PC.Address(), 0x8000)
}

func TestResultString(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mc.Reset()
	mem.putInstructions(0x8000, 0xa9, 0x05, 0xe8)
	mc.PC.Load(0x8000)
	step(t, mc)
	test.Equate(t, mc.LastResult.String(), "$8000 LDA #$05")
	step(t, mc)
	test.Equate(t, mc.LastResult.String(), "$8002 INX")
}
