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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
)

// Memory defines the operations the CPU requires of the address space.
// Implemented by the RAM type in the memory package and by mock memory in
// the test suites.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Error patterns surfaced by the CPU. Use with curated.Is() / curated.Has().
const (
	// the fetched opcode has no entry in the instruction table. fatal -
	// skipping it would leave the program counter misaligned for every
	// subsequent instruction.
	UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"

	// an instruction definition carries an addressing mode with no
	// resolution rule. unreachable if the instruction table is internally
	// consistent but it must fail loudly rather than produce a garbage
	// address.
	UnknownAddressingMode = "cpu: unknown addressing mode for %s"

	// as UnknownAddressingMode but for the operator tag.
	UnknownOperator = "cpu: unknown operator (%s)"
)

// CPU implements the 6502 as found in the NES. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	Status registers.StatusRegister

	mem          Memory
	instructions []*instructions.Definition

	// Halted is set by the BRK instruction. the run loop in the hardware
	// package stops when it sees it. note that Halted does not prevent
	// further calls to ExecuteInstruction() - a new run resumes from
	// wherever the program counter is pointing.
	Halted bool

	// summary of the most recently executed instruction. used by the
	// debugger; the emulation itself never reads it back.
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and flags to zero and clears the Halted
// state. Does not load the PC with the reset vector - use
// LoadPCIndirect(addresses.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.Status.Reset()
	mc.Halted = false
	mc.LastResult = Result{}
}

// LoadPCIndirect loads the 16 bit value at indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	v, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(v)
	return nil
}

// read8Bit returns the 8 bit value at the specified address.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

// read16Bit returns the 16 bit value at the specified address, composed
// little-endian. The address of the high byte is "address+1" which wraps
// modulo 0x10000 through the uint16 type.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// write8Bit writes 8 bits to the specified address.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read8BitPC reads 8 bits from the memory location pointed to by PC.
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC. Same
// side-effects as read8BitPC.
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// ExecuteInstruction steps the CPU forward one instruction. The basic
// process is this:
//
//  1. read opcode and look up the instruction definition
//  2. read operands (if any) and resolve the operand address according to
//     the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// Errors are fatal to the instruction stream; the caller should not call
// ExecuteInstruction() again without a Reset().
func (mc *CPU) ExecuteInstruction() error {
	// prepare a new round of results
	mc.LastResult = Result{Address: mc.PC.Address()}

	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	defn := mc.instructions[opcode]
	if defn == nil {
		return curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	// address is the resolved address to use when accessing memory (after
	// any indexing or indirection has taken place)
	var address uint16

	// value is the operand value for read-effect instructions. in immediate
	// mode it is read directly from the program; for the other modes it is
	// read from the resolved address below
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes

	case instructions.Immediate:
		// the operand byte is the value, there is no address
		value, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.ZeroPage:
		// a single operand byte, zero-extended to 16 bits
		var operand uint8
		operand, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(operand)
		address = uint16(operand)

	case instructions.ZeroPageIndexedX:
		var operand uint8
		operand, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(operand)

		// the index is added with 8 bit wraparound so that the address
		// never leaves the zero page
		address = uint16(operand + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		var operand uint8
		operand, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(operand)
		address = uint16(operand + mc.Y.Value())

	case instructions.Absolute:
		address, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = address

	case instructions.AbsoluteIndexedX:
		var operand uint16
		operand, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = operand

		// 16 bit wraparound through the uint16 type
		address = operand + mc.X.Address()

	case instructions.AbsoluteIndexedY:
		var operand uint16
		operand, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = operand
		address = operand + mc.Y.Address()

	case instructions.PreIndexedIndirect:
		var operand uint8
		operand, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(operand)

		// the X index is added to the pointer with 8 bit wraparound
		// *before* dereferencing. the dereferenced address is used as is
		address, err = mc.read16Bit(uint16(operand + mc.X.Value()))
		if err != nil {
			return err
		}

	case instructions.PostIndexedIndirect:
		var operand uint8
		operand, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(operand)

		// the operand is a zero page pointer, used unindexed; the Y index
		// is added to the dereferenced base with 16 bit wraparound
		var base uint16
		base, err = mc.read16Bit(uint16(operand))
		if err != nil {
			return err
		}
		address = base + mc.Y.Address()

	default:
		return curated.Errorf(UnknownAddressingMode, defn.Operator)
	}

	// read the operand value from memory for read-effect instructions. in
	// immediate mode we already have the value in lieu of an address and
	// implied mode instructions don't need one
	if defn.Effect == instructions.Read {
		if !(defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Immediate) {
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on the operator
	switch defn.Operator {
	case instructions.Brk:
		// this core models BRK as a halt rather than an interrupt through
		// the IRQ vector. no other state change
		mc.Halted = true

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Inx:
		mc.X.Add(1)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Nop:
		// does nothing

	default:
		return curated.Errorf(UnknownOperator, defn.Operator)
	}

	return nil
}
