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

package instructions

import "fmt"

// Operator is the tag for the instruction operation, independent of
// addressing mode. The CPU dispatches on the Operator of the definition it
// has looked up, never on the raw opcode value.
type Operator int

// List of implemented operators.
const (
	Brk Operator = iota
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty
	Tax
	Tay
	Txa
	Tya
	Inx
	Iny
	Dex
	Dey
	Nop
)

func (op Operator) String() string {
	switch op {
	case Brk:
		return "BRK"
	case Lda:
		return "LDA"
	case Ldx:
		return "LDX"
	case Ldy:
		return "LDY"
	case Sta:
		return "STA"
	case Stx:
		return "STX"
	case Sty:
		return "STY"
	case Tax:
		return "TAX"
	case Tay:
		return "TAY"
	case Txa:
		return "TXA"
	case Tya:
		return "TYA"
	case Inx:
		return "INX"
	case Iny:
		return "INY"
	case Dex:
		return "DEX"
	case Dey:
		return "DEY"
	case Nop:
		return "NOP"
	}
	return "unknown operator"
}

// AddressingMode describes the method by which an instruction receives data
// on which to operate.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate

	Absolute // abs
	ZeroPage // zpg

	PreIndexedIndirect  // (ind,X)
	PostIndexedIndirect // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case PreIndexedIndirect:
		return "PreIndexedIndirect"
	case PostIndexedIndirect:
		return "PostIndexedIndirect"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of operand bytes the addressing mode
// consumes from the instruction stream.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied:
		return 0
	case Immediate, ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY,
		PreIndexedIndirect, PostIndexedIndirect:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY:
		return 2
	}
	return 0
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	Interrupt
)

// Definition defines each instruction in the instruction set; one entry per
// opcode. The table in this package is static data - dispatch logic lives in
// the cpu package and metadata lives here.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%d]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}
