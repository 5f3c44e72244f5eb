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

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Result records the outcome of the most recently executed instruction. It
// exists for the benefit of the debugger and has no effect on the emulation.
type Result struct {
	// the address of the opcode
	Address uint16

	// a reference to the instruction definition. nil when the CPU has just
	// been reset or when the opcode had no definition
	Defn *instructions.Definition

	// the operand as it appears in the instruction stream, if any
	InstructionData uint16

	// the number of bytes read during instruction decode
	ByteCount int
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}

	var operand string

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		// no operand to print
	case instructions.Immediate:
		operand = fmt.Sprintf(" #$%02x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf(" $%02x", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf(" $%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf(" $%02x,Y", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf(" $%04x", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf(" $%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf(" $%04x,Y", r.InstructionData)
	case instructions.PreIndexedIndirect:
		operand = fmt.Sprintf(" ($%02x,X)", r.InstructionData)
	case instructions.PostIndexedIndirect:
		operand = fmt.Sprintf(" ($%02x),Y", r.InstructionData)
	}

	return fmt.Sprintf("$%04x %s%s", r.Address, r.Defn.Operator, operand)
}
