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

// the subset of the 6502 instruction set implemented by this core. cycle
// counts are the official base counts; instructions marked PageSensitive
// take an extra cycle when indexing crosses a page boundary.
//
// extending the emulation to more of the instruction set means adding
// entries here and a corresponding operator case in the cpu package.
var definitions = []Definition{
	{OpCode: 0x00, Operator: Brk, Cycles: 7, AddressingMode: Implied, Effect: Interrupt},

	{OpCode: 0xa9, Operator: Lda, Cycles: 2, AddressingMode: Immediate},
	{OpCode: 0xa5, Operator: Lda, Cycles: 3, AddressingMode: ZeroPage},
	{OpCode: 0xb5, Operator: Lda, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	{OpCode: 0xad, Operator: Lda, Cycles: 4, AddressingMode: Absolute},
	{OpCode: 0xbd, Operator: Lda, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},
	{OpCode: 0xb9, Operator: Lda, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},
	{OpCode: 0xa1, Operator: Lda, Cycles: 6, AddressingMode: PreIndexedIndirect},
	{OpCode: 0xb1, Operator: Lda, Cycles: 5, AddressingMode: PostIndexedIndirect, PageSensitive: true},

	{OpCode: 0xa2, Operator: Ldx, Cycles: 2, AddressingMode: Immediate},
	{OpCode: 0xa6, Operator: Ldx, Cycles: 3, AddressingMode: ZeroPage},
	{OpCode: 0xb6, Operator: Ldx, Cycles: 4, AddressingMode: ZeroPageIndexedY},
	{OpCode: 0xae, Operator: Ldx, Cycles: 4, AddressingMode: Absolute},
	{OpCode: 0xbe, Operator: Ldx, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true},

	{OpCode: 0xa0, Operator: Ldy, Cycles: 2, AddressingMode: Immediate},
	{OpCode: 0xa4, Operator: Ldy, Cycles: 3, AddressingMode: ZeroPage},
	{OpCode: 0xb4, Operator: Ldy, Cycles: 4, AddressingMode: ZeroPageIndexedX},
	{OpCode: 0xac, Operator: Ldy, Cycles: 4, AddressingMode: Absolute},
	{OpCode: 0xbc, Operator: Ldy, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true},

	{OpCode: 0x85, Operator: Sta, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x95, Operator: Sta, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x8d, Operator: Sta, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x9d, Operator: Sta, Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write},
	{OpCode: 0x99, Operator: Sta, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write},
	{OpCode: 0x81, Operator: Sta, Cycles: 6, AddressingMode: PreIndexedIndirect, Effect: Write},
	{OpCode: 0x91, Operator: Sta, Cycles: 6, AddressingMode: PostIndexedIndirect, Effect: Write},

	{OpCode: 0x86, Operator: Stx, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x96, Operator: Stx, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write},
	{OpCode: 0x8e, Operator: Stx, Cycles: 4, AddressingMode: Absolute, Effect: Write},

	{OpCode: 0x84, Operator: Sty, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x94, Operator: Sty, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x8c, Operator: Sty, Cycles: 4, AddressingMode: Absolute, Effect: Write},

	{OpCode: 0xaa, Operator: Tax, Cycles: 2, AddressingMode: Implied},
	{OpCode: 0xa8, Operator: Tay, Cycles: 2, AddressingMode: Implied},
	{OpCode: 0x8a, Operator: Txa, Cycles: 2, AddressingMode: Implied},
	{OpCode: 0x98, Operator: Tya, Cycles: 2, AddressingMode: Implied},

	{OpCode: 0xe8, Operator: Inx, Cycles: 2, AddressingMode: Implied},
	{OpCode: 0xc8, Operator: Iny, Cycles: 2, AddressingMode: Implied},
	{OpCode: 0xca, Operator: Dex, Cycles: 2, AddressingMode: Implied},
	{OpCode: 0x88, Operator: Dey, Cycles: 2, AddressingMode: Implied},

	{OpCode: 0xea, Operator: Nop, Cycles: 2, AddressingMode: Implied},
}

// GetDefinitions returns the instruction table, indexed by opcode. Opcodes
// with no implementation are nil; fetching one of those is an
// UnimplementedInstruction error in the cpu package.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		defn := definitions[i]
		defn.Bytes = 1 + defn.AddressingMode.OperandBytes()
		table[defn.OpCode] = &defn
	}
	return table
}
