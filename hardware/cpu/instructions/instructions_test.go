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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/test"
)

// internal consistency of the instruction table. the cpu package trusts
// these properties so it's worth checking them whenever the table changes.
func TestTableConsistency(t *testing.T) {
	table := instructions.GetDefinitions()
	test.Equate(t, len(table), 256)

	for i, defn := range table {
		if defn == nil {
			continue
		}

		// the table index is the opcode
		test.Equate(t, int(defn.OpCode), i)

		// instruction length is the opcode plus the operand bytes of the
		// addressing mode
		test.Equate(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes())

		if defn.Cycles < 2 || defn.Cycles > 7 {
			t.Errorf("implausible cycle count for %s", defn)
		}

		// write instructions never use implied or immediate addressing
		if defn.Effect == instructions.Write {
			if defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Immediate {
				t.Errorf("write instruction with a valueless addressing mode: %s", defn)
			}
		}
	}
}

func TestExpectedOpcodes(t *testing.T) {
	table := instructions.GetDefinitions()

	// the skeleton opcodes named by the original 6502 documentation
	test.Equate(t, table[0x00].Operator.String(), "BRK")
	test.Equate(t, table[0xa9].Operator.String(), "LDA")
	test.Equate(t, table[0xaa].Operator.String(), "TAX")
	test.Equate(t, table[0xe8].Operator.String(), "INX")

	// every LDA addressing mode is present
	lda := []uint8{0xa9, 0xa5, 0xb5, 0xad, 0xbd, 0xb9, 0xa1, 0xb1}
	modes := make(map[instructions.AddressingMode]bool)
	for _, op := range lda {
		if table[op] == nil {
			t.Fatalf("missing LDA opcode %#02x", op)
		}
		test.Equate(t, table[op].Operator.String(), "LDA")
		modes[table[op].AddressingMode] = true
	}
	test.Equate(t, len(modes), len(lda))
}
