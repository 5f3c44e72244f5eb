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

package hardware

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/addresses"
	"github.com/jetsetilly/gophernes/logger"
)

// Error patterns surfaced by the NES type.
const (
	// the program given to Load() does not fit between the cartridge origin
	// and the vector area at the top of memory.
	ProgramTooLarge = "nes: program of %d bytes does not fit in cartridge space"
)

// NES is the main container for the emulated components of the console: the
// CPU and the memory it operates on. The memory is owned exclusively by the
// one CPU instance so an NES value must not be shared between goroutines;
// separate NES instances are fully independent and can run in parallel.
type NES struct {
	CPU *cpu.CPU
	Mem *memory.RAM
}

// NewNES creates a new NES and everything associated with the hardware.
func NewNES() *NES {
	nes := &NES{}
	nes.Mem = memory.NewRAM()
	nes.CPU = cpu.NewCPU(nes.Mem)
	return nes
}

// Load copies a program into memory at the cartridge origin, points the
// reset vector at it and resets the console. The program format is a flat
// byte sequence, as produced by the cartridgeloader package.
func (nes *NES) Load(program []uint8) error {
	// the program must not overrun the vector area at the top of memory
	if len(program) > int(addresses.Reset-addresses.CartridgeOrigin) {
		return curated.Errorf(ProgramTooLarge, len(program))
	}

	for i, b := range program {
		_ = nes.Mem.Write(addresses.CartridgeOrigin+uint16(i), b)
	}
	_ = nes.Mem.WriteWord(addresses.Reset, addresses.CartridgeOrigin)

	logger.Logf("nes", "loaded %d byte program at %#04x", len(program), addresses.CartridgeOrigin)

	return nes.Reset()
}

// Reset emulates the reset switch on the console: every register and flag
// to zero and the program counter loaded from the reset vector. The prior
// run state does not matter.
func (nes *NES) Reset() error {
	nes.CPU.Reset()
	return nes.CPU.LoadPCIndirect(addresses.Reset)
}
