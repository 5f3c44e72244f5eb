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

package debugger

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/easyterm"
	"github.com/jetsetilly/gophernes/hardware"
)

// sentinal error returned when the debugger cannot be started.
const StartError = "debugger: %v"

// Debugger is the front-end for an interactive session with the emulated
// machine.
type Debugger struct {
	nes  *hardware.NES
	term easyterm.Terminal

	// buffered reader for the occasions when we need a whole line of input,
	// rather than a single key (the memory dump command)
	line *bufio.Reader

	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(nes *hardware.NES) *Debugger {
	return &Debugger{
		nes:  nes,
		line: bufio.NewReader(os.Stdin),
	}
}

// Start the debugger session. The supplied Loader is used to load the
// program into the machine before the command loop begins.
func (dbg *Debugger) Start(cartload *cartridgeloader.Loader) error {
	if err := cartload.Load(); err != nil {
		return curated.Errorf(StartError, err)
	}

	if err := dbg.nes.Load(cartload.Data); err != nil {
		return curated.Errorf(StartError, err)
	}

	if err := dbg.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return curated.Errorf(StartError, err)
	}
	defer dbg.term.CleanUp()

	dbg.term.Print("%s loaded. press h for help\n", cartload.ShortName())
	dbg.running = true

	for dbg.running {
		dbg.term.CBreakMode()
		key, err := dbg.term.ReadKey()
		dbg.term.CanonicalMode()
		if err != nil {
			return curated.Errorf(StartError, err)
		}

		if err := dbg.command(key); err != nil {
			dbg.term.Print("error: %v\n", err)
		}
	}

	return nil
}

func (dbg *Debugger) command(key byte) error {
	switch key {
	case 's':
		if err := dbg.nes.Step(); err != nil {
			return err
		}
		dbg.term.Print("%s\n", dbg.nes.CPU.LastResult.String())
		if dbg.nes.CPU.Halted {
			dbg.term.Print("cpu halted\n")
		}

	case 'r':
		if err := dbg.nes.Run(func() (bool, error) {
			return true, nil
		}); err != nil {
			return err
		}
		dbg.term.Print("%s\n", dbg.nes.CPU.LastResult.String())
		dbg.term.Print("cpu halted\n")

	case 'p':
		dbg.printRegisters()

	case 'm':
		return dbg.dumpMemory()

	case 'x':
		if err := dbg.nes.Reset(); err != nil {
			return err
		}
		dbg.term.Print("machine reset\n")

	case 'h':
		dbg.term.Print("s step    r run to halt    p registers\n")
		dbg.term.Print("m memory  x reset          q quit\n")

	case 'q', easyterm.KeyInterrupt:
		dbg.running = false
	}

	return nil
}

func (dbg *Debugger) printRegisters() {
	cpu := dbg.nes.CPU
	dbg.term.Print("%s %s %s %s %s\n", cpu.PC, cpu.A, cpu.X, cpu.Y, cpu.Status)
}

// dumpMemory asks for an address on a fresh line of input and prints the 64
// bytes of memory that follow it.
func (dbg *Debugger) dumpMemory() error {
	dbg.term.Print("address: ")

	s, err := dbg.line.ReadString('\n')
	if err != nil {
		return err
	}

	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	addr, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return err
	}

	for row := 0; row < 4; row++ {
		dbg.term.Print("%04x: ", uint16(addr))
		for col := 0; col < 16; col++ {
			v, err := dbg.nes.Mem.Read(uint16(addr))
			if err != nil {
				return err
			}
			dbg.term.Print("%02x ", v)
			addr++
		}
		dbg.term.Print("\n")
	}

	return nil
}
