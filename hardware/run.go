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
	"github.com/jetsetilly/gophernes/logger"
)

// The continueCheck() function runs after every CPU instruction and a full
// check every time can be expensive. The PerformanceBrake is a standard
// value that can be used to filter out expensive code paths within a
// continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The loop ends when
// a BRK instruction halts the CPU, when continueCheck returns false, or on
// the first error.
//
// There is no automatic re-entry after a halt: a later call to Run resumes
// from wherever the program counter is pointing, unless Load() or Reset()
// is called first.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	nes.CPU.Halted = false

	for !nes.CPU.Halted {
		if err := nes.CPU.ExecuteInstruction(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	logger.Logf("nes", "halted by BRK at %#04x", nes.CPU.LastResult.Address)

	return nil
}

// Step the emulation one CPU instruction. Used by the debugger.
func (nes *NES) Step() error {
	return nes.CPU.ExecuteInstruction()
}
