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

// Package hardware ties the CPU and memory together into the NES type and
// provides the Load/Reset/Run lifecycle:
//
//	nes := hardware.NewNES()
//	err := nes.Load(program)
//	err = nes.Run(nil)
//
// Load() places the program at the cartridge origin and points the reset
// vector at it. Run() executes instructions until a BRK halts the CPU. The
// registers, flags and memory contents remain readable after the run, which
// is the surface the debugger and the test suites work with.
package hardware
