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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first call NewArgs() with the array
// of arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once arguments have been parsed, non-flag arguments can be retrieved with
// the RemainingArgs() or GetArg() function.
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, much like the sub-commands of the go command.
// Modes are declared with the AddSubModes() function before the call to
// Parse(). The first sub-mode in the list is the default, used when the
// first argument does not name a mode. Sub-mode comparisons are case
// insensitive.
//
//	md.AddSubModes("run", "debug", "performance")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		...
//	}
//
// After a mode has been selected, NewMode() begins a fresh flagset for the
// arguments that follow, and Parse() can be called again. Modes can be
// chained together as deep as required.
package modalflag
