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

package performance

import (
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/pkg/profile"
)

// sentinal error pattern for unrecognised profile names.
const UnknownProfile = "performance: unknown profile type (%s)"

// Profile describes the type of profile the RunProfiler() function should
// generate.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
)

// ParseProfile converts a string name, from the command line for example,
// to a Profile value. Comparisons are case insensitive.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	}
	return ProfileNone, curated.Errorf(UnknownProfile, s)
}

// RunProfiler runs the supplied function through the profiler indicated by
// the Profile argument. Profile reports are written to the current
// directory.
//
// On its own it does not limit the amount of time the function runs for, so
// it is also useful outside of the Check() function.
func RunProfiler(prof Profile, run func() error) error {
	switch prof {
	case ProfileNone:
		return run()
	case ProfileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		return run()
	case ProfileMem:
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		return run()
	}
	return curated.Errorf(UnknownProfile, "unrecognised")
}
