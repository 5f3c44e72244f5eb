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
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
)

// sentinal error pattern for the Check() function.
const CheckError = "performance: %v"

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu or
// memory profile as defined by the Profile argument. If the program halts
// with a BRK before the duration has elapsed the machine is reset and the
// program run again.
//
// The result, in instructions per second, is written to output.
func Check(output io.Writer, profile Profile, cartload *cartridgeloader.Loader, duration string) error {
	if err := cartload.Load(); err != nil {
		return curated.Errorf(CheckError, err)
	}

	nes := hardware.NewNES()
	if err := nes.Load(cartload.Data); err != nil {
		return curated.Errorf(CheckError, err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	numInstructions := 0

	// run for specified period of time
	runner := func() error {
		// expires when the measurement period has elapsed. buffered so the
		// timer goroutine never blocks if the run loop ends on an error
		// before the channel is drained
		timerChan := make(chan bool, 1)
		timer := time.AfterFunc(dur, func() {
			timerChan <- true
		})
		defer timer.Stop()

		// only check timerChan every PerformanceBrake CPU instructions.
		// checking the channel is relatively expensive
		performanceBrake := 0

		done := false
		for !done {
			err := nes.Run(func() (bool, error) {
				numInstructions++

				performanceBrake++
				if performanceBrake >= hardware.PerformanceBrake {
					performanceBrake = 0

					select {
					case <-timerChan:
						done = true
						return false, nil
					default:
					}
				}

				return true, nil
			})
			if err != nil {
				return err
			}

			// the program halted with a BRK before the measurement period
			// ran out. reset the machine and run it again
			if !done {
				if err := nes.Reset(); err != nil {
					return err
				}
			}
		}

		return nil
	}

	// launch runner directly or through a profiler, depending on supplied
	// arguments
	if err := RunProfiler(profile, runner); err != nil {
		return curated.Errorf(CheckError, err)
	}

	fmt.Fprintf(output, "%.0f instructions per second (%d instructions in %.2f seconds)\n",
		float64(numInstructions)/dur.Seconds(), numInstructions, dur.Seconds())

	return nil
}
