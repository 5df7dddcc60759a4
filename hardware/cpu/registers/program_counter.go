// This file is part of R5.
//
// R5 is free software: you can redistribute it and/or modify it under the
// terms of the GNU General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later
// version.
//
// R5 is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.
//
// You should have received a copy of the GNU General Public License along
// with R5. If not, see <https://www.gnu.org/licenses/>.

package registers

import "fmt"

// ProgramCounter represents the PC of the RV64 CPU. The value is a byte
// address into instruction memory. The alignment invariant - the committed
// value is always a multiple of 4 - is enforced by the CPU before Load() is
// called, not here, because only the CPU knows whether a misaligned value
// should fault or never existed in the first place.
type ProgramCounter struct {
	value uint64
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter(val uint64) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns an identifying string for the PC.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#016x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint64 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint64) {
	pc.value = val
}

// Add a value to the PC. Wraps on overflow.
func (pc *ProgramCounter) Add(val uint64) {
	pc.value += val
}
