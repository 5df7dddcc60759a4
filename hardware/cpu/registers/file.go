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

import (
	"fmt"
	"strings"
)

// File is the general purpose register file: 32 registers of 64 bits each.
//
// Register x0 is hardwired to zero. The guard is on the write side so a
// value destined for x0 is discarded before it can ever be observed, rather
// than masked on read after the fact.
type File struct {
	regs [32]uint64
}

// Value returns the current value of the register.
func (f *File) Value(reg uint32) uint64 {
	return f.regs[reg&0x1f]
}

// Load a value into the register. Writes targeting x0 are discarded.
func (f *File) Load(reg uint32, val uint64) {
	if reg&0x1f == 0 {
		return
	}
	f.regs[reg&0x1f] = val
}

// Reset zeroes every register.
func (f *File) Reset() {
	f.regs = [32]uint64{}
}

func (f *File) String() string {
	s := strings.Builder{}
	for i, v := range f.regs {
		s.WriteString(fmt.Sprintf("x%-2d=%#016x", i, v))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	return s.String()
}
