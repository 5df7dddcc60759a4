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

package cpu

import "github.com/adrian154/R5/curated"

// Fault patterns returned by ExecuteInstruction(). A fault is an
// architecturally defined condition that the surrounding system (eventually,
// the trap subsystem) must handle; the CPU itself never attempts recovery.
// Use curated.Is() with one of these patterns to classify, or IsFault() to
// separate faults from emulator errors such as a failing bus.
const (
	// the word does not decode to any defined instruction: unmatched opcode,
	// funct3 or funct7, or reserved immediate bits with a disallowed value.
	IllegalInstruction = "illegal instruction: %#08x"

	// a computed jump or branch target is not a multiple of 4.
	InstructionAddressMisaligned = "instruction address misaligned: %#x"
)

// IsFault checks if the error is one of the CPU's architectural faults.
func IsFault(err error) bool {
	return curated.Is(err, IllegalInstruction) ||
		curated.Is(err, InstructionAddressMisaligned)
}

func illegal(insn uint32) error {
	return curated.Errorf(IllegalInstruction, insn)
}

func misalignedFault(target uint64) error {
	return curated.Errorf(InstructionAddressMisaligned, target)
}

// misaligned tests a prospective PC value against the 4-byte instruction
// alignment requirement.
func misaligned(addr uint64) bool {
	return addr%4 != 0
}
