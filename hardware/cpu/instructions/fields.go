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

package instructions

// Fields are the fixed-position fields of an instruction word. Every word
// has all of them; the opcode decides which ones carry meaning and the rest
// are simply ignored.
type Fields struct {
	Opcode uint32 // bits 6:0
	Rd     uint32 // bits 11:7
	Funct3 uint32 // bits 14:12
	Rs1    uint32 // bits 19:15
	Rs2    uint32 // bits 24:20
	Funct7 uint32 // bits 31:25
}

// Decode extracts the fixed-position fields from an instruction word. Pure
// field extraction - no validation and no side effects.
func Decode(insn uint32) Fields {
	return Fields{
		Opcode: insn & 0x7f,
		Rd:     (insn >> 7) & 0x1f,
		Funct3: (insn >> 12) & 0x7,
		Rs1:    (insn >> 15) & 0x1f,
		Rs2:    (insn >> 20) & 0x1f,
		Funct7: insn >> 25,
	}
}
