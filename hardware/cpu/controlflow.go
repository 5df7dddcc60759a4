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

import (
	"github.com/adrian154/R5/hardware/cpu/instructions"
)

// The control flow unit. Every function here observes the same discipline:
// the target is computed and alignment-checked before anything - link
// register or PC - is committed. A faulting jump or branch leaves the CPU
// exactly as it was.
//
// The boolean return reports whether a new PC was committed, in which case
// the default +4 advance must not additionally apply.

// jal implements JAL: PC-relative jump with a link write. Using x0 as the
// link register turns it into a plain unconditional jump.
func (mc *CPU) jal(insn uint32, f instructions.Fields) (bool, error) {
	target := mc.PC.Address() + uint64(instructions.ImmJ(insn))
	if misaligned(target) {
		return false, misalignedFault(target)
	}

	mc.Regs.Load(f.Rd, mc.PC.Address()+4)
	mc.PC.Load(target)
	return true, nil
}

// jalr implements JALR: register-relative jump with a link write. The
// computed target has its least significant bit forced to zero, so the only
// possible misalignment is a target of 2 modulo 4.
func (mc *CPU) jalr(insn uint32, f instructions.Fields) (bool, error) {
	if f.Funct3 != 0x0 {
		return false, illegal(insn)
	}

	target := (mc.Regs.Value(f.Rs1) + uint64(instructions.ImmI(insn))) &^ 1
	if misaligned(target) {
		return false, misalignedFault(target)
	}

	mc.Regs.Load(f.Rd, mc.PC.Address()+4)
	mc.PC.Load(target)
	return true, nil
}

// branch implements the conditional branch family. A branch that is not
// taken computes no target and the default PC advance applies.
func (mc *CPU) branch(insn uint32, f instructions.Fields) (bool, error) {
	rs1 := mc.Regs.Value(f.Rs1)
	rs2 := mc.Regs.Value(f.Rs2)

	var take bool

	switch f.Funct3 {
	case instructions.BranchBEQ:
		take = rs1 == rs2
	case instructions.BranchBNE:
		take = rs1 != rs2
	case instructions.BranchBLT:
		take = int64(rs1) < int64(rs2)
	case instructions.BranchBGE:
		take = int64(rs1) >= int64(rs2)
	case instructions.BranchBLTU:
		take = rs1 < rs2
	case instructions.BranchBGEU:
		take = rs1 >= rs2
	default:
		return false, illegal(insn)
	}

	if !take {
		return false, nil
	}

	target := mc.PC.Address() + uint64(instructions.ImmB(insn))
	if misaligned(target) {
		return false, misalignedFault(target)
	}

	mc.PC.Load(target)
	return true, nil
}
