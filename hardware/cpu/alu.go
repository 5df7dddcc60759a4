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

// The integer arithmetic families. Four dispatch tables - register-immediate
// and register-register, each in a 64-bit and a 32-bit "word" form. The word
// forms operate on the low 32 bits of their operands and always sign-extend
// the 32-bit result to the full register width, whether the operation is
// arithmetic or bitwise.

// arithmetic right shifts are implemented in one place. Go defines >> on a
// signed integer as an arithmetic shift, so converting through the signed
// type is sufficient and fully portable.
func sra64(v uint64, shamt uint64) uint64 {
	return uint64(int64(v) >> shamt)
}

func sra32(v uint32, shamt uint64) uint32 {
	return uint32(int32(v) >> shamt)
}

// signExtend32 widens a 32-bit result to the full register width.
func signExtend32(v uint32) uint64 {
	return uint64(int64(int32(v)))
}

// condition converts a comparison result to the 0-or-1 the SLT group writes.
func condition(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// masks carving the shift-type and shift-amount parts out of a shift
// immediate. the 64-bit forms take a 6-bit shift amount, the word forms a
// 5-bit one; everything above the shift amount must be zero, or the SRA
// pattern (funct7 alternate bit, seen through the immediate) for the
// arithmetic right shifts.
const (
	shiftTypeMask64   = 0xfc0
	shiftAmountMask64 = 0x3f
	shiftTypeMask32   = 0xfe0
	shiftAmountMask32 = 0x1f
	shiftTypeSRA      = 0x400
)

// opImm implements the register-immediate family (full 64-bit width).
func (mc *CPU) opImm(insn uint32, f instructions.Fields) error {
	rs1 := mc.Regs.Value(f.Rs1)
	imm := uint64(instructions.ImmI(insn))

	var result uint64

	switch f.Funct3 {
	case instructions.AluAddSub:
		result = rs1 + imm

	case instructions.AluSLT:
		result = condition(int64(rs1) < int64(imm))

	case instructions.AluSLTU:
		result = condition(rs1 < imm)

	case instructions.AluXOR:
		result = rs1 ^ imm

	case instructions.AluOR:
		result = rs1 | imm

	case instructions.AluAND:
		result = rs1 & imm

	case instructions.AluSLL:
		if imm&shiftTypeMask64 != 0 {
			return illegal(insn)
		}
		result = rs1 << (imm & shiftAmountMask64)

	case instructions.AluSRLSRA:
		shamt := imm & shiftAmountMask64
		switch imm & shiftTypeMask64 {
		case 0:
			result = rs1 >> shamt
		case shiftTypeSRA:
			result = sra64(rs1, shamt)
		default:
			return illegal(insn)
		}

	default:
		return illegal(insn)
	}

	mc.Regs.Load(f.Rd, result)
	return nil
}

// opOp implements the register-register family (full 64-bit width). funct7
// distinguishes ADD from SUB and SRL from SRA; for every other funct3 code
// only the base funct7 value is defined.
func (mc *CPU) opOp(insn uint32, f instructions.Fields) error {
	rs1 := mc.Regs.Value(f.Rs1)
	rs2 := mc.Regs.Value(f.Rs2)

	var result uint64

	switch f.Funct3 {
	case instructions.AluAddSub:
		switch f.Funct7 {
		case instructions.Funct7Base:
			result = rs1 + rs2
		case instructions.Funct7Alt:
			result = rs1 - rs2
		default:
			return illegal(insn)
		}

	case instructions.AluSRLSRA:
		shamt := rs2 & shiftAmountMask64
		switch f.Funct7 {
		case instructions.Funct7Base:
			result = rs1 >> shamt
		case instructions.Funct7Alt:
			result = sra64(rs1, shamt)
		default:
			return illegal(insn)
		}

	default:
		if f.Funct7 != instructions.Funct7Base {
			return illegal(insn)
		}

		switch f.Funct3 {
		case instructions.AluSLL:
			result = rs1 << (rs2 & shiftAmountMask64)
		case instructions.AluSLT:
			result = condition(int64(rs1) < int64(rs2))
		case instructions.AluSLTU:
			result = condition(rs1 < rs2)
		case instructions.AluXOR:
			result = rs1 ^ rs2
		case instructions.AluOR:
			result = rs1 | rs2
		case instructions.AluAND:
			result = rs1 & rs2
		}
	}

	mc.Regs.Load(f.Rd, result)
	return nil
}

// opImm32 implements the register-immediate word family. Only ADDIW, SLLIW,
// SRLIW and SRAIW exist.
func (mc *CPU) opImm32(insn uint32, f instructions.Fields) error {
	rs1 := uint32(mc.Regs.Value(f.Rs1))
	imm := uint64(instructions.ImmI(insn))

	var result uint32

	switch f.Funct3 {
	case instructions.AluAddSub:
		result = rs1 + uint32(imm)

	case instructions.AluSLL:
		if imm&shiftTypeMask32 != 0 {
			return illegal(insn)
		}
		result = rs1 << (imm & shiftAmountMask32)

	case instructions.AluSRLSRA:
		shamt := imm & shiftAmountMask32
		switch imm & shiftTypeMask32 {
		case 0:
			result = rs1 >> shamt
		case shiftTypeSRA:
			result = sra32(rs1, shamt)
		default:
			return illegal(insn)
		}

	default:
		return illegal(insn)
	}

	mc.Regs.Load(f.Rd, signExtend32(result))
	return nil
}

// opOp32 implements the register-register word family. Only ADDW, SUBW,
// SLLW, SRLW and SRAW exist.
func (mc *CPU) opOp32(insn uint32, f instructions.Fields) error {
	rs1 := uint32(mc.Regs.Value(f.Rs1))
	rs2 := mc.Regs.Value(f.Rs2)

	var result uint32

	switch f.Funct3 {
	case instructions.AluAddSub:
		switch f.Funct7 {
		case instructions.Funct7Base:
			result = rs1 + uint32(rs2)
		case instructions.Funct7Alt:
			result = rs1 - uint32(rs2)
		default:
			return illegal(insn)
		}

	case instructions.AluSLL:
		if f.Funct7 != instructions.Funct7Base {
			return illegal(insn)
		}
		result = rs1 << (rs2 & shiftAmountMask32)

	case instructions.AluSRLSRA:
		shamt := rs2 & shiftAmountMask32
		switch f.Funct7 {
		case instructions.Funct7Base:
			result = rs1 >> shamt
		case instructions.Funct7Alt:
			result = sra32(rs1, shamt)
		default:
			return illegal(insn)
		}

	default:
		return illegal(insn)
	}

	mc.Regs.Load(f.Rd, signExtend32(result))
	return nil
}
