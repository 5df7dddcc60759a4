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

import "fmt"

// reg formats a register index.
func reg(i uint32) string {
	return fmt.Sprintf("x%d", i)
}

func unknown(insn uint32) string {
	return fmt.Sprintf("unknown (%#08x)", insn)
}

var branchMnemonics = map[uint32]string{
	BranchBEQ:  "beq",
	BranchBNE:  "bne",
	BranchBLT:  "blt",
	BranchBGE:  "bge",
	BranchBLTU: "bltu",
	BranchBGEU: "bgeu",
}

var loadMnemonics = map[uint32]string{
	LoadLB:  "lb",
	LoadLH:  "lh",
	LoadLW:  "lw",
	LoadLD:  "ld",
	LoadLBU: "lbu",
	LoadLHU: "lhu",
	LoadLWU: "lwu",
}

var storeMnemonics = map[uint32]string{
	StoreSB: "sb",
	StoreSH: "sh",
	StoreSW: "sw",
	StoreSD: "sd",
}

var opMnemonics = map[uint32][2]string{
	AluAddSub: {"add", "sub"},
	AluSLL:    {"sll", ""},
	AluSLT:    {"slt", ""},
	AluSLTU:   {"sltu", ""},
	AluXOR:    {"xor", ""},
	AluSRLSRA: {"srl", "sra"},
	AluOR:     {"or", ""},
	AluAND:    {"and", ""},
}

var opImmMnemonics = map[uint32]string{
	AluAddSub: "addi",
	AluSLT:    "slti",
	AluSLTU:   "sltiu",
	AluXOR:    "xori",
	AluOR:     "ori",
	AluAND:    "andi",
}

// Mnemonic returns the assembly language representation of an instruction
// word. Words that do not decode to a defined instruction are rendered as
// "unknown" with the raw value.
func Mnemonic(insn uint32) string {
	f := Decode(insn)

	switch f.Opcode {
	case OpcodeLUI:
		return fmt.Sprintf("lui %s, %#x", reg(f.Rd), insn>>12)

	case OpcodeAUIPC:
		return fmt.Sprintf("auipc %s, %#x", reg(f.Rd), insn>>12)

	case OpcodeJAL:
		return fmt.Sprintf("jal %s, %d", reg(f.Rd), ImmJ(insn))

	case OpcodeJALR:
		if f.Funct3 != 0x0 {
			return unknown(insn)
		}
		return fmt.Sprintf("jalr %s, %d(%s)", reg(f.Rd), ImmI(insn), reg(f.Rs1))

	case OpcodeBranch:
		m, ok := branchMnemonics[f.Funct3]
		if !ok {
			return unknown(insn)
		}
		return fmt.Sprintf("%s %s, %s, %d", m, reg(f.Rs1), reg(f.Rs2), ImmB(insn))

	case OpcodeLoad:
		m, ok := loadMnemonics[f.Funct3]
		if !ok {
			return unknown(insn)
		}
		return fmt.Sprintf("%s %s, %d(%s)", m, reg(f.Rd), ImmI(insn), reg(f.Rs1))

	case OpcodeStore:
		m, ok := storeMnemonics[f.Funct3]
		if !ok {
			return unknown(insn)
		}
		return fmt.Sprintf("%s %s, %d(%s)", m, reg(f.Rs2), ImmS(insn), reg(f.Rs1))

	case OpcodeOpImm:
		return opImmMnemonic(insn, f, "", 0xfc0, 0x3f)

	case OpcodeOpImm32:
		switch f.Funct3 {
		case AluAddSub, AluSLL, AluSRLSRA:
			return opImmMnemonic(insn, f, "w", 0xfe0, 0x1f)
		}
		return unknown(insn)

	case OpcodeOp:
		return opMnemonic(insn, f, "")

	case OpcodeOp32:
		switch f.Funct3 {
		case AluAddSub, AluSLL, AluSRLSRA:
			return opMnemonic(insn, f, "w")
		}
		return unknown(insn)

	case OpcodeMiscMem:
		if f.Funct3 != Funct3Fence {
			return unknown(insn)
		}
		if insn>>28 == FenceModeTSO {
			return "fence.tso"
		}
		return "fence"

	case OpcodeSystem:
		if f.Funct3 != Funct3Priv {
			return unknown(insn)
		}
		switch ImmI(insn) {
		case 0:
			return "ecall"
		case 1:
			return "ebreak"
		}
		return unknown(insn)
	}

	return unknown(insn)
}

// opImmMnemonic handles the register-immediate arithmetic families. The
// suffix distinguishes the word forms; typeMask/shamtMask carve the shift
// immediate into its shift-type and shift-amount parts.
func opImmMnemonic(insn uint32, f Fields, suffix string, typeMask, shamtMask uint64) string {
	imm := uint64(ImmI(insn))

	switch f.Funct3 {
	case AluSLL:
		if imm&typeMask != 0 {
			return unknown(insn)
		}
		return fmt.Sprintf("slli%s %s, %s, %d", suffix, reg(f.Rd), reg(f.Rs1), imm&shamtMask)

	case AluSRLSRA:
		var m string
		switch imm & typeMask {
		case 0:
			m = "srli"
		case 0x400:
			m = "srai"
		default:
			return unknown(insn)
		}
		return fmt.Sprintf("%s%s %s, %s, %d", m, suffix, reg(f.Rd), reg(f.Rs1), imm&shamtMask)
	}

	m, ok := opImmMnemonics[f.Funct3]
	if !ok {
		return unknown(insn)
	}
	if suffix != "" && f.Funct3 != AluAddSub {
		return unknown(insn)
	}
	return fmt.Sprintf("%s%s %s, %s, %d", m, suffix, reg(f.Rd), reg(f.Rs1), ImmI(insn))
}

// opMnemonic handles the register-register arithmetic families.
func opMnemonic(insn uint32, f Fields, suffix string) string {
	m, ok := opMnemonics[f.Funct3]
	if !ok {
		return unknown(insn)
	}

	var name string
	switch f.Funct7 {
	case Funct7Base:
		name = m[0]
	case Funct7Alt:
		name = m[1]
	}
	if name == "" {
		return unknown(insn)
	}

	return fmt.Sprintf("%s%s %s, %s, %s", name, suffix, reg(f.Rd), reg(f.Rs1), reg(f.Rs2))
}
