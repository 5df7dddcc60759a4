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

// Opcode values (instruction bits 6:0). The opcode selects the major
// instruction family and decides which of the remaining fields are
// meaningful.
const (
	OpcodeLUI     uint32 = 0x37
	OpcodeAUIPC   uint32 = 0x17
	OpcodeJAL     uint32 = 0x6f
	OpcodeJALR    uint32 = 0x67
	OpcodeBranch  uint32 = 0x63
	OpcodeLoad    uint32 = 0x03
	OpcodeStore   uint32 = 0x23
	OpcodeOpImm   uint32 = 0x13
	OpcodeOpImm32 uint32 = 0x1b
	OpcodeOp      uint32 = 0x33
	OpcodeOp32    uint32 = 0x3b
	OpcodeMiscMem uint32 = 0x0f
	OpcodeSystem  uint32 = 0x73
)

// funct3 values shared by the four arithmetic families (OP, OP-IMM, OP-32,
// OP-IMM-32). AluAddSub selects ADD or SUB and AluSRLSRA selects SRL or SRA,
// depending on the alternate funct7 bit (or the equivalent immediate bits in
// the shift-immediate forms). The word families only define AluAddSub,
// AluSLL and AluSRLSRA.
const (
	AluAddSub uint32 = 0x0
	AluSLL    uint32 = 0x1
	AluSLT    uint32 = 0x2
	AluSLTU   uint32 = 0x3
	AluXOR    uint32 = 0x4
	AluSRLSRA uint32 = 0x5
	AluOR     uint32 = 0x6
	AluAND    uint32 = 0x7
)

// funct7 values for the register-register families. Funct7Alt turns ADD into
// SUB and SRL into SRA. No other funct7 value is defined for the base
// integer set.
const (
	Funct7Base uint32 = 0x00
	Funct7Alt  uint32 = 0x20
)

// funct3 values for the branch family.
const (
	BranchBEQ  uint32 = 0x0
	BranchBNE  uint32 = 0x1
	BranchBLT  uint32 = 0x4
	BranchBGE  uint32 = 0x5
	BranchBLTU uint32 = 0x6
	BranchBGEU uint32 = 0x7
)

// funct3 values for the load family. The unsigned (zero-extending) forms
// exist for byte, half and word only - a doubleword load already fills the
// register.
const (
	LoadLB  uint32 = 0x0
	LoadLH  uint32 = 0x1
	LoadLW  uint32 = 0x2
	LoadLD  uint32 = 0x3
	LoadLBU uint32 = 0x4
	LoadLHU uint32 = 0x5
	LoadLWU uint32 = 0x6
)

// funct3 values for the store family.
const (
	StoreSB uint32 = 0x0
	StoreSH uint32 = 0x1
	StoreSW uint32 = 0x2
	StoreSD uint32 = 0x3
)

// funct3 values for the MISC-MEM and SYSTEM families. ECALL and EBREAK share
// the Funct3Priv code and are distinguished by the I-immediate.
const (
	Funct3Fence uint32 = 0x0
	Funct3Priv  uint32 = 0x0
)

// fence mode values (instruction bits 31:28). a TSO fence imposes a stricter
// ordering than the predecessor/successor sets alone would.
const (
	FenceModeNormal uint32 = 0x0
	FenceModeTSO    uint32 = 0x8
)
