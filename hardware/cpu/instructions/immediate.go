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

// Immediate operands are stored in one of five formats, each scattering the
// immediate's bits across the instruction word in its own way, and are
// always sign-extended.

// signExtend treats the lowest width bits of v as a signed integer and
// extends its sign bit through the full 64 bits. Shifting the sign bit up to
// position 63 and arithmetic-shifting back down keeps the operation fully
// defined - Go specifies >> on signed integers as an arithmetic shift.
func signExtend(v uint64, width uint) int64 {
	return int64(v<<(64-width)) >> (64 - width)
}

// ImmI decodes the I-format immediate: bits 31:20, sign-extended from 12
// bits. Used by JALR, loads and the register-immediate arithmetic family.
func ImmI(insn uint32) int64 {
	return signExtend(uint64(insn)>>20, 12)
}

// ImmS decodes the S-format immediate: bits 31:25 and 11:7, sign-extended
// from 12 bits. Used by stores.
func ImmS(insn uint32) int64 {
	v := uint64(insn>>25)<<5 | uint64(insn>>7)&0x1f
	return signExtend(v, 12)
}

// ImmB decodes the B-format immediate: bit 31, bit 7, bits 30:25 and bits
// 11:8, in descending significance, with an implicit zero low bit.
// Sign-extended from 13 bits. Used by branches.
func ImmB(insn uint32) int64 {
	v := uint64(insn>>31)<<12 |
		uint64(insn>>7&0x1)<<11 |
		uint64(insn>>25&0x3f)<<5 |
		uint64(insn>>8&0xf)<<1
	return signExtend(v, 13)
}

// ImmU decodes the U-format immediate: bits 31:12 placed at bit position 12,
// with the low 12 bits zero. Sign-extended from its own bit 31. Used by LUI
// and AUIPC.
func ImmU(insn uint32) int64 {
	return signExtend(uint64(insn&0xfffff000), 32)
}

// ImmJ decodes the J-format immediate: bit 31, bits 19:12, bit 20 and bits
// 30:21, in descending significance, with an implicit zero low bit.
// Sign-extended from 21 bits. Used by JAL.
func ImmJ(insn uint32) int64 {
	v := uint64(insn>>31)<<20 |
		uint64(insn>>12&0xff)<<12 |
		uint64(insn>>20&0x1)<<11 |
		uint64(insn>>21&0x3ff)<<1
	return signExtend(v, 21)
}
