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

package instructions_test

// helpers_test.go contains encoders for the six instruction formats. they
// are the inverse of the decode functions under test: given field values
// and an in-range immediate they construct the instruction word bit by bit,
// per the RV64I format diagrams.

func encodeR(opcode, funct7, rs2, rs1, funct3, rd uint32) uint32 {
	return funct7<<25 | rs2<<20 | rs1<<15 | funct3<<12 | rd<<7 | opcode
}

func encodeI(opcode uint32, imm int64, rs1, funct3, rd uint32) uint32 {
	return uint32(imm&0xfff)<<20 | rs1<<15 | funct3<<12 | rd<<7 | opcode
}

func encodeS(opcode uint32, imm int64, rs2, rs1, funct3 uint32) uint32 {
	i := uint32(imm & 0xfff)
	return (i>>5)<<25 | rs2<<20 | rs1<<15 | funct3<<12 | (i&0x1f)<<7 | opcode
}

func encodeB(opcode uint32, imm int64, rs2, rs1, funct3 uint32) uint32 {
	i := uint32(imm & 0x1fff)
	return (i>>12&0x1)<<31 | (i>>5&0x3f)<<25 | rs2<<20 | rs1<<15 |
		funct3<<12 | (i>>1&0xf)<<8 | (i>>11&0x1)<<7 | opcode
}

func encodeU(opcode uint32, imm int64, rd uint32) uint32 {
	return uint32(imm)&0xfffff000 | rd<<7 | opcode
}

func encodeJ(opcode uint32, imm int64, rd uint32) uint32 {
	i := uint32(imm & 0x1fffff)
	return (i>>20&0x1)<<31 | (i>>1&0x3ff)<<21 | (i>>11&0x1)<<20 |
		(i>>12&0xff)<<12 | rd<<7 | opcode
}
