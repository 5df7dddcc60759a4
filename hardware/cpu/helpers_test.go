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

package cpu_test

// helpers_test.go contains the support code for the cpu_test package:
//
//   - mockBus, a little-endian memory satisfying the bus.CPUBus interface
//   - encoders for the six instruction formats
//   - step helpers asserting success, a classified fault, or state
//     preservation

import (
	"fmt"
	"testing"

	"github.com/adrian154/R5/curated"
	"github.com/adrian154/R5/hardware/cpu"
	"github.com/adrian154/R5/test"
)

type mockBus struct {
	data []uint8
}

func newMockBus() *mockBus {
	return &mockBus{data: make([]uint8, 0x1000)}
}

func (m *mockBus) read(addr uint64, width uint64) (uint64, error) {
	if addr >= uint64(len(m.data)) || addr+width > uint64(len(m.data)) {
		return 0, fmt.Errorf("bus: access outside memory (%#x)", addr)
	}
	var v uint64
	for i := width; i > 0; i-- {
		v = v<<8 | uint64(m.data[addr+i-1])
	}
	return v, nil
}

func (m *mockBus) write(addr uint64, width uint64, data uint64) error {
	if addr >= uint64(len(m.data)) || addr+width > uint64(len(m.data)) {
		return fmt.Errorf("bus: access outside memory (%#x)", addr)
	}
	for i := uint64(0); i < width; i++ {
		m.data[addr+i] = uint8(data >> (8 * i))
	}
	return nil
}

func (m *mockBus) Load8(addr uint64) (uint8, error) {
	v, err := m.read(addr, 1)
	return uint8(v), err
}

func (m *mockBus) Load16(addr uint64) (uint16, error) {
	v, err := m.read(addr, 2)
	return uint16(v), err
}

func (m *mockBus) Load32(addr uint64) (uint32, error) {
	v, err := m.read(addr, 4)
	return uint32(v), err
}

func (m *mockBus) Load64(addr uint64) (uint64, error) {
	return m.read(addr, 8)
}

func (m *mockBus) Store8(addr uint64, data uint8) error {
	return m.write(addr, 1, uint64(data))
}

func (m *mockBus) Store16(addr uint64, data uint16) error {
	return m.write(addr, 2, uint64(data))
}

func (m *mockBus) Store32(addr uint64, data uint32) error {
	return m.write(addr, 4, uint64(data))
}

func (m *mockBus) Store64(addr uint64, data uint64) error {
	return m.write(addr, 8, data)
}

// format encoders. the inverse of the instructions package decoders.

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

// step executes one instruction, asserting success.
func step(t *testing.T, mc *cpu.CPU, insn uint32) {
	t.Helper()
	test.ExpectedSuccess(t, mc.ExecuteInstruction(insn))
}

// stepFault executes one instruction, asserting that it faults with the
// given pattern and that the register file and PC are untouched.
func stepFault(t *testing.T, mc *cpu.CPU, insn uint32, pattern string) {
	t.Helper()

	before := mc.Snapshot()

	err := mc.ExecuteInstruction(insn)
	if !test.ExpectedFailure(t, err) {
		return
	}

	if !curated.Is(err, pattern) {
		t.Errorf("expected fault pattern (%s) but got (%v)", pattern, err)
	}

	test.Equate(t, mc.PC.Address(), before.PC.Address())
	for i := uint32(0); i < 32; i++ {
		test.Equate(t, mc.Regs.Value(i), before.Regs.Value(i))
	}
}
