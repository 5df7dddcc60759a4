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

import (
	"testing"

	"github.com/adrian154/R5/curated"
	"github.com/adrian154/R5/hardware/cpu"
	"github.com/adrian154/R5/hardware/cpu/instructions"
	"github.com/adrian154/R5/test"
)

func TestZeroRegister(t *testing.T) {
	mem := newMockBus()
	mc := cpu.NewCPU(mem)

	// any write targeting x0 is discarded, whatever the family
	step(t, mc, encodeI(instructions.OpcodeOpImm, 42, 0, instructions.AluAddSub, 0))
	test.Equate(t, mc.Regs.Value(0), 0)

	step(t, mc, encodeU(instructions.OpcodeLUI, 0x12345000, 0))
	test.Equate(t, mc.Regs.Value(0), 0)

	// a load into x0 still performs the memory access but discards the value
	mem.data[0x10] = 0xff
	step(t, mc, encodeI(instructions.OpcodeLoad, 0x10, 0, instructions.LoadLBU, 0))
	test.Equate(t, mc.Regs.Value(0), 0)

	// the instructions above still advance the PC normally
	test.Equate(t, mc.PC.Address(), 12)
}

func TestDefaultAdvance(t *testing.T) {
	mc := cpu.NewCPU(newMockBus())

	// every non-control-flow instruction advances the PC by exactly 4
	for i, insn := range []uint32{
		encodeI(instructions.OpcodeOpImm, 1, 1, instructions.AluAddSub, 1),
		encodeU(instructions.OpcodeAUIPC, 0, 2),
		encodeR(instructions.OpcodeOp, instructions.Funct7Base, 1, 1, instructions.AluXOR, 3),
		encodeFence(instructions.FenceModeNormal),
	} {
		step(t, mc, insn)
		test.Equate(t, mc.PC.Address(), (i+1)*4)
	}
}

func TestFence(t *testing.T) {
	mc := cpu.NewCPU(newMockBus())

	// a normal fence is a no-op that advances the PC
	step(t, mc, encodeFence(instructions.FenceModeNormal))
	test.Equate(t, mc.PC.Address(), 4)

	// fence.tso likewise
	step(t, mc, encodeFence(instructions.FenceModeTSO))
	test.Equate(t, mc.PC.Address(), 8)

	// other funct3 codes in the MISC-MEM family (FENCE.I belongs to the
	// Zifencei extension) are undefined here
	stepFault(t, mc, encodeI(instructions.OpcodeMiscMem, 0, 0, 0x1, 0), cpu.IllegalInstruction)
}

func TestSystem(t *testing.T) {
	mc := cpu.NewCPU(newMockBus())

	// ecall and ebreak are legal encodings and commit the PC advance
	step(t, mc, encodeI(instructions.OpcodeSystem, 0, 0, instructions.Funct3Priv, 0))
	test.Equate(t, mc.PC.Address(), 4)
	step(t, mc, encodeI(instructions.OpcodeSystem, 1, 0, instructions.Funct3Priv, 0))
	test.Equate(t, mc.PC.Address(), 8)

	// other immediates in the privileged space are undefined in the base set
	stepFault(t, mc, encodeI(instructions.OpcodeSystem, 2, 0, instructions.Funct3Priv, 0), cpu.IllegalInstruction)

	// the CSR funct3 codes belong to the Zicsr extension
	stepFault(t, mc, encodeI(instructions.OpcodeSystem, 0, 0, 0x1, 0), cpu.IllegalInstruction)
	stepFault(t, mc, encodeI(instructions.OpcodeSystem, 0, 0, 0x2, 0), cpu.IllegalInstruction)

	// ecall/ebreak require rd and rs1 to be zero
	stepFault(t, mc, encodeI(instructions.OpcodeSystem, 0, 0, instructions.Funct3Priv, 1), cpu.IllegalInstruction)
	stepFault(t, mc, encodeI(instructions.OpcodeSystem, 0, 1, instructions.Funct3Priv, 0), cpu.IllegalInstruction)
}

func TestUnknownOpcode(t *testing.T) {
	mc := cpu.NewCPU(newMockBus())

	// 0x00000000 and 0xffffffff are both defined to be illegal, which traps
	// runaway execution through zeroed or erased memory
	stepFault(t, mc, 0x00000000, cpu.IllegalInstruction)
	stepFault(t, mc, 0xffffffff, cpu.IllegalInstruction)

	// opcodes from unimplemented extensions (0x57 is the F/D arithmetic
	// opcode)
	stepFault(t, mc, 0x00000057, cpu.IllegalInstruction)
	stepFault(t, mc, 0x0000002f, cpu.IllegalInstruction)
}

func TestFaultClassification(t *testing.T) {
	mc := cpu.NewCPU(newMockBus())

	// the two fault patterns can be distinguished with curated.Is and
	// recognised collectively with IsFault
	err := mc.ExecuteInstruction(0x00000000)
	test.ExpectedSuccess(t, curated.Is(err, cpu.IllegalInstruction))
	test.ExpectedFailure(t, curated.Is(err, cpu.InstructionAddressMisaligned))
	test.ExpectedSuccess(t, curated.IsAny(err))
	test.ExpectedSuccess(t, cpu.IsFault(err))

	mc.Regs.Load(1, 0x2) // misaligned jalr target
	err = mc.ExecuteInstruction(encodeI(instructions.OpcodeJALR, 0, 1, 0x0, 0))
	test.ExpectedSuccess(t, curated.Is(err, cpu.InstructionAddressMisaligned))
	test.ExpectedFailure(t, curated.Is(err, cpu.IllegalInstruction))
	test.ExpectedSuccess(t, cpu.IsFault(err))

	// a nil error is not a fault
	test.ExpectedFailure(t, cpu.IsFault(nil))
}

func TestReset(t *testing.T) {
	mc := cpu.NewCPU(newMockBus())

	mc.Regs.Load(1, 42)
	mc.PC.Load(0x1000)
	mc.Privilege = cpu.User

	mc.Reset()
	test.Equate(t, mc.Regs.Value(1), 0)
	test.Equate(t, mc.PC.Address(), 0)
	test.Equate(t, mc.Privilege == cpu.Machine, true)
}

func TestSnapshotPlumb(t *testing.T) {
	mc := cpu.NewCPU(newMockBus())

	mc.Regs.Load(1, 42)
	mc.PC.Load(0x1000)

	// a snapshot is a genuine copy: stepping the original must not move it
	sn := mc.Snapshot()
	step(t, mc, encodeI(instructions.OpcodeOpImm, 1, 1, instructions.AluAddSub, 1))
	test.Equate(t, sn.Regs.Value(1), 42)
	test.Equate(t, sn.PC.Address(), uint64(0x1000))
	test.Equate(t, mc.Regs.Value(1), 43)

	// a rewired snapshot executes independently against its own memory
	sn.Plumb(newMockBus())
	step(t, sn, encodeI(instructions.OpcodeOpImm, 8, 1, instructions.AluAddSub, 2))
	test.Equate(t, sn.Regs.Value(2), 50)
	test.Equate(t, mc.Regs.Value(2), 0)
}

// encodeFence builds a FENCE instruction with full predecessor and successor
// sets and the given mode bits.
func encodeFence(mode uint32) uint32 {
	return mode<<28 | 0xff<<20 | instructions.Funct3Fence<<12 | instructions.OpcodeMiscMem
}
