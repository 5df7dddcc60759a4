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
	"fmt"

	"github.com/adrian154/R5/hardware/cpu/instructions"
	"github.com/adrian154/R5/hardware/cpu/registers"
	"github.com/adrian154/R5/hardware/memory/bus"
	"github.com/adrian154/R5/logger"
)

// CPU implements a single RV64I hart. Register logic is implemented by the
// types in the registers sub-package.
type CPU struct {
	Regs registers.File
	PC   registers.ProgramCounter

	// the current privilege level. enumerated only - nothing in the core
	// changes it yet.
	Privilege PrivilegeLevel

	mem bus.CPUBus
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// reset vector and initial register contents are the loader's business;
// everything starts at zero here.
func NewCPU(mem bus.CPUBus) *CPU {
	return &CPU{
		PC:        registers.NewProgramCounter(0),
		Privilege: Machine,
		mem:       mem,
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new CPUBus into the CPU.
func (mc *CPU) Plumb(mem bus.CPUBus) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s priv=%s\n%s", mc.PC.Label(), mc.PC, mc.Privilege, &mc.Regs)
}

// Reset zeroes all registers and the PC and returns the hart to machine
// level. It does not load a reset vector; use PC.Load() when appropriate.
func (mc *CPU) Reset() {
	mc.Regs.Reset()
	mc.PC.Load(0)
	mc.Privilege = Machine
}

// ExecuteInstruction executes one already-fetched instruction word to
// completion. The basic process is:
//
//  1. extract the fixed-position fields from the word
//  2. dispatch on opcode to the appropriate unit, which decodes the
//     remaining fields and immediates it needs
//  3. commit the result, or return before committing anything if the word
//     faults
//
// The returned error is one of three things: nil on success; a curated
// error with the IllegalInstruction or InstructionAddressMisaligned pattern
// for an architectural fault (see IsFault()); or an uncurated error
// propagated from the memory bus. In the fault case the register file and
// PC are untouched.
func (mc *CPU) ExecuteInstruction(insn uint32) error {
	f := instructions.Decode(insn)

	// most instructions advance the PC by 4. control flow instructions that
	// have already committed a validated target set this flag so the default
	// advance is not additionally applied.
	pcUpdated := false

	var err error

	switch f.Opcode {
	case instructions.OpcodeLUI:
		mc.Regs.Load(f.Rd, uint64(instructions.ImmU(insn)))

	case instructions.OpcodeAUIPC:
		mc.Regs.Load(f.Rd, mc.PC.Address()+uint64(instructions.ImmU(insn)))

	case instructions.OpcodeJAL:
		pcUpdated, err = mc.jal(insn, f)

	case instructions.OpcodeJALR:
		pcUpdated, err = mc.jalr(insn, f)

	case instructions.OpcodeBranch:
		pcUpdated, err = mc.branch(insn, f)

	case instructions.OpcodeLoad:
		err = mc.load(insn, f)

	case instructions.OpcodeStore:
		err = mc.store(insn, f)

	case instructions.OpcodeOpImm:
		err = mc.opImm(insn, f)

	case instructions.OpcodeOp:
		err = mc.opOp(insn, f)

	case instructions.OpcodeOpImm32:
		err = mc.opImm32(insn, f)

	case instructions.OpcodeOp32:
		err = mc.opOp32(insn, f)

	case instructions.OpcodeMiscMem:
		err = mc.fence(insn, f)

	case instructions.OpcodeSystem:
		err = mc.system(insn, f)

	default:
		err = illegal(insn)
	}

	if err != nil {
		return err
	}

	if !pcUpdated {
		mc.PC.Add(4)
	}

	return nil
}

// fence implements the MISC-MEM family. With a single sequential
// instruction stream and memory operations that complete immediately, there
// is nothing for a fence to order, so every legal fence is a no-op.
func (mc *CPU) fence(insn uint32, f instructions.Fields) error {
	if f.Funct3 != instructions.Funct3Fence {
		return illegal(insn)
	}

	if insn>>28 == instructions.FenceModeTSO {
		logger.Log("cpu", "fence.tso has no additional effect on a single hart")
	}

	return nil
}

// system implements the SYSTEM family. ECALL and EBREAK are defined
// encodings and commit the default PC advance, but trap delivery belongs to
// the privilege subsystem and that does not exist yet, so all this layer can
// do is note the event.
func (mc *CPU) system(insn uint32, f instructions.Fields) error {
	if f.Funct3 != instructions.Funct3Priv {
		return illegal(insn)
	}
	if f.Rd != 0 || f.Rs1 != 0 {
		return illegal(insn)
	}

	switch instructions.ImmI(insn) {
	case 0, 1:
		logger.Logf("cpu", "%s: no trap delivery at this layer", instructions.Mnemonic(insn))
	default:
		return illegal(insn)
	}

	return nil
}
